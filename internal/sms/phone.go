package sms

import "strings"

// NormalizePhone converts a locally formatted number to E.164. Numbers with
// a leading 0 are treated as Kenyan and rewritten to +254; numbers already
// carrying + pass through; anything else just gets the + prefix.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return phone
	}

	switch {
	case strings.HasPrefix(phone, "+"):
		return phone
	case strings.HasPrefix(phone, "0"):
		return "+254" + phone[1:]
	default:
		return "+" + phone
	}
}
