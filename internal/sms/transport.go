// Package sms provides the outbound SMS transports used by the
// notification dispatcher.
package sms

import (
	"context"
	"time"
)

// SendResult reports the outcome of one send attempt. Transports never
// return Go errors for delivery failures; the outcome is data.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SentMessage is one entry of the mock transport's in-memory log.
type SentMessage struct {
	To        string    `json:"to"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	MessageID string    `json:"message_id"`
}

// Transport sends a single SMS to one recipient.
type Transport interface {
	SendSMS(ctx context.Context, to, message string) SendResult
}

// MessageLog is implemented by transports that keep a record of what they
// sent. Only the mock does.
type MessageLog interface {
	SentMessages(to string) []SentMessage
}
