// Package email wraps outbound mail delivery behind a small Provider
// interface so services never talk to SMTP directly.
package email

import (
	"fmt"
	"sync"

	"gopkg.in/gomail.v2"

	"legalassist_backend/internal/config"
	"legalassist_backend/internal/logger"
)

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Provider delivers email messages.
type Provider interface {
	Send(msg Message) error
}

// GomailSender sends mail over SMTP. In development, or when SMTP
// credentials are missing, it logs instead of sending and reports success
// so local flows never break on mail.
type GomailSender struct {
	cfg     config.SMTPConfig
	logOnly bool
}

func NewGomailSender(cfg config.SMTPConfig, development bool) *GomailSender {
	logOnly := development || cfg.Server == "" || cfg.User == "" || cfg.Password == ""
	if logOnly {
		logger.Info("email sender running in log-only mode")
	}
	return &GomailSender{cfg: cfg, logOnly: logOnly}
}

func (s *GomailSender) Send(msg Message) error {
	if s.logOnly {
		logger.Info("email suppressed (log-only mode)",
			"to", msg.To, "subject", msg.Subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender())
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
		if msg.HTMLBody != "" {
			m.AddAlternative("text/html", msg.HTMLBody)
		}
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}

	d := gomail.NewDialer(s.cfg.Server, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}
	return nil
}

func (s *GomailSender) sender() string {
	if s.cfg.DefaultSender != "" {
		return s.cfg.DefaultSender
	}
	return s.cfg.User
}

// MockSender records messages for assertions in tests.
type MockSender struct {
	mu   sync.Mutex
	Sent []Message
}

func (m *MockSender) Send(msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, msg)
	return nil
}
