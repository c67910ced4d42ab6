package sms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"legalassist_backend/internal/logger"
)

// MockTransport records messages in memory instead of sending them.
// It never fails and performs no I/O. Used in development and tests.
type MockTransport struct {
	mu       sync.Mutex
	messages []SentMessage
	nextID   int
}

func NewMockTransport() *MockTransport {
	return &MockTransport{nextID: 1}
}

func (m *MockTransport) SendSMS(ctx context.Context, to, message string) SendResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := fmt.Sprintf("mock-sms-%d", m.nextID)
	m.nextID++

	m.messages = append(m.messages, SentMessage{
		To:        to,
		Message:   message,
		Timestamp: time.Now(),
		MessageID: id,
	})

	logger.CtxInfo(ctx, "mock sms recorded", "to", to, "message_id", id)

	return SendResult{Success: true, MessageID: id}
}

// SentMessages returns recorded messages in send order. An empty recipient
// returns everything; otherwise only messages to that recipient.
func (m *MockTransport) SentMessages(to string) []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SentMessage, 0, len(m.messages))
	for _, msg := range m.messages {
		if to == "" || msg.To == to {
			out = append(out, msg)
		}
	}
	return out
}
