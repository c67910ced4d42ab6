package sms

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTransportRecordsEveryMessage(t *testing.T) {
	t.Parallel()

	m := NewMockTransport()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		res := m.SendSMS(ctx, "+254712345678", fmt.Sprintf("message %d", i))
		require.True(t, res.Success)
		assert.Equal(t, fmt.Sprintf("mock-sms-%d", i+1), res.MessageID)
		assert.Empty(t, res.Error)
	}

	all := m.SentMessages("")
	require.Len(t, all, 5)
	for i, msg := range all {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Message)
		assert.False(t, msg.Timestamp.IsZero())
	}
}

func TestMockTransportFiltersByRecipient(t *testing.T) {
	t.Parallel()

	m := NewMockTransport()
	ctx := context.Background()

	m.SendSMS(ctx, "+254700000001", "first to A")
	m.SendSMS(ctx, "+254700000002", "first to B")
	m.SendSMS(ctx, "+254700000001", "second to A")

	forA := m.SentMessages("+254700000001")
	require.Len(t, forA, 2)
	assert.Equal(t, "first to A", forA[0].Message)
	assert.Equal(t, "second to A", forA[1].Message)

	assert.Len(t, m.SentMessages("+254700000002"), 1)
	assert.Empty(t, m.SentMessages("+254799999999"))
}
