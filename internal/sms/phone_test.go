package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local kenyan number", "0712345678", "+254712345678"},
		{"already international", "+254712345678", "+254712345678"},
		{"foreign international", "+15550001111", "+15550001111"},
		{"missing plus", "254712345678", "+254712345678"},
		{"surrounding whitespace", "  0712345678 ", "+254712345678"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}
