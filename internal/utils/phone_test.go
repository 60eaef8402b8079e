package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "local format with leading zero",
			input:    "0501234567",
			expected: "+966501234567",
		},
		{
			name:     "country code without plus",
			input:    "966501234567",
			expected: "+966501234567",
		},
		{
			name:     "international dialing prefix",
			input:    "00966501234567",
			expected: "+966501234567",
		},
		{
			name:     "already E.164",
			input:    "+966501234567",
			expected: "+966501234567",
		},
		{
			name:     "E.164 with leading zero after country code",
			input:    "+9660501234567",
			expected: "+966501234567",
		},
		{
			name:     "bare national number",
			input:    "501234567",
			expected: "+966501234567",
		},
		{
			name:     "spaces and dashes stripped",
			input:    "050 123-4567",
			expected: "+966501234567",
		},
		{
			name:     "other country code passes through",
			input:    "+628123456789",
			expected: "+628123456789",
		},
		{
			name:    "too short",
			input:   "05012",
			wantErr: true,
		},
		{
			name:    "ksa number with invalid mobile prefix",
			input:   "0401234567",
			wantErr: true,
		},
		{
			name:    "ksa number with wrong length",
			input:   "05012345678",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("123456"))
	assert.True(t, IsValidCode("000000"))
	assert.False(t, IsValidCode("12345"))
	assert.False(t, IsValidCode("1234567"))
	assert.False(t, IsValidCode("12345a"))
	assert.False(t, IsValidCode(""))
	assert.False(t, IsValidCode("12 456"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "+9665*****567", MaskPhone("+966501234567"))
	assert.Equal(t, "05012", MaskPhone("05012"))
	assert.Equal(t, "1234567", MaskPhone("1234567"))
	assert.Equal(t, "12345678", MaskPhone("12345678"))
}
