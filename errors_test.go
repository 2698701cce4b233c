package fernet

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidToken", ErrInvalidToken},
		{"ErrKeyFormat", ErrKeyFormat},
		{"ErrInvalidOption", ErrInvalidOption},
		{"ErrTimestampUnsupported", ErrTimestampUnsupported},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestKeyFormatError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *KeyFormatError
		expected string
	}{
		{
			name:     "with length",
			err:      &KeyFormatError{Length: 16, Message: "key must be 32 bytes"},
			expected: "invalid key format: key must be 32 bytes (got 16 bytes)",
		},
		{
			name:     "undecodable",
			err:      &KeyFormatError{Length: -1, Message: "key must be url-safe base64"},
			expected: "invalid key format: key must be url-safe base64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKeyFormatError_Is(t *testing.T) {
	err := &KeyFormatError{Length: 1}

	if !errors.Is(err, ErrKeyFormat) {
		t.Error("KeyFormatError should match ErrKeyFormat")
	}
	if errors.Is(err, ErrInvalidToken) {
		t.Error("KeyFormatError should not match ErrInvalidToken")
	}
}
