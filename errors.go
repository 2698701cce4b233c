package fernet

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidToken is returned for any token that cannot be decrypted:
	// malformed encoding, bad or expired signature, or invalid ciphertext.
	ErrInvalidToken = errors.New("invalid token")

	// ErrKeyFormat is returned when key material has the wrong encoding or length.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrInvalidOption is returned when an option cannot be applied to an engine.
	ErrInvalidOption = errors.New("invalid option")

	// ErrTimestampUnsupported is returned by ExtractTimestamp when the signer
	// cannot report timestamps.
	ErrTimestampUnsupported = errors.New("signer does not expose timestamps")
)

// KeyFormatError describes rejected key material.
type KeyFormatError struct {
	Length  int // decoded length, or -1 if the key could not be decoded
	Message string
}

func (e *KeyFormatError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("invalid key format: %s", e.Message)
	}
	return fmt.Sprintf("invalid key format: %s (got %d bytes)", e.Message, e.Length)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyFormatError) Is(target error) bool {
	return target == ErrKeyFormat
}
