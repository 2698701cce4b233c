package signing

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBadSignature is returned when a signed value fails verification.
	ErrBadSignature = errors.New("bad signature")

	// ErrSignatureExpired is returned when a correctly signed value is older
	// than the allowed maximum age.
	ErrSignatureExpired = errors.New("signature expired")

	// ErrEmptyKey is returned when a signer is constructed without a key.
	ErrEmptyKey = errors.New("signing key is required")

	// ErrInvalidSeparator is returned when a separator could appear inside
	// an encoded timestamp or signature.
	ErrInvalidSeparator = errors.New("invalid separator")
)

// SignatureExpiredError reports a valid signature whose timestamp falls
// outside the allowed window.
type SignatureExpiredError struct {
	Timestamp int64
	Now       int64
	MaxAge    time.Duration
}

func (e *SignatureExpiredError) Error() string {
	if e.Timestamp > e.Now {
		return fmt.Sprintf("signature timestamp %d is in the future (now %d)", e.Timestamp, e.Now)
	}
	return fmt.Sprintf("signature age %ds exceeds %v", e.Now-e.Timestamp, e.MaxAge)
}

// Is implements errors.Is for sentinel error matching. An expired signature
// is also a bad signature.
func (e *SignatureExpiredError) Is(target error) bool {
	return target == ErrSignatureExpired || target == ErrBadSignature
}
