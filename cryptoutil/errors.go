package cryptoutil

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAlgorithm is returned when a digest name is not recognized.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidIterations is returned when a PBKDF2 iteration count is below one.
	ErrInvalidIterations = errors.New("iterations must be at least 1")

	// ErrInvalidKeyLength is returned when a requested key length is negative.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidLength is returned when a requested string length is negative.
	ErrInvalidLength = errors.New("invalid length")
)

// UnsupportedAlgorithmError names the digest that could not be resolved.
type UnsupportedAlgorithmError struct {
	Algorithm string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("%q is not a supported digest algorithm", e.Algorithm)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnsupportedAlgorithmError) Is(target error) bool {
	return target == ErrUnsupportedAlgorithm
}
