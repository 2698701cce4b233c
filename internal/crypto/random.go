package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for IV generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// NewIV returns a fresh random initialization vector.
func NewIV() ([]byte, error) {
	return RandomBytes(IVSize)
}

// RandomBytes returns n bytes read from the random source.
func RandomBytes(n int) ([]byte, error) {
	r := randReader
	if r == nil {
		r = rand.Reader
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
