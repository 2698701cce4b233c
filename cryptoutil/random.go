package cryptoutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultAllowedChars is the alphabet RandomString uses when none is given.
const DefaultAllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns a string of length characters drawn uniformly from
// allowed using crypto/rand. An empty allowed selects [DefaultAllowedChars].
func RandomString(length int, allowed string) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	if allowed == "" {
		allowed = DefaultAllowedChars
	}

	chars := []rune(allowed)
	max := big.NewInt(int64(len(chars)))

	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = chars[n.Int64()]
	}
	return string(out), nil
}
