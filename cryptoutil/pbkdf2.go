package cryptoutil

import (
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 derives keyLen bytes from password and salt using PBKDF2-HMAC with
// the named digest. An empty digest selects [DefaultPBKDF2Algorithm] and a
// zero keyLen selects the digest's output size.
//
// The iteration count is the caller's policy; OWASP recommends 600,000 or
// more for SHA-256.
func PBKDF2(password, salt []byte, iterations, keyLen int, digest string) ([]byte, error) {
	if digest == "" {
		digest = DefaultPBKDF2Algorithm
	}

	newHash, err := LookupHash(digest)
	if err != nil {
		return nil, err
	}

	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	if keyLen < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, keyLen)
	}
	if keyLen == 0 {
		keyLen = newHash().Size()
	}

	return pbkdf2.Key(password, salt, iterations, keyLen, newHash), nil
}
