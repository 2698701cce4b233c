package crypto

import (
	"encoding/base64"
	"strings"
)

// EncodeToken encodes a raw token as URL-safe base64 with padding.
func EncodeToken(data []byte) []byte {
	out := make([]byte, base64.URLEncoding.EncodedLen(len(data)))
	base64.URLEncoding.Encode(out, data)
	return out
}

// DecodeToken decodes a URL-safe base64 token. Padding is required, matching
// the output of [EncodeToken].
func DecodeToken(token []byte) ([]byte, error) {
	out := make([]byte, base64.URLEncoding.DecodedLen(len(token)))
	n, err := base64.URLEncoding.Strict().Decode(out, token)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return out[:n], nil
}

// EncodeKey encodes key material as URL-safe base64 with padding.
func EncodeKey(key []byte) string {
	return base64.URLEncoding.EncodeToString(key)
}

// DecodeKey decodes URL-safe base64 key material with or without padding.
// Surrounding whitespace is ignored so keys can be read from files.
func DecodeKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)

	// Try with padding first
	if key, err := base64.URLEncoding.DecodeString(s); err == nil {
		return key, nil
	}

	key, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return key, nil
}
