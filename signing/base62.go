package signing

import (
	"errors"
	"math"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var errInvalidBase62 = errors.New("invalid base62 value")

func encodeBase62(n int64) []byte {
	if n == 0 {
		return []byte{'0'}
	}

	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u
	}

	var buf [12]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = base62Alphabet[u%62]
		u /= 62
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return append([]byte(nil), buf[i:]...)
}

func decodeBase62(b []byte) (int64, error) {
	neg := false
	if len(b) > 0 && b[0] == '-' {
		neg = true
		b = b[1:]
	}
	if len(b) == 0 {
		return 0, errInvalidBase62
	}

	var u uint64
	for _, c := range b {
		d := base62Digit(c)
		if d < 0 {
			return 0, errInvalidBase62
		}
		if u > (math.MaxUint64-uint64(d))/62 {
			return 0, errInvalidBase62
		}
		u = u*62 + uint64(d)
	}

	if neg {
		if u > uint64(math.MaxInt64)+1 {
			return 0, errInvalidBase62
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, errInvalidBase62
	}
	return int64(u), nil
}

func base62Digit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 36
	}
	return -1
}
