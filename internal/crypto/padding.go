package crypto

import (
	"bytes"
	"crypto/subtle"
)

// PadPKCS7 returns data padded to a multiple of blockSize. A full block of
// padding is added when data is already aligned.
func PadPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+n)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(n)}, n)...)
}

// UnpadPKCS7 strips PKCS7 padding. The padding bytes are checked without
// branching on their values.
func UnpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}

	good := 1
	for i := len(data) - n; i < len(data); i++ {
		good &= subtle.ConstantTimeByteEq(data[i], byte(n))
	}
	if good != 1 {
		return nil, ErrInvalidPadding
	}

	return data[:len(data)-n], nil
}
