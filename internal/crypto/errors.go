package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the IV size is invalid.
	ErrInvalidIVSize = errors.New("invalid IV size")

	// ErrInvalidCiphertextSize is returned when the ciphertext is empty or
	// not a whole number of blocks.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidEncoding is returned when base64 input cannot be decoded.
	ErrInvalidEncoding = errors.New("invalid encoding")
)
