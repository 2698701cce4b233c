package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptAESCBC pads plaintext with PKCS7 and encrypts it using AES-CBC.
// Returns: iv (16 bytes) || ciphertext
func EncryptAESCBC(key, plaintext, iv []byte) ([]byte, error) {
	if !ValidAESKeySize(len(key)) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}

	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), IVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	padded := PadPKCS7(plaintext, BlockSize)

	out := make([]byte, IVSize+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[IVSize:], padded)

	return out, nil
}

// DecryptAESCBC decrypts iv || ciphertext produced by [EncryptAESCBC] and
// removes the PKCS7 padding.
func DecryptAESCBC(key, payload []byte) ([]byte, error) {
	if !ValidAESKeySize(len(key)) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}

	if len(payload) < IVSize+BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidCiphertextSize, len(payload))
	}

	iv := payload[:IVSize]
	ciphertext := payload[IVSize:]
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d is not a multiple of %d", ErrInvalidCiphertextSize, len(ciphertext), BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	return UnpadPKCS7(padded, BlockSize)
}
