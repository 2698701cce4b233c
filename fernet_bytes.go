package fernet

import (
	"fmt"
	"time"

	"github.com/vaultsandbox/fernet-go/internal/crypto"
	"github.com/vaultsandbox/fernet-go/signing"
)

// FernetBytes encrypts with AES-CBC under a raw key of 16, 24 or 32 bytes and
// authenticates through a [signing.Signer]. Tokens are raw bytes.
//
// A FernetBytes is immutable and safe for concurrent use.
type FernetBytes struct {
	key    []byte
	signer signing.Signer
}

// NewFernetBytes creates an engine for the AES key. Without [WithSigner], the
// signer is built by the configured factory over a signing key derived from
// key with HKDF-SHA-512.
func NewFernetBytes(key []byte, opts ...Option) (*FernetBytes, error) {
	if !crypto.ValidAESKeySize(len(key)) {
		return nil, &KeyFormatError{Length: len(key), Message: "AES key must be 16, 24 or 32 bytes"}
	}

	cfg := newEngineConfig(opts)

	signer := cfg.signer
	if signer == nil {
		signingKey, err := crypto.DeriveSigningKey(key)
		if err != nil {
			return nil, err
		}
		if signer, err = cfg.factory(signingKey); err != nil {
			return nil, fmt.Errorf("create signer: %w", err)
		}
	}

	return newFernetBytes(key, signer), nil
}

func newFernetBytes(key []byte, signer signing.Signer) *FernetBytes {
	return &FernetBytes{
		key:    append([]byte(nil), key...),
		signer: signer,
	}
}

// Encrypt encrypts data and stamps the token with the current time.
func (f *FernetBytes) Encrypt(data []byte) ([]byte, error) {
	return f.EncryptAtTime(data, timeNow().Unix())
}

// EncryptAtTime encrypts data and stamps the token with currentTime (Unix seconds).
func (f *FernetBytes) EncryptAtTime(data []byte, currentTime int64) ([]byte, error) {
	iv, err := crypto.NewIV()
	if err != nil {
		return nil, err
	}
	return f.encryptFromParts(data, currentTime, iv)
}

func (f *FernetBytes) encryptFromParts(data []byte, currentTime int64, iv []byte) ([]byte, error) {
	payload, err := crypto.EncryptAESCBC(f.key, data, iv)
	if err != nil {
		return nil, err
	}
	return f.signer.Sign(payload, currentTime), nil
}

// Decrypt verifies token and returns its plaintext. A ttl of zero or less
// accepts tokens of any age. All failures return [ErrInvalidToken].
func (f *FernetBytes) Decrypt(token []byte, ttl time.Duration) ([]byte, error) {
	return f.DecryptAtTime(token, ttl, timeNow().Unix())
}

// DecryptAtTime is like Decrypt but checks the ttl against currentTime
// instead of the clock.
func (f *FernetBytes) DecryptAtTime(token []byte, ttl time.Duration, currentTime int64) ([]byte, error) {
	payload, err := f.signer.Unsign(token, ttl, currentTime)
	if err != nil {
		return nil, ErrInvalidToken
	}

	plaintext, err := crypto.DecryptAESCBC(f.key, payload)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return plaintext, nil
}

// ExtractTimestamp returns the Unix time a verified token was created at,
// without checking its age.
func (f *FernetBytes) ExtractTimestamp(token []byte) (int64, error) {
	ex, ok := f.signer.(signing.TimestampExtractor)
	if !ok {
		return 0, ErrTimestampUnsupported
	}

	ts, err := ex.Timestamp(token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return ts, nil
}
