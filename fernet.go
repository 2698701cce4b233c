package fernet

import (
	"fmt"
	"time"

	"github.com/vaultsandbox/fernet-go/internal/crypto"
)

// Fernet encrypts with a 32-byte key encoded as url-safe base64. The first
// 16 bytes key the signer, the last 16 bytes are the AES-128 key. Tokens are
// url-safe base64.
//
// A Fernet is immutable and safe for concurrent use.
type Fernet struct {
	core *FernetBytes
}

// New creates an engine from a url-safe base64 key, such as one returned by
// [GenerateKey]. Padding is optional.
func New(key string, opts ...Option) (*Fernet, error) {
	raw, err := crypto.DecodeKey(key)
	if err != nil {
		return nil, &KeyFormatError{Length: -1, Message: "key must be url-safe base64"}
	}
	defer zeroBytes(raw)

	if len(raw) != crypto.FixedKeySize {
		return nil, &KeyFormatError{Length: len(raw), Message: "key must be 32 url-safe base64-encoded bytes"}
	}

	cfg := newEngineConfig(opts)
	if cfg.signer != nil {
		return nil, fmt.Errorf("%w: WithSigner cannot be combined with a Fernet key, use WithSignerFactory", ErrInvalidOption)
	}

	signingKey := append([]byte(nil), raw[:crypto.SigningKeySize]...)
	signer, err := cfg.factory(signingKey)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	return &Fernet{core: newFernetBytes(raw[crypto.SigningKeySize:], signer)}, nil
}

// GenerateKey returns a fresh random key in the format accepted by [New].
func GenerateKey() (string, error) {
	key, err := crypto.RandomBytes(crypto.FixedKeySize)
	if err != nil {
		return "", err
	}
	defer zeroBytes(key)
	return crypto.EncodeKey(key), nil
}

// Encrypt encrypts data and returns a url-safe base64 token stamped with the
// current time.
func (f *Fernet) Encrypt(data []byte) ([]byte, error) {
	return f.EncryptAtTime(data, timeNow().Unix())
}

// EncryptAtTime is like Encrypt but stamps the token with currentTime.
func (f *Fernet) EncryptAtTime(data []byte, currentTime int64) ([]byte, error) {
	raw, err := f.core.EncryptAtTime(data, currentTime)
	if err != nil {
		return nil, err
	}
	return crypto.EncodeToken(raw), nil
}

// Decrypt verifies a url-safe base64 token and returns its plaintext. A ttl
// of zero or less accepts tokens of any age. All failures return
// [ErrInvalidToken].
func (f *Fernet) Decrypt(token []byte, ttl time.Duration) ([]byte, error) {
	return f.DecryptAtTime(token, ttl, timeNow().Unix())
}

// DecryptAtTime is like Decrypt but checks the ttl against currentTime.
func (f *Fernet) DecryptAtTime(token []byte, ttl time.Duration, currentTime int64) ([]byte, error) {
	raw, err := crypto.DecodeToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return f.core.DecryptAtTime(raw, ttl, currentTime)
}

// ExtractTimestamp returns the Unix time a verified token was created at.
func (f *Fernet) ExtractTimestamp(token []byte) (int64, error) {
	raw, err := crypto.DecodeToken(token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return f.core.ExtractTimestamp(raw)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
