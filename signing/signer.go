package signing

import (
	"math"
	"time"

	"github.com/vaultsandbox/fernet-go/cryptoutil"
)

// MaxClockSkew is how far in the future a timestamp may lie before Unsign
// rejects it. It only applies when a maximum age is given.
const MaxClockSkew = 60 * time.Second

// Signer signs values with an embedded timestamp and verifies them.
// Implementations must be safe for concurrent use.
type Signer interface {
	// Signature returns the MAC of value.
	Signature(value []byte) []byte

	// Sign binds currentTime (Unix seconds) to value and returns the signed value.
	Sign(value []byte, currentTime int64) []byte

	// Unsign verifies signedValue and returns the original value. A maxAge
	// of zero or less disables the expiry check.
	Unsign(signedValue []byte, maxAge time.Duration, currentTime int64) ([]byte, error)
}

// TimestampExtractor is implemented by signers that can report the
// timestamp of a verified signed value.
type TimestampExtractor interface {
	Timestamp(signedValue []byte) (int64, error)
}

// Factory builds a Signer for a key. The Fernet engine uses it to create a
// signer over the signing half of its key.
type Factory func(key []byte) (Signer, error)

// NewFernetSignerFactory returns a Factory producing FernetSigners with opts.
func NewFernetSignerFactory(opts ...Option) Factory {
	return func(key []byte) (Signer, error) {
		s, err := NewFernetSigner(key, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// NewTimestampSignerFactory returns a Factory producing TimestampSigners with opts.
func NewTimestampSignerFactory(opts ...Option) Factory {
	return func(key []byte) (Signer, error) {
		s, err := NewTimestampSigner(key, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// macKey holds what every signer needs to compute signatures.
type macKey struct {
	key       []byte
	keySalt   []byte
	algorithm string
	size      int
}

func newMACKey(key []byte, cfg *signerConfig) (macKey, error) {
	if len(key) == 0 {
		return macKey{}, ErrEmptyKey
	}

	newHash, err := cryptoutil.LookupHash(cfg.algorithm)
	if err != nil {
		return macKey{}, err
	}

	return macKey{
		key:       append([]byte(nil), key...),
		keySalt:   []byte(cfg.salt + "signer"),
		algorithm: cfg.algorithm,
		size:      newHash().Size(),
	}, nil
}

func (k macKey) sum(value []byte) []byte {
	// The algorithm was validated in newMACKey.
	h, _ := cryptoutil.SaltedHMAC(k.keySalt, value, k.key, k.algorithm)
	return h.Sum(nil)
}

const maxAgeSeconds = uint64(math.MaxInt64 / int64(time.Second))

// checkAge must only be called once the signature has been verified.
func checkAge(ts, now int64, maxAge time.Duration) error {
	if maxAge <= 0 {
		return nil
	}

	if ts > now {
		ahead := uint64(ts) - uint64(now)
		if ahead > uint64(MaxClockSkew/time.Second) {
			return &SignatureExpiredError{Timestamp: ts, Now: now, MaxAge: maxAge}
		}
		return nil
	}

	age := uint64(now) - uint64(ts)
	if age > maxAgeSeconds || time.Duration(age)*time.Second > maxAge {
		return &SignatureExpiredError{Timestamp: ts, Now: now, MaxAge: maxAge}
	}
	return nil
}
