package signing

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/vaultsandbox/fernet-go/cryptoutil"
)

// TimestampSigner signs values in a text-friendly layout:
//
//	value || sep || base62(timestamp) || sep || base64url(MAC)
//
// The MAC covers value, the separator and the encoded timestamp. Values may
// contain the separator; the last two occurrences delimit the suffix.
type TimestampSigner struct {
	mac macKey
	sep []byte
}

// NewTimestampSigner creates a TimestampSigner for key.
func NewTimestampSigner(key []byte, opts ...Option) (*TimestampSigner, error) {
	cfg := newSignerConfig("fernet.signing.TimestampSigner", opts)
	if !validSeparator(cfg.sep) {
		return nil, fmt.Errorf("%w: %q may appear in an encoded signature", ErrInvalidSeparator, cfg.sep)
	}

	mac, err := newMACKey(key, cfg)
	if err != nil {
		return nil, err
	}
	return &TimestampSigner{mac: mac, sep: []byte(cfg.sep)}, nil
}

// Signature returns the base64url (unpadded) MAC of value.
func (s *TimestampSigner) Signature(value []byte) []byte {
	sum := s.mac.sum(value)
	out := make([]byte, base64.RawURLEncoding.EncodedLen(len(sum)))
	base64.RawURLEncoding.Encode(out, sum)
	return out
}

// Sign returns the signed form of value stamped with currentTime.
func (s *TimestampSigner) Sign(value []byte, currentTime int64) []byte {
	stamped := make([]byte, 0, len(value)+2*len(s.sep)+16+base64.RawURLEncoding.EncodedLen(s.mac.size))
	stamped = append(stamped, value...)
	stamped = append(stamped, s.sep...)
	stamped = append(stamped, encodeBase62(currentTime)...)

	sig := s.Signature(stamped)
	stamped = append(stamped, s.sep...)
	return append(stamped, sig...)
}

// Unsign verifies signedValue and returns the value it carries.
func (s *TimestampSigner) Unsign(signedValue []byte, maxAge time.Duration, currentTime int64) ([]byte, error) {
	ts, value, err := s.verify(signedValue)
	if err != nil {
		return nil, err
	}
	if err := checkAge(ts, currentTime, maxAge); err != nil {
		return nil, err
	}
	return append([]byte(nil), value...), nil
}

// Timestamp returns the timestamp of a verified signed value.
func (s *TimestampSigner) Timestamp(signedValue []byte) (int64, error) {
	ts, _, err := s.verify(signedValue)
	return ts, err
}

func (s *TimestampSigner) verify(signedValue []byte) (int64, []byte, error) {
	i := bytes.LastIndex(signedValue, s.sep)
	if i < 0 {
		return 0, nil, ErrBadSignature
	}

	stamped, sig := signedValue[:i], signedValue[i+len(s.sep):]
	if !cryptoutil.ConstantTimeCompare(sig, s.Signature(stamped)) {
		return 0, nil, ErrBadSignature
	}

	j := bytes.LastIndex(stamped, s.sep)
	if j < 0 {
		return 0, nil, ErrBadSignature
	}

	ts, err := decodeBase62(stamped[j+len(s.sep):])
	if err != nil {
		return 0, nil, ErrBadSignature
	}
	return ts, stamped[:j], nil
}
