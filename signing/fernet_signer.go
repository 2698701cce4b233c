package signing

import (
	"encoding/binary"
	"time"

	"github.com/vaultsandbox/fernet-go/cryptoutil"
)

const (
	fernetVersion    byte = 0x80
	fernetHeaderSize      = 1 + 8
)

// FernetSigner signs values in the Fernet layout:
//
//	version (1 byte, 0x80) || timestamp (8 bytes, big-endian) || value || MAC
//
// The MAC covers everything before it.
type FernetSigner struct {
	mac macKey
}

// NewFernetSigner creates a FernetSigner for key.
func NewFernetSigner(key []byte, opts ...Option) (*FernetSigner, error) {
	cfg := newSignerConfig("fernet.signing.FernetSigner", opts)

	mac, err := newMACKey(key, cfg)
	if err != nil {
		return nil, err
	}
	return &FernetSigner{mac: mac}, nil
}

// Signature returns the MAC of value.
func (s *FernetSigner) Signature(value []byte) []byte {
	return s.mac.sum(value)
}

// Sign returns the signed form of value stamped with currentTime.
func (s *FernetSigner) Sign(value []byte, currentTime int64) []byte {
	out := make([]byte, fernetHeaderSize, fernetHeaderSize+len(value)+s.mac.size)
	out[0] = fernetVersion
	binary.BigEndian.PutUint64(out[1:fernetHeaderSize], uint64(currentTime))
	out = append(out, value...)
	return append(out, s.Signature(out)...)
}

// Unsign verifies signedValue and returns the value it carries.
func (s *FernetSigner) Unsign(signedValue []byte, maxAge time.Duration, currentTime int64) ([]byte, error) {
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
func (s *FernetSigner) Timestamp(signedValue []byte) (int64, error) {
	ts, _, err := s.verify(signedValue)
	return ts, err
}

func (s *FernetSigner) verify(signedValue []byte) (int64, []byte, error) {
	if len(signedValue) < fernetHeaderSize+s.mac.size {
		return 0, nil, ErrBadSignature
	}

	body := signedValue[:len(signedValue)-s.mac.size]
	sig := signedValue[len(signedValue)-s.mac.size:]
	if !cryptoutil.ConstantTimeCompare(sig, s.Signature(body)) {
		return 0, nil, ErrBadSignature
	}

	if body[0] != fernetVersion {
		return 0, nil, ErrBadSignature
	}

	ts := int64(binary.BigEndian.Uint64(body[1:fernetHeaderSize]))
	return ts, body[fernetHeaderSize:], nil
}
