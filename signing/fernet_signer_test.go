package signing

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestFernetSigner_KnownValue(t *testing.T) {
	t.Parallel()

	s, err := NewFernetSigner([]byte("test_key"))
	if err != nil {
		t.Fatal(err)
	}

	got := hex.EncodeToString(s.Sign([]byte("hello"), 1000))
	want := "8000000000000003e868656c6c6f1c0e501f5b7738e16d60b033a8db9bdb285f6d1bb121dcdf8a0cdba12cc555aa"
	if got != want {
		t.Errorf("Sign() = %s, want %s", got, want)
	}
}

func TestFernetSigner_Layout(t *testing.T) {
	t.Parallel()

	s, err := NewFernetSigner([]byte("test_key"))
	if err != nil {
		t.Fatal(err)
	}

	signed := s.Sign([]byte("hello"), 1000)
	if len(signed) != fernetHeaderSize+len("hello")+32 {
		t.Errorf("signed length = %d", len(signed))
	}
	if signed[0] != fernetVersion {
		t.Errorf("version byte = %#x, want %#x", signed[0], fernetVersion)
	}
}

func TestFernetSigner_RejectsUnknownVersion(t *testing.T) {
	t.Parallel()

	s, err := NewFernetSigner([]byte("test_key"))
	if err != nil {
		t.Fatal(err)
	}

	// Re-sign a body with a different version so only the version is wrong.
	signed := s.Sign([]byte("hello"), 1000)
	body := append([]byte(nil), signed[:len(signed)-32]...)
	body[0] = 0x81
	forged := append(body, s.Signature(body)...)

	if _, err := s.Unsign(forged, 0, 1000); !errors.Is(err, ErrBadSignature) {
		t.Errorf("expected ErrBadSignature, got %v", err)
	}
}
