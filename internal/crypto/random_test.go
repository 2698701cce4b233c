package crypto

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"
)

func TestNewIV_Unique(t *testing.T) {
	iv1, err := NewIV()
	if err != nil {
		t.Fatal(err)
	}
	iv2, err := NewIV()
	if err != nil {
		t.Fatal(err)
	}

	if len(iv1) != IVSize {
		t.Errorf("iv length = %d, want %d", len(iv1), IVSize)
	}
	if bytes.Equal(iv1, iv2) {
		t.Error("two IVs are identical")
	}
}

func TestNewIV_ReaderOverride(t *testing.T) {
	restore := SetRandReaderForTesting(bytes.NewReader(bytes.Repeat([]byte{0x07}, IVSize)))
	defer restore()

	iv, err := NewIV()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(iv, bytes.Repeat([]byte{0x07}, IVSize)) {
		t.Errorf("iv = %x, want reader bytes", iv)
	}
}

func TestNewIV_ReaderFailure(t *testing.T) {
	boom := errors.New("entropy exhausted")
	restore := SetRandReaderForTesting(iotest.ErrReader(boom))
	defer restore()

	_, err := NewIV()
	if !errors.Is(err, boom) {
		t.Errorf("expected reader error, got %v", err)
	}
}
