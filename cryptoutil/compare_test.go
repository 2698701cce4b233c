package cryptoutil

import (
	"bytes"
	"testing"
)

func TestConstantTimeCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        []byte
		b        []byte
		expected bool
	}{
		{"equal empty slices", []byte{}, []byte{}, true},
		{"nil and empty", nil, []byte{}, true},
		{"equal", []byte("signature"), []byte("signature"), true},
		{"differ first byte", []byte("Signature"), []byte("signature"), false},
		{"differ last byte", []byte("signaturE"), []byte("signature"), false},
		{"different lengths", []byte("sig"), []byte("signature"), false},
		{"prefix", []byte("signature"), []byte("signatures"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConstantTimeCompare(tt.a, tt.b); got != tt.expected {
				t.Errorf("ConstantTimeCompare() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// The two benchmarks below should report indistinguishable ns/op: the
// comparison must not stop at the first differing byte.

func BenchmarkConstantTimeCompare_DifferFirstByte(b *testing.B) {
	x := bytes.Repeat([]byte{0xaa}, 64)
	y := bytes.Repeat([]byte{0xaa}, 64)
	y[0] = 0xab

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ConstantTimeCompare(x, y)
	}
}

func BenchmarkConstantTimeCompare_DifferLastByte(b *testing.B) {
	x := bytes.Repeat([]byte{0xaa}, 64)
	y := bytes.Repeat([]byte{0xaa}, 64)
	y[len(y)-1] = 0xab

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ConstantTimeCompare(x, y)
	}
}
