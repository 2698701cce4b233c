package signing

import (
	"math"
	"testing"
)

func TestBase62(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int64
		encoded string
	}{
		{0, "0"},
		{9, "9"},
		{10, "A"},
		{61, "z"},
		{62, "10"},
		{1000, "G8"},
		{-1000, "-G8"},
		{math.MaxInt64, "AzL8n0Y58m7"},
		{math.MinInt64, "-AzL8n0Y58m8"},
	}

	for _, tt := range tests {
		t.Run(tt.encoded, func(t *testing.T) {
			if got := string(encodeBase62(tt.n)); got != tt.encoded {
				t.Errorf("encodeBase62(%d) = %s, want %s", tt.n, got, tt.encoded)
			}

			got, err := decodeBase62([]byte(tt.encoded))
			if err != nil {
				t.Fatalf("decodeBase62(%s) error = %v", tt.encoded, err)
			}
			if got != tt.n {
				t.Errorf("decodeBase62(%s) = %d, want %d", tt.encoded, got, tt.n)
			}
		})
	}
}

func TestDecodeBase62_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "-", "G8!", "AzL8n0Y58m8", "zzzzzzzzzzzzzzzz"} {
		t.Run(in, func(t *testing.T) {
			if _, err := decodeBase62([]byte(in)); err == nil {
				t.Errorf("decodeBase62(%q) succeeded", in)
			}
		})
	}
}
