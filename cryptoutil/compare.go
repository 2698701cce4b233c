package cryptoutil

import "crypto/subtle"

// ConstantTimeCompare reports whether a and b are equal. For inputs of equal
// length the running time does not depend on where they differ; inputs of
// different length return false immediately.
//
// Use it for MACs and signatures only.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
