package cryptoutil

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

const (
	// DefaultHMACAlgorithm is the digest SaltedHMAC uses when none is named.
	DefaultHMACAlgorithm = "sha1"

	// DefaultPBKDF2Algorithm is the digest PBKDF2 uses when none is named.
	DefaultPBKDF2Algorithm = "sha256"
)

var digests = map[string]func() hash.Hash{
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512_224": sha512.New512_224,
	"sha512_256": sha512.New512_256,
	"sha3_224":   sha3.New224,
	"sha3_256":   sha3.New256,
	"sha3_384":   sha3.New384,
	"sha3_512":   sha3.New512,
	"blake2b":    newBLAKE2b,
	"blake2s":    newBLAKE2s,
	"ripemd160":  ripemd160.New,
}

// blake2 constructors only fail for oversized keys; these are unkeyed.
func newBLAKE2b() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

func newBLAKE2s() hash.Hash {
	h, _ := blake2s.New256(nil)
	return h
}

// normalizeAlgorithm maps "SHA-256", "sha256" and "Sha256" to the same name.
func normalizeAlgorithm(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// LookupHash returns the constructor for the named digest.
func LookupHash(algorithm string) (func() hash.Hash, error) {
	h, ok := digests[normalizeAlgorithm(algorithm)]
	if !ok {
		return nil, &UnsupportedAlgorithmError{Algorithm: algorithm}
	}
	return h, nil
}

// Algorithms returns the supported digest names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
