package cryptoutil

import (
	"crypto/hmac"
	"encoding/hex"
	"hash"
)

// SaltedHMAC returns an HMAC of value keyed with H(keySalt || secret), where H
// is the named digest. The returned hash can be written to further before
// calling Sum. An empty algorithm selects [DefaultHMACAlgorithm].
//
// Hashing the salt and secret first fixes the key length regardless of the
// secret, and gives each key salt an independent key.
func SaltedHMAC(keySalt, value, secret []byte, algorithm string) (hash.Hash, error) {
	if algorithm == "" {
		algorithm = DefaultHMACAlgorithm
	}

	newHash, err := LookupHash(algorithm)
	if err != nil {
		return nil, err
	}

	d := newHash()
	d.Write(keySalt)
	d.Write(secret)
	key := d.Sum(nil)

	mac := hmac.New(newHash, key)
	mac.Write(value)
	return mac, nil
}

// HexDigest returns the hex encoding of h's current sum.
func HexDigest(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
