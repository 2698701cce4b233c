// Package cryptoutil provides the keyed-hash building blocks shared by the
// signers and the Fernet engine: constant-time comparison, salted HMAC key
// derivation, PBKDF2 and random string generation.
//
// Digests are selected by name. [LookupHash] lists the supported names; any
// other name yields an [UnsupportedAlgorithmError].
//
// Every distinct use of [SaltedHMAC] should pass its own key salt so that
// MACs computed for different purposes stay independent under a shared
// secret:
//
//	h, err := cryptoutil.SaltedHMAC([]byte("myapp.password-reset"), value, secret, "sha256")
//	if err != nil {
//	    return err
//	}
//	mac := h.Sum(nil)
package cryptoutil
