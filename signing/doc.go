// Package signing implements the pluggable signers used by the Fernet engine.
//
// A [Signer] binds a Unix timestamp to a value and appends a MAC computed with
// a key derived through [cryptoutil.SaltedHMAC]. Unsign verifies the MAC in
// constant time before it reads the timestamp, so an expired token is only
// ever reported for a value that was genuinely signed.
//
// Two variants are provided:
//
//   - [FernetSigner] produces binary output: a version byte, a big-endian
//     64-bit timestamp, the value and the raw MAC.
//
//   - [TimestampSigner] produces text-friendly output: the value, a base62
//     timestamp and a base64url MAC joined by a separator.
//
// The layout of signed values is private to each signer. Callers must only
// pass the output of Sign back to Unsign on a signer built with the same key
// and options.
package signing
