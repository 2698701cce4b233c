// Package crypto provides the low-level primitives behind the Fernet engine.
//
// # Algorithm Suite
//
//   - AES-CBC with PKCS7 padding: confidentiality for token payloads. The
//     key size (128, 192 or 256 bits) is chosen by the caller.
//
//   - HKDF-SHA-512 (RFC 5869): derives a signing key from an encryption key
//     when an engine is constructed without a signer.
//
// # Critical Security Notes
//
// Nothing in this package authenticates data. [DecryptAESCBC] must only be
// called on payloads whose MAC has already been verified, otherwise padding
// errors become a decryption oracle.
//
// IVs MUST be unique for each encryption with the same key. Use [NewIV],
// which reads from crypto/rand.
//
// # Base64 Encoding
//
//   - [EncodeToken]/[DecodeToken]: URL-safe base64 with padding, the token
//     wire format.
//
//   - [EncodeKey]/[DecodeKey]: URL-safe base64 for key material; decoding
//     accepts padded and unpadded input.
package crypto
