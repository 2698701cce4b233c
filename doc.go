// Package fernet provides Fernet-style authenticated encryption: tamper-evident,
// time-stamped tokens produced from arbitrary bytes.
//
// Two engines are available:
//
//   - [Fernet] takes a 32-byte url-safe base64 key, splits it into a signing
//     half and an encryption half, and produces url-safe base64 tokens.
//
//   - [FernetBytes] is the variable-length core. It takes a raw AES key and a
//     [signing.Signer] and produces raw byte tokens.
//
// Basic usage:
//
//	key, err := fernet.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := fernet.New(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := f.Encrypt([]byte("secret message"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reject tokens older than five minutes.
//	plaintext, err := f.Decrypt(token, 5*time.Minute)
//	if errors.Is(err, fernet.ErrInvalidToken) {
//	    // forged, corrupted or expired
//	}
//
// Decrypt reports every failure caused by the token (bad encoding, bad
// signature, expiry, bad padding) as [ErrInvalidToken] and nothing else, so
// callers cannot be turned into a decryption oracle.
package fernet
