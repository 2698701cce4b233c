package crypto

const (
	// BlockSize is the AES block size in bytes. PKCS7 padding aligns to it.
	BlockSize = 16

	// IVSize is the size of an AES-CBC initialization vector in bytes.
	IVSize = 16

	// FixedKeySize is the size of a raw Fernet key: a signing half followed
	// by an encryption half.
	FixedKeySize = 32

	// SigningKeySize is the size of the signing half of a Fernet key.
	SigningKeySize = 16

	// DerivedSigningKeySize is the size of the signing key derived for an
	// engine that was given no signer.
	DerivedSigningKeySize = 32

	// HKDFContext is the HKDF info string used when deriving a signing key
	// from an encryption key, for domain separation.
	HKDFContext = "fernet:signing:v1"
)

// ValidAESKeySize reports whether n is an AES-128, AES-192 or AES-256 key length.
func ValidAESKeySize(n int) bool {
	switch n {
	case 16, 24, 32:
		return true
	}
	return false
}
