package signing

import "strings"

const (
	// DefaultAlgorithm is the digest signers use when none is configured.
	DefaultAlgorithm = "sha256"

	// DefaultSeparator joins the parts of a TimestampSigner value.
	DefaultSeparator = ":"
)

// signerConfig holds configuration for a signer.
type signerConfig struct {
	algorithm string
	salt      string
	sep       string
}

// Option configures a signer.
type Option func(*signerConfig)

// WithAlgorithm sets the digest used for signatures (default "sha256").
func WithAlgorithm(algorithm string) Option {
	return func(c *signerConfig) {
		c.algorithm = algorithm
	}
}

// WithSalt sets the key salt namespace. Signers with different salts produce
// unrelated signatures under the same key.
func WithSalt(salt string) Option {
	return func(c *signerConfig) {
		c.salt = salt
	}
}

// WithSeparator sets the separator used by TimestampSigner (default ":").
// FernetSigner ignores it.
func WithSeparator(sep string) Option {
	return func(c *signerConfig) {
		c.sep = sep
	}
}

func newSignerConfig(defaultSalt string, opts []Option) *signerConfig {
	cfg := &signerConfig{
		algorithm: DefaultAlgorithm,
		salt:      defaultSalt,
		sep:       DefaultSeparator,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.algorithm == "" {
		cfg.algorithm = DefaultAlgorithm
	}
	if cfg.salt == "" {
		cfg.salt = defaultSalt
	}
	return cfg
}

// urlSafeAlphabet covers every character of base62 and unpadded base64url.
const urlSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_="

func validSeparator(sep string) bool {
	return sep != "" && !strings.ContainsAny(sep, urlSafeAlphabet)
}
