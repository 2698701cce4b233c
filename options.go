package fernet

import (
	"time"

	"github.com/vaultsandbox/fernet-go/signing"
)

// timeNow is the clock used by Encrypt and Decrypt.
var timeNow = time.Now

// engineConfig holds configuration for an engine.
type engineConfig struct {
	signer  signing.Signer
	factory signing.Factory
}

// Option configures an engine.
type Option func(*engineConfig)

// WithSigner sets the signer used by [FernetBytes]. The caller is
// responsible for giving it a key independent of the encryption key.
// [New] rejects this option because it derives the signer from its own key.
func WithSigner(s signing.Signer) Option {
	return func(c *engineConfig) {
		c.signer = s
	}
}

// WithSignerFactory sets how an engine builds its signer from a signing key.
// Default: signing.NewFernetSignerFactory()
func WithSignerFactory(f signing.Factory) Option {
	return func(c *engineConfig) {
		c.factory = f
	}
}

func newEngineConfig(opts []Option) *engineConfig {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.factory == nil {
		cfg.factory = signing.NewFernetSignerFactory()
	}
	return cfg
}
