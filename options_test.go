package fernet

import (
	"testing"

	"github.com/vaultsandbox/fernet-go/signing"
)

func TestWithSigner(t *testing.T) {
	s, err := signing.NewFernetSigner([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}

	cfg := &engineConfig{}
	WithSigner(s)(cfg)
	if cfg.signer != s {
		t.Error("signer was not set")
	}
}

func TestWithSignerFactory(t *testing.T) {
	called := false
	factory := func(key []byte) (signing.Signer, error) {
		called = true
		return signing.NewFernetSigner(key)
	}

	cfg := newEngineConfig([]Option{WithSignerFactory(factory)})
	if _, err := cfg.factory([]byte("k")); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("custom factory was not used")
	}
}

func TestNewEngineConfig_Defaults(t *testing.T) {
	cfg := newEngineConfig(nil)

	if cfg.signer != nil {
		t.Error("default signer should be nil")
	}
	if cfg.factory == nil {
		t.Fatal("default factory should be set")
	}

	s, err := cfg.factory([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*signing.FernetSigner); !ok {
		t.Errorf("default factory built %T, want *signing.FernetSigner", s)
	}
}
