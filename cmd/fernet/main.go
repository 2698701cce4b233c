package main

import (
	"bytes"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/vaultsandbox/fernet-go"
	"github.com/vaultsandbox/fernet-go/cryptoutil"
	"github.com/vaultsandbox/fernet-go/signing"
)

const usage = "usage: fernet <genkey|encrypt|decrypt|timestamp|derive-key> [flags]"

// Environment variables read by the CLI.
const (
	EnvKey       = "FERNET_KEY"
	EnvSigner    = "FERNET_SIGNER"
	EnvAlgorithm = "FERNET_ALGORITHM"
	EnvLogLevel  = "FERNET_LOG_LEVEL"
	EnvPassword  = "FERNET_PASSWORD"
)

// DefaultIterations is the PBKDF2 iteration count used by derive-key.
const DefaultIterations = 600000

// exitFunc is overridden in tests.
var exitFunc = os.Exit

// Config holds the I/O and environment the CLI runs against.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getenv looks up environment variables. Values from EnvFile are used
	// when Getenv returns an empty string.
	Getenv func(string) string

	// EnvFile is an optional dotenv file. A missing file is ignored.
	EnvFile string

	// ReadPassword reads a password without echo.
	ReadPassword func() ([]byte, error)
}

// DefaultConfig returns a Config wired to the process.
func DefaultConfig() *Config {
	return &Config{
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Getenv:       os.Getenv,
		EnvFile:      ".env",
		ReadPassword: readTerminalPassword,
	}
}

func readTerminalPassword() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return password, nil
}

// env resolves variables from the process first and the dotenv file second.
type env struct {
	getenv func(string) string
	file   map[string]string
}

func loadEnv(cfg *Config) (*env, error) {
	e := &env{getenv: cfg.Getenv, file: map[string]string{}}
	if e.getenv == nil {
		e.getenv = os.Getenv
	}
	if cfg.EnvFile == "" {
		return e, nil
	}

	values, err := godotenv.Read(cfg.EnvFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return e, nil
		}
		return nil, fmt.Errorf("load %s: %w", cfg.EnvFile, err)
	}
	e.file = values
	return e, nil
}

func (e *env) get(name string) string {
	if v := e.getenv(name); v != "" {
		return v
	}
	return e.file[name]
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	} else {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// signerFactory builds the factory selected by FERNET_SIGNER and FERNET_ALGORITHM.
func signerFactory(e *env) (signing.Factory, error) {
	var opts []signing.Option
	if alg := e.get(EnvAlgorithm); alg != "" {
		if _, err := cryptoutil.LookupHash(alg); err != nil {
			return nil, err
		}
		opts = append(opts, signing.WithAlgorithm(alg))
	}

	switch kind := strings.ToLower(e.get(EnvSigner)); kind {
	case "", "fernet":
		return signing.NewFernetSignerFactory(opts...), nil
	case "timestamp":
		return signing.NewTimestampSignerFactory(opts...), nil
	default:
		return nil, fmt.Errorf("%s: unknown signer %q", EnvSigner, kind)
	}
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}

	e, err := loadEnv(cfg)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Stderr, e.get(EnvLogLevel))
	if err != nil {
		return err
	}

	cmd, rest := args[1], args[2:]
	logger.Debug("running command", "command", cmd)

	switch cmd {
	case "genkey":
		return runGenKey(cfg)
	case "encrypt":
		return runEncrypt(cfg, e, logger)
	case "decrypt":
		return runDecrypt(rest, cfg, e, logger)
	case "timestamp":
		return runTimestamp(cfg, e, logger)
	case "derive-key":
		return runDeriveKey(rest, cfg, e, logger)
	default:
		return fmt.Errorf("unknown command: %s\n%s", cmd, usage)
	}
}

func newEngine(e *env) (*fernet.Fernet, error) {
	key := e.get(EnvKey)
	if key == "" {
		return nil, fmt.Errorf("%s is not set", EnvKey)
	}
	factory, err := signerFactory(e)
	if err != nil {
		return nil, err
	}
	return fernet.New(key, fernet.WithSignerFactory(factory))
}

func runGenKey(cfg *Config) error {
	key, err := fernet.GenerateKey()
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	_, err = fmt.Fprintln(cfg.Stdout, key)
	return err
}

func runEncrypt(cfg *Config, e *env, logger *slog.Logger) error {
	f, err := newEngine(e)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	token, err := f.Encrypt(data)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	logger.Info("encrypted", "bytes", len(data))

	_, err = fmt.Fprintln(cfg.Stdout, string(token))
	return err
}

func runDecrypt(args []string, cfg *Config, e *env, logger *slog.Logger) error {
	flags := flag.NewFlagSet("decrypt", flag.ContinueOnError)
	flags.SetOutput(cfg.Stderr)
	ttl := flags.Duration("ttl", 0, "maximum token age (0 disables the check)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	f, err := newEngine(e)
	if err != nil {
		return err
	}

	token, err := readToken(cfg.Stdin)
	if err != nil {
		return err
	}

	data, err := f.Decrypt(token, *ttl)
	if err != nil {
		logger.Warn("decrypt failed", "ttl", *ttl)
		return err
	}

	_, err = cfg.Stdout.Write(data)
	return err
}

func runTimestamp(cfg *Config, e *env, logger *slog.Logger) error {
	f, err := newEngine(e)
	if err != nil {
		return err
	}

	token, err := readToken(cfg.Stdin)
	if err != nil {
		return err
	}

	ts, err := f.ExtractTimestamp(token)
	if err != nil {
		logger.Warn("timestamp extraction failed")
		return err
	}

	_, err = fmt.Fprintf(cfg.Stdout, "%d %s\n", ts, time.Unix(ts, 0).UTC().Format(time.RFC3339))
	return err
}

func runDeriveKey(args []string, cfg *Config, e *env, logger *slog.Logger) error {
	flags := flag.NewFlagSet("derive-key", flag.ContinueOnError)
	flags.SetOutput(cfg.Stderr)
	salt := flags.String("salt", "", "salt (required)")
	iterations := flags.Int("iterations", DefaultIterations, "PBKDF2 iterations")
	digest := flags.String("digest", cryptoutil.DefaultPBKDF2Algorithm, "PBKDF2 digest")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *salt == "" {
		return errors.New("derive-key: -salt is required")
	}

	password := []byte(e.get(EnvPassword))
	if len(password) == 0 {
		if cfg.ReadPassword == nil {
			return fmt.Errorf("derive-key: %s is not set", EnvPassword)
		}
		p, err := cfg.ReadPassword()
		if err != nil {
			return err
		}
		password = p
	}
	if len(password) == 0 {
		return errors.New("derive-key: empty password")
	}

	key, err := cryptoutil.PBKDF2(password, []byte(*salt), *iterations, 32, *digest)
	if err != nil {
		return fmt.Errorf("derive-key: %w", err)
	}
	logger.Info("derived key", "iterations", *iterations, "digest", *digest)

	_, err = fmt.Fprintln(cfg.Stdout, base64.URLEncoding.EncodeToString(key))
	return err
}

func readToken(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return bytes.TrimSpace(data), nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
