package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the site config file looked up by Find.
const FileName = "proxsite.yaml"

// ErrNotFound is returned by Find when no config file exists.
var ErrNotFound = errors.New("no " + FileName + " found")

// Generator configures the code-generation collaborator.
type Generator struct {
	Provider  string `yaml:"provider"` // gemini, anthropic, claude-cli; empty means gemini if the key is set
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api-key-env"`
	Timeout   int    `yaml:"timeout"`  // seconds
	Endpoint  string `yaml:"endpoint"` // API base URL, or the executable for claude-cli
}

type Config struct {
	Name         string    `yaml:"name"`
	Addr         string    `yaml:"addr"`
	BaseURL      string    `yaml:"base-url"`
	SessionDir   string    `yaml:"session-dir"`
	SessionTTL   int       `yaml:"session-ttl"`   // minutes
	CompileDelay int       `yaml:"compile-delay"` // milliseconds
	Generator    Generator `yaml:"generator"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	// The zero config always validates.
	_ = Validate(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config. Unknown
// keys are rejected. A relative session-dir is resolved against the
// file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %s: %w", filepath.Base(path), err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	if cfg.SessionDir != "" && !filepath.IsAbs(cfg.SessionDir) {
		cfg.SessionDir = filepath.Join(filepath.Dir(path), cfg.SessionDir)
	}
	return &cfg, nil
}

// Find walks from dir up to the filesystem root looking for FileName.
func Find(dir string) (string, error) {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Resolve loads the config at path, or the nearest one above dir when path
// is empty, falling back to Default. Environment overrides are applied last.
func Resolve(path, dir string) (*Config, error) {
	var cfg *Config
	if path == "" {
		found, err := Find(dir)
		switch {
		case errors.Is(err, ErrNotFound):
			cfg = Default()
		case err != nil:
			return nil, err
		default:
			path = found
		}
	}
	if cfg == nil {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies PROXSITE_ADDR and enables Gemini when no provider is
// configured but the API key variable is set.
func (c *Config) applyEnv() {
	if addr := os.Getenv("PROXSITE_ADDR"); addr != "" {
		c.Addr = addr
	}
	if g := &c.Generator; g.Provider == "" && g.APIKey() != "" {
		g.Provider = "gemini"
	}
}

// SessionTTLDuration is the idle time after which a session expires.
func (c *Config) SessionTTLDuration() time.Duration {
	return time.Duration(c.SessionTTL) * time.Minute
}

// CompileDelayDuration is the simulated compile time.
func (c *Config) CompileDelayDuration() time.Duration {
	return time.Duration(c.CompileDelay) * time.Millisecond
}

// TimeoutDuration bounds a single generation request.
func (g Generator) TimeoutDuration() time.Duration {
	return time.Duration(g.Timeout) * time.Second
}

// APIKey reads the key from the configured environment variable.
func (g Generator) APIKey() string {
	return os.Getenv(g.APIKeyEnv)
}
