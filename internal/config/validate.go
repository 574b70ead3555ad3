package config

import (
	"fmt"
	"net/url"
	"regexp"
)

var validProviders = map[string]bool{
	"":           true,
	"gemini":     true,
	"anthropic":  true,
	"claude-cli": true,
}

var varNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Name == "" {
		cfg.Name = "ProXPL"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: 'base-url' %q must be an absolute http(s) URL", cfg.BaseURL)
		}
	}

	switch {
	case cfg.SessionTTL < 0:
		return fmt.Errorf("config: 'session-ttl' must be >= 0 (minutes), got %d", cfg.SessionTTL)
	case cfg.SessionTTL == 0:
		cfg.SessionTTL = 60
	}

	switch {
	case cfg.CompileDelay < 0:
		return fmt.Errorf("config: 'compile-delay' must be >= 0 (milliseconds), got %d", cfg.CompileDelay)
	case cfg.CompileDelay == 0:
		cfg.CompileDelay = 800
	}

	g := &cfg.Generator
	if !validProviders[g.Provider] {
		return fmt.Errorf("config: generator: invalid provider %q (must be gemini, anthropic or claude-cli)", g.Provider)
	}
	if g.APIKeyEnv == "" {
		g.APIKeyEnv = "API_KEY"
	}
	if !varNameRe.MatchString(g.APIKeyEnv) {
		return fmt.Errorf("config: generator: 'api-key-env' %q is not a valid variable name (must match [A-Za-z_][A-Za-z0-9_]*)", g.APIKeyEnv)
	}
	switch {
	case g.Timeout < 0:
		return fmt.Errorf("config: generator: 'timeout' must be >= 0 (seconds), got %d", g.Timeout)
	case g.Timeout == 0:
		g.Timeout = 60
	}
	return nil
}
