package config

import (
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "ProXPL" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.SessionTTL != 60 {
		t.Errorf("SessionTTL = %d", cfg.SessionTTL)
	}
	if cfg.CompileDelay != 800 {
		t.Errorf("CompileDelay = %d", cfg.CompileDelay)
	}
	if cfg.Generator.APIKeyEnv != "API_KEY" {
		t.Errorf("APIKeyEnv = %q", cfg.Generator.APIKeyEnv)
	}
	if cfg.Generator.Timeout != 60 {
		t.Errorf("Timeout = %d", cfg.Generator.Timeout)
	}
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Name: "docs", Addr: "127.0.0.1:9000", SessionTTL: 5, CompileDelay: 10}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "docs" || cfg.Addr != "127.0.0.1:9000" || cfg.SessionTTL != 5 || cfg.CompileDelay != 10 {
		t.Fatalf("got %+v", cfg)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"relative base url", Config{BaseURL: "/docs"}, "'base-url'"},
		{"ftp base url", Config{BaseURL: "ftp://example.com"}, "'base-url'"},
		{"negative ttl", Config{SessionTTL: -1}, "'session-ttl' must be >= 0"},
		{"negative delay", Config{CompileDelay: -5}, "'compile-delay' must be >= 0"},
		{"bad provider", Config{Generator: Generator{Provider: "openai"}}, "invalid provider"},
		{"bad key env", Config{Generator: Generator{APIKeyEnv: "1KEY"}}, "not a valid variable name"},
		{"negative timeout", Config{Generator: Generator{Timeout: -1}}, "'timeout' must be >= 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := Validate(&cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want error containing %q", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "config: ") {
				t.Errorf("error %q lacks config prefix", err)
			}
		})
	}
}

func TestValidate_AcceptsProviders(t *testing.T) {
	for _, p := range []string{"", "gemini", "anthropic", "claude-cli"} {
		cfg := &Config{Generator: Generator{Provider: p}}
		if err := Validate(cfg); err != nil {
			t.Errorf("provider %q: %v", p, err)
		}
	}
}

func TestValidate_BaseURL(t *testing.T) {
	cfg := &Config{BaseURL: "https://proxpl.dev"}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
}
