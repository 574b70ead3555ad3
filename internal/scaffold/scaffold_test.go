package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/proxpl/proxsite/internal/config"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := Init(&out, dir, false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for _, name := range []string{config.FileName, ".env.example"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s not created: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
	if !strings.Contains(out.String(), "proxsite serve") {
		t.Errorf("next steps missing from output:\n%s", out.String())
	}
}

func TestInit_GeneratedConfigIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := Init(&bytes.Buffer{}, dir, false); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("config.Load failed on generated config: %v", err)
	}
	if cfg.Generator.Provider != "gemini" {
		t.Errorf("Provider = %q", cfg.Generator.Provider)
	}
	if cfg.SessionDir != filepath.Join(dir, ".proxsite", "sessions") {
		t.Errorf("SessionDir = %q", cfg.SessionDir)
	}
	if cfg.CompileDelay != 800 || cfg.SessionTTL != 60 {
		t.Errorf("got %+v", cfg)
	}
}

func TestInit_FailsIfConfigExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("name: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err := Init(&bytes.Buffer{}, dir, false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected 'already exists' error, got %v", err)
	}
}

func TestInit_ForceKeepsEnvExample(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, config.FileName), []byte("name: x\n"), 0644)
	envPath := filepath.Join(dir, ".env.example")
	os.WriteFile(envPath, []byte("MINE=1\n"), 0644)

	if err := Init(&bytes.Buffer{}, dir, true); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(envPath)
	if string(data) != "MINE=1\n" {
		t.Fatalf(".env.example overwritten: %q", data)
	}
	cfgData, _ := os.ReadFile(filepath.Join(dir, config.FileName))
	if !strings.Contains(string(cfgData), "generator:") {
		t.Fatal("config not overwritten with --force")
	}
}
