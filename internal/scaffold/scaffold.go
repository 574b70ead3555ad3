package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/proxpl/proxsite/internal/config"
	"github.com/proxpl/proxsite/internal/ux"
)

const configTemplate = `# proxsite configuration. Every key is optional.
name: ProXPL
addr: ":8080"
# base-url: https://proxpl.dev

# Keep sessions across restarts. Relative to this file.
session-dir: .proxsite/sessions
session-ttl: 60      # minutes
compile-delay: 800   # milliseconds

generator:
  provider: gemini   # gemini, anthropic or claude-cli; empty picks gemini when the key is set
  model: gemini-3-flash-preview
  api-key-env: API_KEY
  timeout: 60        # seconds
`

const envTemplate = `# Copy to .env and fill in. Loaded by proxsite at startup.
API_KEY=
# PROXSITE_ADDR=127.0.0.1:8080
`

type file struct {
	name, body, about string
}

var files = []file{
	{config.FileName, configTemplate, "site configuration"},
	{".env.example", envTemplate, "environment template for the generator key"},
}

// Init writes a starter proxsite.yaml and .env.example into targetDir.
// An existing proxsite.yaml is an error unless force is set; an existing
// .env.example is left alone.
func Init(w io.Writer, targetDir string, force bool) error {
	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists in %s (use --force to overwrite)", config.FileName, targetDir)
	}

	fmt.Fprintf(w, "\n%s%s✓ Initialized proxsite%s\n\n", ux.Bold, ux.Green, ux.Reset)
	for _, f := range files {
		path := filepath.Join(targetDir, f.name)
		if f.name != config.FileName {
			if _, err := os.Stat(path); err == nil {
				ux.Skipped(w, f.name, "exists")
				continue
			}
		}
		if err := os.WriteFile(path, []byte(f.body), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		ux.Created(w, f.name+"  "+ux.Dim+f.about+ux.Reset)
	}

	fmt.Fprintf(w, "\n  Next steps:\n")
	fmt.Fprintf(w, "    1. Copy %s.env.example%s to %s.env%s and set API_KEY\n", ux.Cyan, ux.Reset, ux.Cyan, ux.Reset)
	fmt.Fprintf(w, "    2. Run %sproxsite docs check%s to verify the content\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(w, "    3. Run %sproxsite serve%s and open the site\n\n", ux.Cyan, ux.Reset)
	return nil
}
