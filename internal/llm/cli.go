package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// ClaudeCLI generates text by running the claude CLI in print mode. It needs
// no API key of its own.
type ClaudeCLI struct {
	bin     string
	model   string
	timeout time.Duration
}

// NewClaudeCLI creates a CLI-backed generator. An empty bin means "claude"
// on PATH.
func NewClaudeCLI(model, bin string, timeout time.Duration) *ClaudeCLI {
	if model == "" {
		model = "sonnet"
	}
	if bin == "" {
		bin = "claude"
	}
	return &ClaudeCLI{bin: bin, model: model, timeout: timeout}
}

// Generate runs `claude -p` with the system prompt prepended.
func (c *ClaudeCLI) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.bin, "-p", SystemPrompt+"\n\n"+prompt, "--model", c.model)
	cmd.Env = filteredEnv()
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = "no output"
			}
			return "", fmt.Errorf("%s exited with code %d: %s", c.bin, exitErr.ExitCode(), msg)
		}
		return "", err
	}
	return stdout.String(), nil
}

// filteredEnv drops CLAUDECODE* so a nested claude does not think it is
// running inside another session.
func filteredEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		key, _, _ := strings.Cut(e, "=")
		if strings.HasPrefix(key, "CLAUDECODE") {
			continue
		}
		env = append(env, e)
	}
	return env
}
