package playground

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/proxpl/proxsite/internal/llm"
)

// Mode selects what the collaborator is asked to do.
type Mode string

const (
	ModeCode    Mode = "code"    // write a program for a request
	ModeExplain Mode = "explain" // explain an existing program
)

const codeTemplate = `User Request: "$REQUEST". 

Please generate a valid ProXPL code snippet that solves this. Only return the code, no markdown backticks if possible, or minimal explanation.`

const explainTemplate = `Explain what the following ProXPL program does, step by step. Be brief and refer to lines of the program where it helps.

$CODE`

// Prompt renders the prompt for mode. Template variables other than the
// one the mode uses expand to nothing.
func Prompt(mode Mode, input string) (string, error) {
	var tmpl string
	vars := map[string]string{}
	switch mode {
	case ModeCode:
		tmpl = codeTemplate
		vars["REQUEST"] = input
	case ModeExplain:
		tmpl = explainTemplate
		vars["CODE"] = input
	default:
		return "", fmt.Errorf("unknown playground mode %q", mode)
	}
	return os.Expand(tmpl, func(key string) string { return vars[key] }), nil
}

// Generate asks gen for mode's output. Blank input is a no-op returning "".
// Code-mode results are passed through Clean; failures come back as the
// display text produced by llm.Text.
func Generate(ctx context.Context, gen llm.Generator, mode Mode, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	prompt, err := Prompt(mode, input)
	if err != nil {
		return "", err
	}
	out := llm.Text(ctx, gen, prompt)
	if mode == ModeCode {
		out = Clean(out)
	}
	return out, nil
}
