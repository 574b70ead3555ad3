// Package llm talks to the code-generation collaborator behind the
// playground's "AI Architect". Providers share the Generator interface;
// Text is the boundary the rest of the site uses and never fails.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Providers understood by New.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderClaudeCLI = "claude-cli"
)

// Messages returned by Text in place of generated content.
const (
	MsgNotConfigured = "Error: API Key not configured. Please check your environment settings."
	MsgEmpty         = "No response generated."
	failurePrefix    = "// Error generating ProXPL code.\n// Details: "
)

// ErrNoAPIKey is returned by New when an HTTP provider has no key.
var ErrNoAPIKey = errors.New("API key not set")

// SystemPrompt frames every request as a ProXPL language expert.
const SystemPrompt = `You are the ProXPL AI Architect, an expert in the ProXPL programming language.
ProXPL is a modern, statically analysed scripting language built from scratch: a
C-style syntax with func, let, if/else, while, for, match, struct and impl; async
func with await; modules imported with use (for example use std.math;); and a
standard library covering std.io, std.fs, std.math, std.sys, std.net and std.time.
Programs start at func main(). Output is written with print(...).
Answer with idiomatic ProXPL. When asked for code, return only the code.`

// Options selects and configures a provider.
type Options struct {
	Provider string
	Model    string
	APIKey   string
	Timeout  time.Duration
	// Endpoint overrides the provider's API base URL (gemini, anthropic) or
	// the executable (claude-cli).
	Endpoint string
}

// New returns the generator for o.Provider. An empty provider disables
// generation and returns a nil Generator with no error.
func New(o Options) (Generator, error) {
	switch o.Provider {
	case "":
		return nil, nil
	case ProviderGemini:
		if o.APIKey == "" {
			return nil, ErrNoAPIKey
		}
		c, err := NewGeminiClient(o.APIKey, o.Model, o.Endpoint, o.Timeout)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderAnthropic:
		if o.APIKey == "" {
			return nil, ErrNoAPIKey
		}
		return NewAnthropicClient(o.APIKey, o.Model, o.Endpoint, o.Timeout), nil
	case ProviderClaudeCLI:
		return NewClaudeCLI(o.Model, o.Endpoint, o.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q (want %s, %s or %s)",
			o.Provider, ProviderGemini, ProviderAnthropic, ProviderClaudeCLI)
	}
}

// Text calls gen and folds every failure into displayable text. A nil gen
// means no collaborator is configured. There is no retry.
func Text(ctx context.Context, gen Generator, prompt string) string {
	if gen == nil {
		return MsgNotConfigured
	}
	out, err := gen.Generate(ctx, prompt)
	if err != nil {
		return failurePrefix + err.Error()
	}
	if strings.TrimSpace(out) == "" {
		return MsgEmpty
	}
	return out
}

// Failed reports whether s is one of the failure texts produced by Text.
func Failed(s string) bool {
	return s == MsgNotConfigured || strings.HasPrefix(s, failurePrefix)
}
