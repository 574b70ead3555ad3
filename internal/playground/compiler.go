// Package playground simulates the in-browser ProXPL playground: example
// presets, a fake compile-and-run step with canned output, and prompts for
// the code-generation collaborator. Nothing here parses or executes ProXPL.
package playground

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Version is the toolchain version printed in compiler output.
const Version = "v0.1.0-alpha"

// DefaultDelay is how long a simulated compile takes.
const DefaultDelay = 800 * time.Millisecond

// Status is the playground's run state.
type Status string

const (
	StatusReady     Status = "ready"
	StatusCompiling Status = "compiling"
	StatusSuccess   Status = "success"
	StatusError     Status = "error"
)

// Text shown in the output pane outside of a finished run.
const (
	Placeholder   = "// Output will appear here..."
	CompilingText = "Compiling..."
)

const compileError = "Error: Compilation failed.\n" +
	"  --> main.prox:4:5\n" +
	"  |\n" +
	"4 |     invalid_syntax\n" +
	"  |     ^^^^^^^^^^^^^^ expected ';', found identifier"

const defaultOutput = "Program execution completed successfully."

// cannedOutputs are tried in order when the program has no print literal.
var cannedOutputs = []struct{ marker, output string }{
	{"Fibonacci", "Fibonacci sequence up to 10:\n0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n55"},
	{"User {", "Welcome, admin"},
	{"Main thread", "Main thread start\nMain thread end\nBackground task running..."},
	{"match status", "OK"},
}

var printRe = regexp.MustCompile(`print\("(.+?)"\)`)

// Result is the outcome of a simulated run.
type Result struct {
	Status Status `json:"status"`
	Output string `json:"output"`
}

// Simulate produces the run result for code without any delay.
//
// Any occurrence of "error" or "panic" (case-sensitive) fails compilation.
// Otherwise the output is the first string literal passed to print, a canned
// output keyed on a marker in the source, or a generic success line.
func Simulate(code string) Result {
	if strings.Contains(code, "error") || strings.Contains(code, "panic") {
		return Result{Status: StatusError, Output: compileError}
	}
	out := defaultOutput
	if m := printRe.FindStringSubmatch(code); m != nil {
		out = m[1]
	} else {
		for _, c := range cannedOutputs {
			if strings.Contains(code, c.marker) {
				out = c.output
				break
			}
		}
	}
	return Result{Status: StatusSuccess, Output: header() + out}
}

func header() string {
	return fmt.Sprintf("> Compiling proxpl %s\n"+
		"> Finished dev [unoptimized + debuginfo] target(s) in 0.42s\n"+
		"> Running `target/debug/main`\n\n", Version)
}

// Compiler runs simulations behind a fixed delay.
type Compiler struct {
	Delay time.Duration
	// Progress, if set, receives the compiling state before the delay.
	Progress func(Result)
}

// Compiling is the in-progress result shown while a run waits.
func Compiling() Result {
	return Result{Status: StatusCompiling, Output: CompilingText}
}

// NewCompiler returns a compiler with the given delay; zero means
// DefaultDelay and a negative delay disables waiting.
func NewCompiler(delay time.Duration) *Compiler {
	if delay == 0 {
		delay = DefaultDelay
	}
	return &Compiler{Delay: delay}
}

// Run waits out the compile delay and simulates code. It fails only if ctx
// ends first.
func (c *Compiler) Run(ctx context.Context, code string) (Result, error) {
	if c.Progress != nil {
		c.Progress(Compiling())
	}
	if c.Delay > 0 {
		timer := time.NewTimer(c.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Result{Status: StatusReady}, ctx.Err()
		}
	}
	return Simulate(code), nil
}
