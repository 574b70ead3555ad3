package playground

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

const wantHeader = "> Compiling proxpl v0.1.0-alpha\n" +
	"> Finished dev [unoptimized + debuginfo] target(s) in 0.42s\n" +
	"> Running `target/debug/main`\n\n"

func TestSimulate_PrintLiteral(t *testing.T) {
	r := Simulate(DefaultCode())
	if r.Status != StatusSuccess {
		t.Fatalf("Status = %q", r.Status)
	}
	if r.Output != wantHeader+"Hello, World!" {
		t.Fatalf("Output = %q", r.Output)
	}
}

func TestSimulate_ErrorAndPanic(t *testing.T) {
	for _, code := range []string{`let error = 1;`, `panic("boom");`} {
		r := Simulate(code)
		if r.Status != StatusError {
			t.Errorf("%q: Status = %q", code, r.Status)
		}
		if !strings.HasPrefix(r.Output, "Error: Compilation failed.\n  --> main.prox:4:5") {
			t.Errorf("%q: Output = %q", code, r.Output)
		}
	}
}

func TestSimulate_ErrorIsCaseSensitive(t *testing.T) {
	if r := Simulate(`// Error handling`); r.Status != StatusSuccess {
		t.Fatalf("Status = %q", r.Status)
	}
}

func TestSimulate_CannedOutputs(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"// Fibonacci\nfunc f() {}", "Fibonacci sequence up to 10:\n0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n55"},
		{"struct User { name }", "Welcome, admin"},
		{"// Main thread work", "Main thread start\nMain thread end\nBackground task running..."},
		{"match status {}", "OK"},
		{"let x = 1;", "Program execution completed successfully."},
	}
	for _, tt := range tests {
		r := Simulate(tt.code)
		if r.Output != wantHeader+tt.want {
			t.Errorf("Simulate(%q) = %q", tt.code, r.Output)
		}
	}
}

func TestSimulate_PrintBeatsCanned(t *testing.T) {
	r := Simulate(`// Fibonacci
print("first");`)
	if r.Output != wantHeader+"first" {
		t.Fatalf("Output = %q", r.Output)
	}
}

func TestSimulate_FibonacciPresetUsesPrint(t *testing.T) {
	p, _ := LookupPreset("fibonacci")
	if r := Simulate(p.Code); r.Output != wantHeader+"Fibonacci sequence:" {
		t.Fatalf("Output = %q", r.Output)
	}
}

func TestCompiler_Run(t *testing.T) {
	c := NewCompiler(time.Millisecond)
	r, err := c.Run(context.Background(), `print("hi");`)
	if err != nil {
		t.Fatal(err)
	}
	if r.Output != wantHeader+"hi" {
		t.Fatalf("Output = %q", r.Output)
	}
}

func TestCompiler_RunCancelled(t *testing.T) {
	c := NewCompiler(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Run(ctx, `print("hi");`)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestCompiler_RunReportsCompiling(t *testing.T) {
	var seen []Result
	c := NewCompiler(-1)
	c.Progress = func(r Result) { seen = append(seen, r) }
	r, err := c.Run(context.Background(), `print("hi");`)
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || seen[0].Status != StatusCompiling || seen[0].Output != CompilingText {
		t.Fatalf("progress = %+v", seen)
	}
	if r.Status != StatusSuccess {
		t.Fatalf("final status = %q", r.Status)
	}
}

func TestNewCompiler_DefaultDelay(t *testing.T) {
	if c := NewCompiler(0); c.Delay != DefaultDelay {
		t.Fatalf("Delay = %v", c.Delay)
	}
}
