package ux

import (
	"fmt"
	"io"

	"github.com/proxpl/proxsite/internal/playground"
)

// RunResult prints a simulated run in the status colour.
func RunResult(w io.Writer, r playground.Result) {
	switch r.Status {
	case playground.StatusError:
		fmt.Fprintf(w, "%s%s%s\n", Red, r.Output, Reset)
	case playground.StatusCompiling:
		fmt.Fprintf(w, "%s%s%s\n", Dim, r.Output, Reset)
	case playground.StatusSuccess:
		fmt.Fprintf(w, "%s\n%s✓ %s%s\n", r.Output, Green, r.Status, Reset)
	default:
		fmt.Fprintf(w, "%s\n", r.Output)
	}
}

// Presets lists the example programs.
func Presets(w io.Writer, presets []playground.Preset) {
	fmt.Fprint(w, "\nPresets:\n\n")
	for _, p := range presets {
		fmt.Fprintf(w, "  %-14s %s\n", p.Key, p.Name)
	}
	fmt.Fprintln(w)
	Hint(w, "Run 'proxsite play run --preset <key>' to compile one.")
}

// Generated prints collaborator output, marking failures in red.
func Generated(w io.Writer, text string, failed bool) {
	if failed {
		fmt.Fprintf(w, "%s%s%s\n", Red, text, Reset)
		return
	}
	fmt.Fprintln(w, text)
}
