package ux

import (
	"fmt"
	"io"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Banner prints the site name and version heading.
func Banner(w io.Writer, name, version string) {
	fmt.Fprintf(w, "\n%s%s══ %s %s ══%s\n\n", Bold, Cyan, name, version, Reset)
}

// Hint prints a dimmed follow-up suggestion.
func Hint(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s%s%s\n", Dim, fmt.Sprintf(format, args...), Reset)
}

// Warn prints a yellow warning line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s⚠ %s%s\n", Yellow, fmt.Sprintf(format, args...), Reset)
}

// Created reports a file written by init.
func Created(w io.Writer, path string) {
	fmt.Fprintf(w, "  %s✓%s %s\n", Green, Reset, path)
}

// Skipped reports a file init left alone.
func Skipped(w io.Writer, path, reason string) {
	fmt.Fprintf(w, "  %s–%s %s %s(%s)%s\n", Dim, Reset, path, Dim, reason, Reset)
}
