// Package ui renders gum's terminal output: colored status lines, the
// group table, and confirmation prompts.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

var (
	// out survives ANSI sequences on Windows consoles too.
	out io.Writer = colorable.NewColorableStdout()

	colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

func colorize(msg, color string) string {
	if !colorEnabled {
		return msg
	}
	return ansi.Color(msg, color)
}

// Success prints a success message in green
func Success(format string, args ...any) {
	fmt.Fprintln(out, colorize(fmt.Sprintf(format, args...), "green"))
}

// Error prints an error message in red
func Error(format string, args ...any) {
	fmt.Fprintln(out, colorize(fmt.Sprintf(format, args...), "red"))
}

// Note prints a status message in yellow
func Note(format string, args ...any) {
	fmt.Fprintln(out, colorize(fmt.Sprintf(format, args...), "yellow"))
}

// Plain prints an uncolored line
func Plain(format string, args ...any) {
	fmt.Fprintf(out, format+"\n", args...)
}

// IsInteractive reports whether stdin is attached to a terminal, so prompts
// are skipped in scripted use.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
