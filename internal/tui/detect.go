// Package tui runs the interactive terminal UI of a vfsh session.
package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode is the interaction mode of a session.
type Mode int

const (
	// ModeLine reads commands line by line from stdin and writes plain text.
	ModeLine Mode = iota
	// ModeInteractive runs the full-screen terminal UI.
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "line"
}

// DetectMode chooses the interaction mode from the environment.
//
// Returns ModeLine if:
//   - VFSH_NON_INTERACTIVE=1 is set
//   - CI is set
//   - NO_COLOR is set
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("VFSH_NON_INTERACTIVE") == "1" {
		return ModeLine
	}
	if os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != "" {
		return ModeLine
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeLine
	}
	return ModeInteractive
}

// ResolveMode applies a configured preference ("auto", "always" or "never")
// on top of DetectMode.
func ResolveMode(preference string) Mode {
	switch preference {
	case "always":
		return ModeInteractive
	case "never":
		return ModeLine
	default:
		return DetectMode()
	}
}
