// Package terminal decides whether a checkpoint can talk to a person and
// whether its output should carry colors.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Info captures the terminal facts a checkpoint needs.
type Info struct {
	// Interactive is true when both stderr and stdin are terminals.
	Interactive bool
	// Color is true when output should be colorized.
	Color bool
	// Profile is the detected color profile of stderr.
	Profile termenv.Profile
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NoColor reports whether the NO_COLOR convention is in effect.
func NoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Detect inspects stderr and stdin.
func Detect() Info {
	return DetectFiles(os.Stderr, os.Stdin)
}

// DetectFiles inspects the given output and input files.
func DetectFiles(output, input *os.File) Info {
	interactive := IsTerminal(output) && IsTerminal(input)

	info := Info{
		Interactive: interactive,
		Profile:     termenv.Ascii,
	}
	if !interactive {
		return info
	}

	info.Profile = termenv.NewOutput(output).EnvColorProfile()
	info.Color = !NoColor()
	return info
}
