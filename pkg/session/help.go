package session

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const helpMarkdown = `# Checkpoint commands

| Key | Action |
|-----|--------|
| Enter | continue running |
| m, more | show the full output, without collapsing or truncation |
| t, trace | show the callers that led here |
| c, copy | copy the full output to the clipboard, without colors |
| s, skip | continue and skip every later checkpoint |
| q, quit | exit the program with status 0 |
| h, ?, help | show this help |

## Environment

- ` + "`PRINT_BREAK=0`" + ` disables checkpoints (also false, no, off)
- ` + "`PRINT_BREAK_DEPTH=n`" + ` collapses values nested n levels deep (default 4)
- ` + "`PRINT_BREAK_BORDER`" + ` picks the frame: rounded, sharp, double or ascii
- ` + "`PRINT_BREAK_LOG=debug`" + ` writes diagnostics to the printbreak log file
- ` + "`NO_COLOR`" + ` turns colors off
`

// HelpMarkdown returns the source of the checkpoint help.
func HelpMarkdown() string {
	return helpMarkdown
}

// HelpRenderer formats the help text.
type HelpRenderer interface {
	Render(markdown string) string
}

// PlainHelp prints the markdown source as is.
type PlainHelp struct{}

// Render returns the content unchanged
func (PlainHelp) Render(markdown string) string {
	return markdown
}

// GlamourHelp renders markdown for the terminal.
type GlamourHelp struct {
	Style   string // Standard style name: "dark", "light", "notty"
	Width   int
	Profile termenv.Profile
}

// Render converts markdown to terminal output, falling back to the
// source on error.
func (r GlamourHelp) Render(markdown string) string {
	styleName := r.Style
	if styleName == "" {
		styleName = "dark"
	}
	options := []glamour.TermRendererOption{
		glamour.WithStandardStyle(styleName),
		glamour.WithColorProfile(r.Profile),
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
