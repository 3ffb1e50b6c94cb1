// Package render turns a named debug text into a display block and a full
// block: detection, pretty-printing, colorizing, collapsing, labelling and
// truncation.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/arthur-debert/printbreak/pkg/colorize"
	"github.com/arthur-debert/printbreak/pkg/detect"
	"github.com/arthur-debert/printbreak/pkg/logging"
	"github.com/arthur-debert/printbreak/pkg/structural"
	"github.com/arthur-debert/printbreak/pkg/style"
)

const (
	// MaxLines is the display limit for a single block.
	MaxLines = 50
	// WrapWidth is the column at which plain strings wrap.
	WrapWidth = 80
)

// Request is one value to render.
type Request struct {
	Name      string
	DebugText string
}

// Block is a rendered value.
type Block struct {
	Name   string
	Format detect.Format
	// Display is colorized, possibly collapsed and truncated.
	Display string
	// Full is never collapsed or truncated.
	Full string
}

// MultiLine reports whether the display block spans several lines.
func (b Block) MultiLine() bool {
	return strings.Contains(b.Display, "\n")
}

// Highlighter paints a pretty-printed document.
type Highlighter interface {
	Highlight(text string, p style.Palette) string
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(text string, p style.Palette) string

func (f HighlighterFunc) Highlight(text string, p style.Palette) string {
	return f(text, p)
}

// DefaultHighlighters returns the colorizers for each document format.
func DefaultHighlighters() map[detect.Format]Highlighter {
	return map[detect.Format]Highlighter{
		detect.JSON: HighlighterFunc(colorize.JSON),
		detect.TOML: HighlighterFunc(colorize.TOML),
		detect.YAML: HighlighterFunc(colorize.YAML),
	}
}

// Options configure a Renderer.
type Options struct {
	// MaxDepth is the collapse depth for structural values.
	MaxDepth int
	// Guide is the indentation guide glyph.
	Guide   string
	Palette style.Palette
}

// Renderer renders requests.
type Renderer struct {
	opts         Options
	detector     *detect.Detector
	highlighters map[detect.Format]Highlighter
}

// NewRenderer returns a renderer with the default detector and
// highlighters.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		opts:         opts,
		detector:     detect.New(),
		highlighters: DefaultHighlighters(),
	}
}

// WithDetector replaces the detector.
func (r *Renderer) WithDetector(d *detect.Detector) *Renderer {
	r.detector = d
	return r
}

// WithHighlighter replaces the highlighter for one format.
func (r *Renderer) WithHighlighter(f detect.Format, h Highlighter) *Renderer {
	r.highlighters[f] = h
	return r
}

// Render renders one request.
func (r *Renderer) Render(req Request) Block {
	log := logging.WithFields(map[string]interface{}{"component": "render", "name": req.Name})
	p := r.opts.Palette
	res := r.detector.Detect(req.DebugText)

	block := Block{Name: req.Name, Format: res.Format}

	switch res.Format {
	case detect.Structural:
		block.Display = structural.Render(res.Text, structural.Options{
			MaxDepth: r.opts.MaxDepth,
			Guide:    r.opts.Guide,
			Palette:  p,
		})
		block.Full = structural.Render(res.Text, structural.Options{
			MaxDepth: structural.Unlimited,
			Guide:    r.opts.Guide,
			Palette:  p,
		})
		if n := structural.CountMarkers(ansi.Strip(block.Display)); n > 0 {
			log.Debug().Int("collapsed", n).Msg("collapsed nested blocks")
		}
	case detect.PlainText:
		block.Display = r.plain(res.Text)
		block.Full = block.Display
	default:
		body := res.Pretty
		if h, ok := r.highlighters[res.Format]; ok {
			body = h.Highlight(res.Pretty, p)
		}
		block.Display = Label(p, res.Format.String()) + "\n" + body
		block.Full = block.Display
	}

	lines := strings.Count(block.Full, "\n") + 1
	block.Display = Truncate(block.Display, p)
	log.Debug().
		Str("format", res.Format.String()).
		Int("lines", lines).
		Bool("truncated", lines > MaxLines).
		Msg("rendered value")

	return block
}

func (r *Renderer) plain(text string) string {
	p := r.opts.Palette
	label := Label(p, fmt.Sprintf("string, %s chars", humanize.Comma(int64(utf8.RuneCountInString(text)))))
	wrapped := WordWrap(text, WrapWidth)
	if wrapped == "" {
		return label
	}
	return label + "\n" + p.Paint(style.Value, wrapped)
}

// Label renders a grey "(name)" line.
func Label(p style.Palette, name string) string {
	return p.Paint(style.Label, "("+name+")")
}

// Truncate keeps the first MaxLines lines of s and appends a
// "... (k more lines)" notice when lines were dropped.
func Truncate(s string, p style.Palette) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= MaxLines {
		return s
	}
	notice := p.Paintf(style.Label, "... (%d more lines)", len(lines)-MaxLines)
	return strings.Join(lines[:MaxLines], "\n") + "\n" + notice
}

// WordWrap wraps each line of s at width columns. Lines already within
// the width are kept verbatim; longer lines are refilled word by word.
// Trailing whitespace of the result is trimmed.
func WordWrap(s string, width int) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		if ansi.StringWidth(line) <= width {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}
		current := ""
		currentWidth := 0
		for _, word := range strings.Fields(line) {
			w := ansi.StringWidth(word)
			switch {
			case current == "":
				current, currentWidth = word, w
			case currentWidth+1+w <= width:
				current += " " + word
				currentWidth += 1 + w
			default:
				b.WriteString(current)
				b.WriteByte('\n')
				current, currentWidth = word, w
			}
		}
		if current != "" {
			b.WriteString(current)
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}

// Entry formats one value of the full-output cache.
func Entry(b Block) string {
	return b.Name + " = " + b.Full + "\n\n"
}

// FullOutput concatenates the cache entries for blocks.
func FullOutput(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(Entry(b))
	}
	return sb.String()
}

// ClipboardText strips escape sequences from cached output.
func ClipboardText(full string) string {
	return ansi.Strip(full)
}
