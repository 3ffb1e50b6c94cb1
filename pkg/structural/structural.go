// Package structural renders multi-line debug text with indentation
// guides, colors and depth-based collapsing.
//
// The input is the 4-space indented text produced by pkg/debugfmt (or
// anything shaped like it). A line opens a block when it ends with "{",
// "[" or "({" and closes one when it starts with "}", "]" or ")". Blocks
// that open at or beyond the maximum depth collapse to a single marker
// line such as "main.User { ... }".
package structural

import (
	"strings"

	"github.com/arthur-debert/printbreak/pkg/colorize"
	"github.com/arthur-debert/printbreak/pkg/style"
)

// IndentWidth is the number of input spaces per nesting level.
const IndentWidth = 4

// Unlimited disables collapsing.
const Unlimited = -1

// Options control a rendering.
type Options struct {
	// MaxDepth is the depth at which blocks collapse. Negative values
	// never collapse.
	MaxDepth int
	// Guide is the glyph drawn once per nesting level.
	Guide string
	// Palette paints the tokens.
	Palette style.Palette
}

// Render renders debug text.
func Render(text string, opts Options) string {
	guide := opts.Guide
	if guide == "" {
		guide = "│"
	}
	p := opts.Palette
	guideUnit := p.Paint(style.Guide, guide) + " "

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	depth := 0
	skipping := false
	skipUntil := 0

	for _, line := range lines {
		trimmed := strings.TrimRight(strings.TrimLeft(line, " \t"), " \t\r")
		level := (len(line) - len(strings.TrimLeft(line, " \t"))) / IndentWidth

		opens := isOpener(trimmed)
		closes := isCloser(trimmed)

		if closes && depth > 0 {
			depth--
		}

		if skipping {
			if closes && depth <= skipUntil {
				// Closing line of the collapsed block: keep its trailing
				// punctuation on the marker.
				skipping = false
				if tail := strings.TrimLeft(trimmed, "}])"); tail != "" && len(out) > 0 {
					out[len(out)-1] += p.Paint(style.Punct, tail)
				}
				continue
			}
			if opens {
				depth++
			}
			continue
		}

		prefix := strings.Repeat(guideUnit, level)

		if opens {
			head, sep, bracket := splitOpener(trimmed)
			if opts.MaxDepth >= 0 && depth >= opts.MaxDepth {
				marker := "{ ... }"
				if strings.HasSuffix(bracket, "[") {
					marker = "[ ... ]"
				}
				if head != "" && sep == "" {
					sep = " "
				}
				out = append(out, prefix+paintHead(head, p)+sep+p.Paint(style.Punct, marker))
				skipping = true
				skipUntil = depth
				depth++
				continue
			}
			out = append(out, prefix+paintHead(head, p)+sep+p.Paint(style.Punct, bracket))
			depth++
			continue
		}

		var content string
		switch {
		case closes || strings.HasSuffix(trimmed, "},") || strings.HasSuffix(trimmed, "],") || strings.HasSuffix(trimmed, "),"):
			content = p.Paint(style.Punct, trimmed)
		case strings.Contains(trimmed, ": "):
			idx := strings.Index(trimmed, ": ")
			content = p.Paint(style.Field, trimmed[:idx]) + p.Paint(style.Punct, ":") + " " +
				colorize.Scalar(trimmed[idx+2:], p)
		default:
			content = colorize.Scalar(trimmed, p)
		}
		out = append(out, prefix+content)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

func isOpener(trimmed string) bool {
	return strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "[") || strings.HasSuffix(trimmed, "({")
}

func isCloser(trimmed string) bool {
	return strings.HasPrefix(trimmed, "}") || strings.HasPrefix(trimmed, "]") || strings.HasPrefix(trimmed, ")")
}

// splitOpener splits "Field: Type {" into the head, the spaces before the
// bracket and the bracket itself. head+sep+bracket equals the input.
func splitOpener(trimmed string) (head, sep, bracket string) {
	end := len(trimmed) - 1
	if strings.HasSuffix(trimmed, "({") {
		end--
	}
	bracket = trimmed[end:]
	rest := trimmed[:end]
	head = strings.TrimRight(rest, " ")
	sep = rest[len(head):]
	return head, sep, bracket
}

// paintHead colors the part of an opener line before its bracket. A
// "field: Type" head paints the field and the type separately.
func paintHead(head string, p style.Palette) string {
	if head == "" {
		return ""
	}
	if idx := strings.Index(head, ": "); idx >= 0 {
		field, typ := head[:idx], head[idx+2:]
		return p.Paint(style.Field, field) + p.Paint(style.Punct, ":") + " " + p.Paint(style.TypeName, typ)
	}
	if strings.HasSuffix(head, ":") {
		return p.Paint(style.Field, strings.TrimSuffix(head, ":")) + p.Paint(style.Punct, ":")
	}
	return p.Paint(style.TypeName, head)
}

// CountMarkers counts collapsed block markers in rendered text.
func CountMarkers(rendered string) int {
	return strings.Count(rendered, "{ ... }") + strings.Count(rendered, "[ ... ]")
}
