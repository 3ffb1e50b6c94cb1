package colorize

import (
	"strings"

	"github.com/arthur-debert/printbreak/pkg/style"
)

// JSON paints pretty-printed JSON in a single pass. A stack of booleans
// (true for objects) decides whether the next string is a key.
func JSON(text string, p style.Palette) string {
	if !p.Enabled() {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) * 2)

	var stack []bool
	expectKey := false
	inObject := func() bool { return len(stack) > 0 && stack[len(stack)-1] }

	i := 0
	for i < len(text) {
		c := text[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			b.WriteByte(c)
			i++
		case '"':
			end := scanString(text, i)
			role := style.String
			if expectKey {
				role = style.Key
			}
			b.WriteString(p.Paint(role, text[i:end]))
			expectKey = false
			i = end
		case '{':
			stack = append(stack, true)
			expectKey = true
			b.WriteString(p.Paint(style.Punct, "{"))
			i++
		case '[':
			stack = append(stack, false)
			expectKey = false
			b.WriteString(p.Paint(style.Punct, "["))
			i++
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			expectKey = false
			b.WriteString(p.Paint(style.Punct, string(c)))
			i++
		case ':':
			expectKey = false
			b.WriteString(p.Paint(style.Punct, ":"))
			i++
		case ',':
			expectKey = inObject()
			b.WriteString(p.Paint(style.Punct, ","))
			i++
		default:
			end := i
			for end < len(text) && !strings.ContainsRune(" \t\n\r{}[]:,\"", rune(text[end])) {
				end++
			}
			lit := text[i:end]
			b.WriteString(p.Paint(literalRole(lit), lit))
			i = end
		}
	}

	return b.String()
}

// scanString returns the index just past the string starting at start.
// An unterminated string runs to the end of the text.
func scanString(text string, start int) int {
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(text)
}

func literalRole(lit string) style.Role {
	switch lit {
	case "true", "false":
		return style.Bool
	case "null":
		return style.Nil
	}
	if IsNumber(lit) {
		return style.Number
	}
	return style.Other
}
