package colorize

import (
	"strings"

	"github.com/arthur-debert/printbreak/pkg/style"
)

// TOML paints pretty-printed TOML line by line.
func TOML(text string, p style.Palette) string {
	if !p.Enabled() {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = tomlLine(line, p)
	}
	return strings.Join(lines, "\n")
}

func tomlLine(line string, p style.Palette) string {
	trimmed := strings.TrimSpace(line)
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

	switch {
	case trimmed == "":
		return line
	case strings.HasPrefix(trimmed, "#"):
		return indent + p.Paint(style.Comment, strings.TrimLeft(line, " \t"))
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && !strings.Contains(trimmed, " = "):
		return indent + p.Paint(style.Section, strings.TrimLeft(line, " \t"))
	}

	body := line[len(indent):]
	idx := strings.Index(body, " = ")
	if idx < 0 {
		return line
	}
	key := body[:idx]
	value := body[idx+3:]
	return indent + p.Paint(style.Key, key) + p.Paint(style.Punct, " = ") + tomlValue(value, p)
}

func tomlValue(v string, p style.Palette) string {
	switch {
	case v == "":
		return v
	case strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") && len(v) >= 2:
		elems := splitTopLevel(v[1 : len(v)-1])
		painted := make([]string, len(elems))
		for i, e := range elems {
			painted[i] = tomlValue(e, p)
		}
		return p.Paint(style.Punct, "[") +
			strings.Join(painted, p.Paint(style.Punct, ", ")) +
			p.Paint(style.Punct, "]")
	case strings.HasPrefix(v, `"`) || strings.HasPrefix(v, "'"):
		return p.Paint(style.String, v)
	case v == "true" || v == "false":
		return p.Paint(style.Bool, v)
	case IsNumber(v) || v == "inf" || v == "+inf" || v == "-inf" || v == "nan":
		return p.Paint(style.Number, v)
	default:
		return p.Paint(style.Other, v)
	}
}

// splitTopLevel splits on ", " outside nested brackets, braces and quotes.
// Joining the parts with ", " gives back the input.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 && i+1 < len(s) && s[i+1] == ' ' {
				parts = append(parts, s[start:i])
				start = i + 2
				i++
			}
		}
	}
	return append(parts, s[start:])
}
