package colorize

import (
	"strings"

	"github.com/arthur-debert/printbreak/pkg/style"
)

// YAML paints block-style YAML line by line.
func YAML(text string, p style.Palette) string {
	if !p.Enabled() {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = yamlLine(line, p)
	}
	return strings.Join(lines, "\n")
}

func yamlLine(line string, p style.Palette) string {
	rest := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(rest)]

	if rest == "" {
		return line
	}
	if strings.HasPrefix(rest, "#") {
		return indent + p.Paint(style.Comment, rest)
	}

	dash := ""
	body := rest
	if rest == "-" || strings.HasPrefix(rest, "- ") {
		dash = p.Paint(style.Punct, "-")
		body = strings.TrimPrefix(rest, "-")
	}

	if idx := keyColon(body); idx >= 0 {
		keyText := body[:idx]
		key := strings.TrimLeft(keyText, " ")
		if key != "" && !strings.HasPrefix(key, "#") {
			lead := keyText[:len(keyText)-len(key)]
			return indent + dash + lead + p.Paint(style.Key, key) +
				p.Paint(style.Punct, ":") + yamlValue(body[idx+1:], p)
		}
	}

	if dash != "" {
		return indent + dash + yamlValue(body, p)
	}
	return line
}

// keyColon finds the first colon that ends a key: one followed by a space
// or the end of the line, outside quotes.
func keyColon(s string) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			if i == 0 || s[i-1] == ' ' {
				quote = c
			}
		case ':':
			if i+1 == len(s) || s[i+1] == ' ' {
				return i
			}
		}
	}
	return -1
}

// yamlValue paints a value, keeping its leading spaces.
func yamlValue(v string, p style.Palette) string {
	core := strings.TrimLeft(v, " ")
	lead := v[:len(v)-len(core)]
	if core == "" {
		return v
	}

	var role style.Role
	switch {
	case strings.HasPrefix(core, `"`) || strings.HasPrefix(core, "'"):
		role = style.String
	case core == "true" || core == "false":
		role = style.Bool
	case core == "null" || core == "~":
		role = style.Nil
	case IsNumber(core):
		role = style.Number
	case core == "|" || core == ">" || core == "|-" || core == ">-" || core == "[]" || core == "{}":
		role = style.Punct
	case strings.Contains(core, ":"):
		role = style.Other
	default:
		role = style.String
	}
	return lead + p.Paint(role, core)
}
