package colorize

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/printbreak/pkg/style"
)

// Scalar paints a single value from structural debug text. A trailing
// comma is painted as punctuation.
func Scalar(s string, p style.Palette) string {
	value := strings.TrimSuffix(s, ",")
	comma := ""
	if len(value) < len(s) {
		comma = p.Paint(style.Punct, ",")
	}
	return p.Paint(ScalarRole(value), value) + comma
}

// ScalarRole classifies a value: string, number, boolean, nil, other.
func ScalarRole(v string) style.Role {
	switch {
	case strings.HasPrefix(v, `"`) || strings.HasPrefix(v, "'"):
		return style.String
	case IsNumber(v):
		return style.Number
	case v == "true" || v == "false":
		return style.Bool
	case v == "nil" || v == "<nil>" || v == "None" || strings.HasPrefix(v, "Some("):
		return style.Nil
	default:
		return style.Other
	}
}

// IsNumber reports whether v reads as an integer or float literal.
func IsNumber(v string) bool {
	if v == "" {
		return false
	}
	c := v[0]
	if c == '+' || c == '-' {
		if len(v) == 1 {
			return false
		}
		c = v[1]
	}
	// Rejects words like "Inf" or "NaN" that ParseFloat would accept.
	if c != '.' && (c < '0' || c > '9') {
		return false
	}
	if _, err := strconv.ParseFloat(strings.ReplaceAll(v, "_", ""), 64); err == nil {
		return true
	}
	_, err := strconv.ParseInt(strings.ReplaceAll(v, "_", ""), 0, 64)
	return err == nil
}
