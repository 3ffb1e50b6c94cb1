package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BorderStyle selects the glyph set used to frame the panel.
type BorderStyle int

const (
	Rounded BorderStyle = iota
	Sharp
	Double
	ASCII
)

// ParseBorder maps a border name to a BorderStyle. Unknown names are
// Rounded.
func ParseBorder(name string) BorderStyle {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sharp":
		return Sharp
	case "double":
		return Double
	case "ascii":
		return ASCII
	default:
		return Rounded
	}
}

func (b BorderStyle) String() string {
	switch b {
	case Sharp:
		return "sharp"
	case Double:
		return "double"
	case ASCII:
		return "ascii"
	default:
		return "rounded"
	}
}

// Glyphs are the pieces of a border the panel draws.
type Glyphs struct {
	TopLeft    string
	MiddleLeft string
	BottomLeft string
	Horizontal string
	Vertical   string
}

// Glyphs returns the glyph set for b.
func (b BorderStyle) Glyphs() Glyphs {
	var border lipgloss.Border
	switch b {
	case Sharp:
		border = lipgloss.NormalBorder()
	case Double:
		border = lipgloss.DoubleBorder()
	case ASCII:
		border = lipgloss.ASCIIBorder()
	default:
		border = lipgloss.RoundedBorder()
	}
	return Glyphs{
		TopLeft:    border.TopLeft,
		MiddleLeft: border.MiddleLeft,
		BottomLeft: border.BottomLeft,
		Horizontal: border.Top,
		Vertical:   border.Left,
	}
}
