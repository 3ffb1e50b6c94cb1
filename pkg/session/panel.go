package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/arthur-debert/printbreak/pkg/render"
	"github.com/arthur-debert/printbreak/pkg/style"
)

// PanelWidth is the width of the frame rules.
const PanelWidth = 50

// Location is where a checkpoint was hit.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Panel is one rendered checkpoint frame.
type Panel struct {
	Number  int64
	Elapsed string
	Where   Location
	Blocks  []render.Block
	Glyphs  style.Glyphs
	Palette style.Palette
}

// Render returns the panel text, starting with a blank line and ending
// with a newline.
func (pn Panel) Render() string {
	p := pn.Palette
	g := pn.Glyphs
	frame := func(s string) string { return p.Paint(style.Frame, s) }
	vertical := frame(g.Vertical)

	var b strings.Builder
	b.WriteString("\n")

	// Title
	number := fmt.Sprintf("%d", pn.Number)
	fill := PanelWidth - 12 - len(number)
	b.WriteString(frame(g.TopLeft + g.Horizontal + " BREAK #" + number + " "))
	if pn.Elapsed != "" {
		elapsed := "(" + pn.Elapsed + ")"
		b.WriteString(p.Paint(style.Elapsed, elapsed) + " ")
		fill -= ansi.StringWidth(elapsed) + 1
	}
	if fill < 1 {
		fill = 1
	}
	b.WriteString(frame(strings.Repeat(g.Horizontal, fill)))
	b.WriteString("\n")

	// Location
	loc := pn.Where.String()
	pad := PanelWidth - 2 - ansi.StringWidth(loc)
	if pad < 0 {
		pad = 0
	}
	b.WriteString(vertical + " " + p.Paint(style.Location, loc) + strings.Repeat(" ", pad) + vertical + "\n")

	if len(pn.Blocks) > 0 {
		b.WriteString(frame(g.MiddleLeft+strings.Repeat(g.Horizontal, PanelWidth)) + "\n")
		for _, blk := range pn.Blocks {
			name := p.Paint(style.Name, blk.Name)
			if !blk.MultiLine() {
				b.WriteString(vertical + " " + name + " = " + blk.Display + "\n")
				continue
			}
			b.WriteString(vertical + " " + name + "=\n")
			for _, line := range strings.Split(blk.Display, "\n") {
				b.WriteString(vertical + "   " + line + "\n")
			}
		}
	}

	b.WriteString(frame(g.BottomLeft+strings.Repeat(g.Horizontal, PanelWidth)) + "\n")
	return b.String()
}
