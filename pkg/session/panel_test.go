package session

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/printbreak/pkg/render"
	"github.com/arthur-debert/printbreak/pkg/style"
)

func TestPanelZeroValues(t *testing.T) {
	pn := Panel{
		Number:  1,
		Where:   Location{File: "main.go", Line: 10},
		Glyphs:  style.Sharp.Glyphs(),
		Palette: style.Plain(),
	}

	want := "\n" +
		"┌─ BREAK #1 " + strings.Repeat("─", 37) + "\n" +
		"│ main.go:10" + strings.Repeat(" ", 38) + "│\n" +
		"└" + strings.Repeat("─", 50) + "\n"
	assert.Equal(t, want, pn.Render())
}

func TestPanelValues(t *testing.T) {
	pn := Panel{
		Number:  12,
		Elapsed: "+1.5ms",
		Where:   Location{File: "app/run.go", Line: 7},
		Blocks: []render.Block{
			{Name: "x", Display: "42"},
			{Name: "user", Display: "main.User {\n│ Name: \"ada\",\n}"},
		},
		Glyphs:  style.Rounded.Glyphs(),
		Palette: style.Plain(),
	}

	lines := strings.Split(pn.Render(), "\n")
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "╭─ BREAK #12 (+1.5ms) "+strings.Repeat("─", 50-12-2-9), lines[1])
	assert.Equal(t, "│ app/run.go:7"+strings.Repeat(" ", 48-12)+"│", lines[2])
	assert.Equal(t, "├"+strings.Repeat("─", 50), lines[3])
	assert.Equal(t, "│ x = 42", lines[4])
	assert.Equal(t, "│ user=", lines[5])
	assert.Equal(t, "│   main.User {", lines[6])
	assert.Equal(t, "│   │ Name: \"ada\",", lines[7])
	assert.Equal(t, "│   }", lines[8])
	assert.Equal(t, "╰"+strings.Repeat("─", 50), lines[9])
	assert.Equal(t, "", lines[10])
}

func TestPanelLongLocationIsNotPadded(t *testing.T) {
	long := strings.Repeat("d/", 30) + "f.go"
	pn := Panel{Number: 1, Where: Location{File: long, Line: 1}, Glyphs: style.ASCII.Glyphs(), Palette: style.Plain()}
	assert.Contains(t, pn.Render(), "| "+long+":1|\n")
}

func TestPanelColored(t *testing.T) {
	p := style.NewPalette(true, termenv.ANSI)
	pn := Panel{
		Number:  3,
		Where:   Location{File: "main.go", Line: 1},
		Blocks:  []render.Block{{Name: "n", Display: "1"}},
		Glyphs:  style.Double.Glyphs(),
		Palette: p,
	}
	out := pn.Render()
	assert.Contains(t, out, p.Paint(style.Name, "n"))
	assert.Contains(t, ansi.Strip(out), "║ n = 1\n")
	assert.Contains(t, ansi.Strip(out), "╔═ BREAK #3 ")
}
