// pkg/structural/structural_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test guides, colors and collapsing of structural debug text

package structural

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/printbreak/pkg/style"
)

// nested builds a record nested n levels deep in debug text form.
func nested(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		indent := strings.Repeat("    ", i)
		if i == 0 {
			b.WriteString("main.Node {\n")
		} else {
			fmt.Fprintf(&b, "%sChild: &main.Node {\n", indent)
		}
		fmt.Fprintf(&b, "%s    Level: %d,\n", indent, i)
	}
	for i := n - 1; i >= 0; i-- {
		indent := strings.Repeat("    ", i)
		if i == 0 {
			b.WriteString("}")
		} else {
			fmt.Fprintf(&b, "%s},\n", indent)
		}
	}
	return b.String()
}

func plainOpts(depth int) Options {
	return Options{MaxDepth: depth, Guide: "│", Palette: style.Plain()}
}

func TestRenderGuides(t *testing.T) {
	in := "main.User {\n    Name: \"ada\",\n    Tags: [\n        \"x\",\n    ],\n}"
	want := "main.User {\n│ Name: \"ada\",\n│ Tags: [\n│ │ \"x\",\n│ ],\n}"
	assert.Equal(t, want, Render(in, plainOpts(4)))
}

func TestRenderCollapsesOnce(t *testing.T) {
	out := Render(nested(10), plainOpts(4))
	assert.Equal(t, 1, CountMarkers(out), out)
	assert.Contains(t, out, "│ │ │ │ Child: &main.Node { ... },")
	assert.NotContains(t, out, "Level: 5")
	assert.Equal(t, "}", out[len(out)-1:])
}

func TestRenderKeepsSiblingsAfterCollapse(t *testing.T) {
	in := strings.Join([]string{
		"main.Outer {",
		"    Inner: main.Inner {",
		"        Deep: 1,",
		"    },",
		"    After: 2,",
		"}",
	}, "\n")

	out := Render(in, plainOpts(1))
	want := "main.Outer {\n│ Inner: main.Inner { ... },\n│ After: 2,\n}"
	assert.Equal(t, want, out)
}

func TestRenderCollapsesNamelessSlice(t *testing.T) {
	in := "[\n    [\n        1,\n    ],\n    2,\n]"
	out := Render(in, plainOpts(1))
	assert.Equal(t, "[\n│ [ ... ],\n│ 2,\n]", out)
}

func TestRenderDepthZeroCollapsesEverything(t *testing.T) {
	out := Render(nested(3), plainOpts(0))
	assert.Equal(t, "main.Node { ... }", out)
}

func TestRenderUnlimited(t *testing.T) {
	out := Render(nested(10), plainOpts(Unlimited))
	assert.Equal(t, 0, CountMarkers(out))
	assert.Contains(t, out, "Level: 9")
	assert.Equal(t, strings.Count(nested(10), "\n")+1, strings.Count(out, "\n")+1)
}

func TestRenderColors(t *testing.T) {
	p := style.NewPalette(true, termenv.ANSI)
	in := "main.User {\n    Name: \"ada\",\n    Age: 36,\n    Admin: true,\n    Addr: main.Addr {\n        City: nil,\n    },\n}"
	out := Render(in, Options{MaxDepth: 4, Guide: "│", Palette: p})

	assert.Contains(t, out, p.Paint(style.TypeName, "main.User"))
	assert.Contains(t, out, p.Paint(style.Field, "Name"))
	assert.Contains(t, out, p.Paint(style.String, `"ada"`))
	assert.Contains(t, out, p.Paint(style.Number, "36"))
	assert.Contains(t, out, p.Paint(style.Bool, "true"))
	assert.Contains(t, out, p.Paint(style.Nil, "nil"))
	assert.Contains(t, out, p.Paint(style.Field, "Addr")+p.Paint(style.Punct, ":")+" "+p.Paint(style.TypeName, "main.Addr"))
	assert.Contains(t, out, p.Paint(style.Guide, "│")+" ")

	assert.Equal(t, Render(in, Options{MaxDepth: 4, Guide: "│", Palette: style.Plain()}), ansi.Strip(out))
}

func TestRenderMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"}",
		"]]]\n}}}",
		"{\n{\n{",
		"  odd indent: 1\n\t\ttabbed",
		"({",
	}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			assert.NotPanics(t, func() {
				_ = Render(in, plainOpts(1))
			})
		})
	}
}

func TestRenderCustomGuide(t *testing.T) {
	out := Render("[\n    1,\n]", Options{MaxDepth: 4, Guide: "|", Palette: style.Plain()})
	assert.Equal(t, "[\n| 1,\n]", out)
}
