// Package style holds the checkpoint palette and panel border glyphs.
//
// Roles are semantic names ("Field", "Number", "Frame") resolved through an
// embedded YAML registry into lipgloss styles. A Palette is either enabled,
// painting every token with ANSI sequences, or disabled, in which case
// Paint returns its input unchanged.
package style

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Role names a kind of token in the output.
type Role string

const (
	Frame    Role = "Frame"
	Location Role = "Location"
	Elapsed  Role = "Elapsed"
	Name     Role = "Name"
	Value    Role = "Value"

	TypeName Role = "TypeName"
	Field    Role = "Field"
	Key      Role = "Key"
	String   Role = "String"
	Number   Role = "Number"
	Bool     Role = "Bool"
	Nil      Role = "Nil"
	Other    Role = "Other"
	Punct    Role = "Punct"
	Section  Role = "Section"
	Comment  Role = "Comment"

	Label   Role = "Label"
	Guide   Role = "Guide"
	Prompt  Role = "Prompt"
	Heading Role = "Heading"
	Success Role = "Success"
	Warning Role = "Warning"
	Error   Role = "Error"
)

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete palette file
type Config struct {
	Colors map[string]string   `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed palette.yaml
var embeddedPalette []byte

var (
	loadOnce sync.Once
	registry Config
)

func definitions() Config {
	loadOnce.Do(func() {
		cfg, err := ParseConfig(embeddedPalette)
		if err != nil {
			cfg = Config{Colors: map[string]string{}, Styles: map[string]StyleDef{}}
		}
		registry = cfg
	})
	return registry
}

// ParseConfig parses a palette file.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse palette data: %w", err)
	}
	if cfg.Colors == nil {
		cfg.Colors = map[string]string{}
	}
	if cfg.Styles == nil {
		cfg.Styles = map[string]StyleDef{}
	}
	return cfg, nil
}

// Palette paints tokens by role.
type Palette struct {
	enabled bool
	profile termenv.Profile
	styles  map[Role]lipgloss.Style
}

// Plain returns a disabled palette.
func Plain() Palette {
	return Palette{profile: termenv.Ascii}
}

// NewPalette builds a palette for the given color profile. An enabled
// palette never renders with the Ascii profile; it falls back to ANSI so
// that forcing colors always produces escape sequences.
func NewPalette(enabled bool, profile termenv.Profile) Palette {
	if !enabled {
		return Plain()
	}
	if profile == termenv.Ascii {
		profile = termenv.ANSI
	}
	return FromConfig(definitions(), profile)
}

// FromConfig builds an enabled palette from explicit definitions.
func FromConfig(cfg Config, profile termenv.Profile) Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(true)

	styles := make(map[Role]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		styles[Role(name)] = buildStyle(r, cfg.Colors, def)
	}
	return Palette{enabled: true, profile: profile, styles: styles}
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, colors map[string]string, def StyleDef) lipgloss.Style {
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(lipgloss.Color(color))
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(lipgloss.Color(color))
		}
	}

	return style
}

// Enabled reports whether the palette emits escape sequences.
func (p Palette) Enabled() bool {
	return p.enabled
}

// Profile returns the color profile the palette renders for.
func (p Palette) Profile() termenv.Profile {
	if !p.enabled {
		return termenv.Ascii
	}
	return p.profile
}

// Paint renders text in the style registered for role. Lines are painted
// one at a time so lipgloss never pads them to a common width.
func (p Palette) Paint(role Role, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	st, ok := p.styles[role]
	if !ok {
		return text
	}
	if !strings.Contains(text, "\n") {
		return st.Render(text)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Paintf formats and paints in one step.
func (p Palette) Paintf(role Role, format string, args ...interface{}) string {
	return p.Paint(role, fmt.Sprintf(format, args...))
}
