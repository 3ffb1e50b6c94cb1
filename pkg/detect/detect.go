// Package detect classifies the debug text of a value and pretty-prints
// structured documents hiding inside string values.
//
// A quoted debug text is unquoted and tested against an ordered list of
// strategies (JSON, TOML, YAML). The first strategy whose cheap Match
// accepts the text and whose Parse succeeds wins. Anything else is plain
// text. Unquoted debug text is the structural rendering of a Go value.
package detect

import (
	"strings"

	"github.com/arthur-debert/printbreak/pkg/logging"
)

// Format is the result of classification.
type Format int

const (
	Structural Format = iota
	PlainText
	JSON
	TOML
	YAML
)

func (f Format) String() string {
	switch f {
	case Structural:
		return "structural"
	case PlainText:
		return "string"
	case JSON:
		return "json"
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Strategy recognises and re-encodes one document format.
type Strategy interface {
	// Format identifies the strategy.
	Format() Format
	// Match is a cheap predicate over the trimmed text.
	Match(trimmed string) bool
	// Parse parses the untrimmed text. A parse error rejects the match.
	Parse(text string) (interface{}, error)
	// Pretty re-encodes a parsed document.
	Pretty(doc interface{}) (string, error)
}

// Result describes a classified debug text.
type Result struct {
	Format Format
	// Text is the unquoted string for string values and the debug text
	// itself for structural values.
	Text string
	// Pretty holds the re-encoded document for JSON, TOML and YAML.
	Pretty string
}

// DefaultStrategies returns the strategies in priority order.
func DefaultStrategies() []Strategy {
	return []Strategy{JSONStrategy{}, TOMLStrategy{}, YAMLStrategy{}}
}

// Detector runs strategies in order.
type Detector struct {
	strategies []Strategy
}

// New returns a detector. With no strategies it uses DefaultStrategies.
func New(strategies ...Strategy) *Detector {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Detector{strategies: strategies}
}

var defaultDetector = New()

// Detect classifies debugText with the default strategies.
func Detect(debugText string) Result {
	return defaultDetector.Detect(debugText)
}

// Detect classifies debugText.
func (d *Detector) Detect(debugText string) Result {
	text, quoted := Unquote(debugText)
	if !quoted {
		return Result{Format: Structural, Text: debugText}
	}
	return d.Classify(text)
}

// Classify runs the strategies over an already unquoted string.
func (d *Detector) Classify(text string) Result {
	log := logging.GetLogger("detect")
	trimmed := strings.TrimSpace(text)

	for _, s := range d.strategies {
		if !s.Match(trimmed) {
			continue
		}
		doc, err := s.Parse(text)
		if err != nil {
			log.Debug().Err(err).Str("format", s.Format().String()).Msg("heuristic matched but parse failed")
			continue
		}
		pretty, err := s.Pretty(doc)
		if err != nil {
			log.Debug().Err(err).Str("format", s.Format().String()).Msg("re-encode failed")
			continue
		}
		return Result{Format: s.Format(), Text: text, Pretty: pretty}
	}

	return Result{Format: PlainText, Text: text}
}

// Unquote strips the surrounding double quotes of a quoted debug text and
// undoes the escapes for quote, newline, tab and backslash. It reports
// false when s is not quoted.
func Unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s, false
	}
	inner := s[1 : len(s)-1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, `\n`, "\n")
	inner = strings.ReplaceAll(inner, `\t`, "\t")
	inner = strings.ReplaceAll(inner, `\\`, `\`)
	return inner, true
}
