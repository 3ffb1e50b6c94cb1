package detect

import (
	"bytes"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/printbreak/pkg/errors"
)

var jsonOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

// JSONStrategy accepts objects and arrays. Key order and scalar text are
// kept as written.
type JSONStrategy struct{}

func (JSONStrategy) Format() Format { return JSON }

func (JSONStrategy) Match(trimmed string) bool {
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

func (JSONStrategy) Parse(text string) (interface{}, error) {
	if !gjson.Valid(text) {
		return nil, errors.New(errors.ErrFormatParse, "invalid JSON")
	}
	return []byte(text), nil
}

func (JSONStrategy) Pretty(doc interface{}) (string, error) {
	raw, ok := doc.([]byte)
	if !ok {
		return "", errors.New(errors.ErrFormatEncode, "JSON document must be raw bytes")
	}
	out := pretty.PrettyOptions(raw, jsonOptions)
	return strings.TrimRight(string(out), "\n"), nil
}

// TOMLStrategy accepts documents with assignments or table headers.
type TOMLStrategy struct{}

func (TOMLStrategy) Format() Format { return TOML }

func (TOMLStrategy) Match(trimmed string) bool {
	return strings.Contains(trimmed, " = ") ||
		strings.Contains(trimmed, "]\n") ||
		strings.HasPrefix(trimmed, "[")
}

func (TOMLStrategy) Parse(text string) (interface{}, error) {
	doc := map[string]interface{}{}
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrFormatParse, "invalid TOML")
	}
	return doc, nil
}

func (TOMLStrategy) Pretty(doc interface{}) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(doc); err != nil {
		return "", errors.Wrap(err, errors.ErrFormatEncode, "failed to encode TOML")
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// YAMLStrategy accepts mappings and sequences. Scalars are rejected so
// ordinary prose containing a colon is not mistaken for a document.
type YAMLStrategy struct{}

func (YAMLStrategy) Format() Format { return YAML }

func (YAMLStrategy) Match(trimmed string) bool {
	return strings.Contains(trimmed, ": ") || strings.Contains(trimmed, ":\n")
}

func (YAMLStrategy) Parse(text string) (interface{}, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrFormatParse, "invalid YAML")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New(errors.ErrFormatParse, "empty YAML document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode && root.Kind != yaml.SequenceNode {
		return nil, errors.New(errors.ErrFormatParse, "YAML root is not a mapping or sequence").
			WithDetail("kind", root.Kind)
	}
	return &doc, nil
}

func (YAMLStrategy) Pretty(doc interface{}) (string, error) {
	node, ok := doc.(*yaml.Node)
	if !ok {
		return "", errors.New(errors.ErrFormatEncode, "YAML document must be a node")
	}
	blockStyle(node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", errors.Wrap(err, errors.ErrFormatEncode, "failed to encode YAML")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, errors.ErrFormatEncode, "failed to encode YAML")
	}
	return strings.TrimSpace(buf.String()), nil
}

// blockStyle turns flow collections into block collections.
func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style &^= yaml.FlowStyle
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}
