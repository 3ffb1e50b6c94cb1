package config

import (
	_ "embed"

	"github.com/arthur-debert/printbreak/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultsContent returns the embedded defaults file.
func DefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrNotImplemented, "raw bytes provider only supports ReadBytes")
}
