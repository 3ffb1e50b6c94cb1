// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables, temp files
// PURPOSE: Test layered configuration loading and normalisation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/printbreak/pkg/errors"
)

// isolate points the user config lookup at an empty temp dir and clears
// every PRINT_BREAK variable for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, name := range []string{"PRINT_BREAK", "PRINT_BREAK_DEPTH", "PRINT_BREAK_BORDER", "PRINT_BREAK_LOG", EnvConfigFile} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "disabled with zero",
			env:  map[string]string{"PRINT_BREAK": "0"},
			check: func(t *testing.T, cfg Config) {
				assert.False(t, cfg.Enabled)
			},
		},
		{
			name: "disabled with OFF",
			env:  map[string]string{"PRINT_BREAK": "OFF"},
			check: func(t *testing.T, cfg Config) {
				assert.False(t, cfg.Enabled)
			},
		},
		{
			name: "any other value enables",
			env:  map[string]string{"PRINT_BREAK": "maybe"},
			check: func(t *testing.T, cfg Config) {
				assert.True(t, cfg.Enabled)
			},
		},
		{
			name: "depth override",
			env:  map[string]string{"PRINT_BREAK_DEPTH": "2"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 2, cfg.Depth)
			},
		},
		{
			name: "bad depth falls back",
			env:  map[string]string{"PRINT_BREAK_DEPTH": "deep"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultDepth, cfg.Depth)
			},
		},
		{
			name: "border alias",
			env:  map[string]string{"PRINT_BREAK_BORDER": "round"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "rounded", cfg.Border)
			},
		},
		{
			name: "border double",
			env:  map[string]string{"PRINT_BREAK_BORDER": "Double"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "double", cfg.Border)
			},
		},
		{
			name: "log level",
			env:  map[string]string{"PRINT_BREAK_LOG": "Debug"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "debug", cfg.Log)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadUserFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "printbreak", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("depth = 7\nborder = \"ascii\"\nenabled = false\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Depth)
	assert.Equal(t, "ascii", cfg.Border)
	assert.False(t, cfg.Enabled)

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv("PRINT_BREAK_DEPTH", "1")
		t.Setenv("PRINT_BREAK", "1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Depth)
		assert.True(t, cfg.Enabled)
	})
}

func TestLoadExplicitConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("border = \"sharp\"\n"), 0644))
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sharp", cfg.Border)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "printbreak", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("depth = = 3"), 0644))

	cfg, err := Load()
	require.Error(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestParseDepth(t *testing.T) {
	assert.Equal(t, 0, ParseDepth("0"))
	assert.Equal(t, 12, ParseDepth(" 12 "))
	assert.Equal(t, DefaultDepth, ParseDepth("-3"))
	assert.Equal(t, DefaultDepth, ParseDepth(""))
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, DefaultsContent(), "depth = 4")
}

func TestRawBytesProviderReadNotSupported(t *testing.T) {
	p := &rawBytesProvider{bytes: []byte("depth = 2")}

	data, err := p.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, "depth = 2", string(data))

	_, err = p.Read()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
}
