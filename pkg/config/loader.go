package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/printbreak/pkg/errors"
)

const (
	// EnvPrefix is the prefix shared by every environment override.
	EnvPrefix = "PRINT_BREAK"
	// EnvConfigFile points at an alternative user config file.
	EnvConfigFile = "PRINT_BREAK_CONFIG"

	DefaultDepth  = 4
	DefaultBorder = "rounded"
)

// Config holds the normalised settings for one checkpoint.
type Config struct {
	Enabled bool
	Depth   int
	Border  string
	Log     string
}

// rawConfig mirrors the config file. Every field is decoded weakly into a
// string so that env values and TOML values go through the same rules.
type rawConfig struct {
	Enabled string `koanf:"enabled"`
	Depth   string `koanf:"depth"`
	Border  string `koanf:"border"`
	Log     string `koanf:"log"`
}

var envKeys = map[string]string{
	"PRINT_BREAK":        "enabled",
	"PRINT_BREAK_DEPTH":  "depth",
	"PRINT_BREAK_BORDER": "border",
	"PRINT_BREAK_LOG":    "log",
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Enabled: true,
		Depth:   DefaultDepth,
		Border:  DefaultBorder,
	}
}

// Load builds the configuration from all layers.
func Load() (Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Defaults(), errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file, if present
	userPath := UserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return Defaults(), errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath).
				WithDetail("path", userPath)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return Defaults(), errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var raw rawConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &raw,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &raw, unmarshalConf); err != nil {
		return Defaults(), errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}

	return normalise(raw), nil
}

// UserConfigPath returns the location of the optional user config file.
func UserConfigPath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "printbreak", "config.toml")
}

func normalise(raw rawConfig) Config {
	return Config{
		Enabled: ParseEnabled(raw.Enabled),
		Depth:   ParseDepth(raw.Depth),
		Border:  ParseBorderName(raw.Border),
		Log:     strings.ToLower(strings.TrimSpace(raw.Log)),
	}
}

// ParseEnabled reports whether a PRINT_BREAK value enables checkpoints.
// Only 0, false, no and off disable; anything else enables.
func ParseEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "false", "no", "off":
		return false
	}
	return true
}

// ParseDepth parses a collapse depth, falling back to DefaultDepth.
func ParseDepth(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return DefaultDepth
	}
	return n
}

// ParseBorderName maps a border name to its canonical form.
func ParseBorderName(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "sharp":
		return "sharp"
	case "double":
		return "double"
	case "ascii":
		return "ascii"
	}
	return DefaultBorder
}
