// Package config resolves printbreak settings from the embedded defaults,
// an optional user config file and PRINT_BREAK* environment variables.
// Settings are read fresh on every checkpoint.
package config
