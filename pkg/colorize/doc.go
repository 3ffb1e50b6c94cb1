// Package colorize paints pretty-printed JSON, TOML and YAML, and the
// scalar values found in structural debug text.
//
// The colorizers are best effort. They never fail, never panic and pass
// anything they do not understand through unchanged. With a disabled
// palette the output is byte for byte identical to the input.
package colorize
