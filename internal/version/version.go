package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/printbreak/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/printbreak/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/printbreak/internal/version.Date={{.Date}}
)

// String returns the multi-line version report printed by the CLI.
func String() string {
	return fmt.Sprintf("printbreak version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
