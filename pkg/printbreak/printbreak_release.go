//go:build printbreak_release

package printbreak

// Enabled always reports false in release builds.
func Enabled() bool { return false }

// Break does nothing in release builds.
func Break(values ...interface{}) {}

// BreakIf does nothing in release builds.
func BreakIf(cond bool, values ...interface{}) {}
