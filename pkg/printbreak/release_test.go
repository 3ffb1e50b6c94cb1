//go:build printbreak_release

package printbreak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseBuildIsInert(t *testing.T) {
	t.Setenv("PRINT_BREAK", "1")

	assert.False(t, Enabled())
	assert.NotPanics(t, func() {
		Break(1, "two", Named("three", 3))
		BreakIf(true, 4)
	})
}
