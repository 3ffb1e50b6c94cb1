package clipboard

import (
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/printbreak/pkg/errors"
)

func TestSystemUnsupported(t *testing.T) {
	old := clipboard.Unsupported
	clipboard.Unsupported = true
	t.Cleanup(func() { clipboard.Unsupported = old })

	err := System{}.WriteAll("text")
	assert.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrClipboard))
}

func TestFunc(t *testing.T) {
	var got string
	w := Func(func(text string) error {
		got = text
		return nil
	})
	assert.NoError(t, w.WriteAll("copied"))
	assert.Equal(t, "copied", got)
}
