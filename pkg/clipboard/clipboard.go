// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/arthur-debert/printbreak/pkg/errors"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System uses the platform clipboard: pbcopy on macOS, xsel, xclip,
// wl-copy or termux-clipboard-set on Linux and the Win32 API on Windows.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New(errors.ErrClipboard, "no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, errors.ErrClipboard, "failed to write clipboard").
			WithDetail("bytes", len(text))
	}
	return nil
}

// Func adapts a function to Writer.
type Func func(text string) error

// WriteAll implements Writer.
func (f Func) WriteAll(text string) error {
	return f(text)
}
