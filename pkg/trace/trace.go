// Package trace captures the caller stack of a checkpoint, minus the
// frames that belong to printbreak itself or to the Go runtime.
package trace

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/arthur-debert/printbreak/pkg/style"
)

// MaxFrames is the most frames a trace shows.
const MaxFrames = 15

// OwnPackagePrefix matches every printbreak library package.
const OwnPackagePrefix = "github.com/arthur-debert/printbreak/pkg/"

// DefaultSkipPrefixes are the function name prefixes hidden from traces.
var DefaultSkipPrefixes = []string{OwnPackagePrefix, "runtime.", "runtime/"}

// Frame is one caller.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Tracer captures frames.
type Tracer interface {
	Capture() []Frame
}

// Stack is the runtime-backed Tracer.
type Stack struct {
	SkipPrefixes []string
	Max          int
}

// NewStack returns a Stack with the default filters.
func NewStack() *Stack {
	return &Stack{SkipPrefixes: DefaultSkipPrefixes, Max: MaxFrames}
}

// Capture walks the current goroutine's stack.
func (s *Stack) Capture() []Frame {
	limit := s.Max
	if limit <= 0 {
		limit = MaxFrames
	}

	pcs := make([]uintptr, 128)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var out []Frame
	for {
		f, more := frames.Next()
		if f.Function != "" && !s.skipped(f.Function) {
			out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
			if len(out) == limit {
				break
			}
		}
		if !more {
			break
		}
	}
	return out
}

func (s *Stack) skipped(function string) bool {
	for _, prefix := range s.SkipPrefixes {
		if strings.HasPrefix(function, prefix) {
			return true
		}
	}
	return false
}

// Format renders frames one per entry, numbered from the innermost call.
func Format(frames []Frame, p style.Palette) string {
	if len(frames) == 0 {
		return p.Paint(style.Label, "(no caller frames)")
	}
	var b strings.Builder
	for i, f := range frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s\n    %s",
			p.Paint(style.Punct, fmt.Sprintf("%2d", i)),
			p.Paint(style.TypeName, f.Function),
			p.Paint(style.Location, fmt.Sprintf("%s:%d", f.File, f.Line)),
		)
	}
	return b.String()
}
