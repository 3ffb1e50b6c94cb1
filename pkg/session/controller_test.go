// pkg/session/controller_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Mock clipboard, fake tracer, scripted input
// PURPOSE: Test the checkpoint flow and the interactive command loop

package session

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/printbreak/pkg/config"
	"github.com/arthur-debert/printbreak/pkg/trace"
)

// MockClipboard is a mock implementation of clipboard.Writer
type MockClipboard struct {
	mock.Mock
}

func (m *MockClipboard) WriteAll(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

type fakeTracer struct {
	frames []trace.Frame
}

func (f fakeTracer) Capture() []trace.Frame { return f.frames }

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, stderrors.New("tty gone") }

type harness struct {
	out   *bytes.Buffer
	exits []int
	cfg   config.Config
}

func newHarness(t *testing.T, input string, interactive bool, opts ...Option) (*Controller, *harness) {
	t.Helper()
	h := &harness{out: &bytes.Buffer{}, cfg: config.Defaults()}
	h.cfg.Border = "sharp"

	base := []Option{
		WithInput(strings.NewReader(input)),
		WithOutput(h.out),
		WithInteractive(interactive),
		WithColor(false),
		WithExit(func(code int) { h.exits = append(h.exits, code) }),
		WithConfigLoader(func() (config.Config, error) { return h.cfg, nil }),
		WithTracer(fakeTracer{}),
	}
	return New(append(base, opts...)...), h
}

var here = Location{File: "main.go", Line: 3}

func TestCheckpointDisabled(t *testing.T) {
	c, h := newHarness(t, "", false)
	h.cfg.Enabled = false

	c.Checkpoint(here, Value{Name: "x", Value: 1})

	assert.Empty(t, h.out.String())
	assert.Equal(t, int64(0), c.State().Count())
	assert.False(t, c.Enabled())
}

func TestCheckpointNonInteractive(t *testing.T) {
	c, h := newHarness(t, "", false)

	c.Checkpoint(here, Value{Name: "x", Value: 42}, Value{Name: "name", Value: "ada"})

	out := h.out.String()
	assert.Contains(t, out, "┌─ BREAK #1 ")
	assert.Contains(t, out, "│ main.go:3")
	assert.Contains(t, out, "│ x = 42\n")
	assert.Contains(t, out, "│ name=\n│   (string, 3 chars)\n│   ada\n")
	assert.True(t, strings.HasSuffix(out, "(non-interactive mode, continuing...)\n"))
	assert.NotContains(t, out, PromptText)
	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, int64(1), c.State().Count())
	assert.Equal(t, "x = 42\n\nname = (string, 3 chars)\nada\n\n", c.State().FullOutput())
}

func TestCheckpointZeroValues(t *testing.T) {
	c, h := newHarness(t, "", false)
	c.State().SetFullOutput("stale")

	c.Checkpoint(here)

	assert.NotContains(t, h.out.String(), "├")
	assert.Empty(t, c.State().FullOutput())
}

func TestCheckpointElapsed(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c, h := newHarness(t, "", false, WithClock(func() time.Time { return now }))

	c.Checkpoint(here)
	assert.NotContains(t, h.out.String(), "(+")

	now = now.Add(12300 * time.Microsecond)
	c.Checkpoint(here)
	assert.Contains(t, h.out.String(), "BREAK #2 (+12.3ms) ")
}

func TestCheckpointDepthAndBorder(t *testing.T) {
	type leaf struct{ V int }
	type mid struct{ L leaf }
	type root struct{ M mid }

	c, h := newHarness(t, "", false)
	h.cfg.Depth = 1
	h.cfg.Border = "ascii"

	c.Checkpoint(here, Value{Name: "r", Value: root{}})

	out := h.out.String()
	assert.Contains(t, out, "+- BREAK #1 ")
	assert.Contains(t, out, "|   | M: session.mid { ... },")
	assert.Contains(t, c.State().FullOutput(), "V: 0")
}

func TestCommandContinue(t *testing.T) {
	for _, input := range []string{"\n", "whatever\n", ""} {
		c, h := newHarness(t, input, true)
		c.Checkpoint(here, Value{Name: "x", Value: 1})

		out := h.out.String()
		assert.Equal(t, 1, strings.Count(out, PromptText), "input %q", input)
		assert.Empty(t, h.exits)
		assert.False(t, c.State().Skipping())
	}
}

func TestCommandQuit(t *testing.T) {
	c, h := newHarness(t, "q\n", true)
	c.Checkpoint(here, Value{Name: "x", Value: 1})

	assert.Contains(t, h.out.String(), "Quitting...\n")
	assert.Equal(t, []int{0}, h.exits)
}

func TestCommandSkip(t *testing.T) {
	c, h := newHarness(t, "s\n", true)
	c.Checkpoint(here, Value{Name: "x", Value: 1})

	assert.Contains(t, h.out.String(), "Skipping remaining breakpoints...\n")
	assert.True(t, c.State().Skipping())
	assert.False(t, c.Enabled())

	before := h.out.Len()
	c.Checkpoint(here, Value{Name: "y", Value: 2})
	assert.Equal(t, before, h.out.Len())
	assert.Equal(t, int64(1), c.State().Count())
}

func TestCommandMore(t *testing.T) {
	values := make([]int, 70)
	c, h := newHarness(t, "m\n\n", true)
	c.Checkpoint(here, Value{Name: "values", Value: values})

	out := h.out.String()
	assert.Contains(t, out, "... (22 more lines)")
	require.Contains(t, out, "─── Full Output ───")
	full := out[strings.Index(out, "─── Full Output ───"):]
	assert.Equal(t, 70, strings.Count(full, "│ 0,"))
	assert.Equal(t, 2, strings.Count(out, PromptText))
}

func TestCommandMoreWithoutOutput(t *testing.T) {
	c, h := newHarness(t, "more\n", true)
	c.Checkpoint(here)

	assert.Contains(t, h.out.String(), "(no truncated output to show)")
}

func TestCommandTrace(t *testing.T) {
	frames := []trace.Frame{{Function: "main.main", File: "/src/main.go", Line: 9}}
	c, h := newHarness(t, "t\n\n", true, WithTracer(fakeTracer{frames: frames}))
	c.Checkpoint(here)

	out := h.out.String()
	assert.Contains(t, out, "─── Trace ───")
	assert.Contains(t, out, " 0 main.main\n    /src/main.go:9")
}

func TestCommandCopy(t *testing.T) {
	clip := &MockClipboard{}
	clip.On("WriteAll", "x = 42\n\n").Return(nil)

	c, h := newHarness(t, "c\n\n", true, WithClipboard(clip), WithColor(true))
	c.Checkpoint(here, Value{Name: "x", Value: 42})

	clip.AssertExpectations(t)
	assert.Contains(t, h.out.String(), "Copied 8 characters to the clipboard")
}

func TestCommandCopyFailure(t *testing.T) {
	clip := &MockClipboard{}
	clip.On("WriteAll", mock.Anything).Return(stderrors.New("no xclip"))

	c, h := newHarness(t, "copy\n", true, WithClipboard(clip))
	c.Checkpoint(here, Value{Name: "x", Value: 1})

	assert.Contains(t, h.out.String(), "Copy failed: no xclip")
	assert.Empty(t, h.exits)
}

func TestCommandCopyNothing(t *testing.T) {
	clip := &MockClipboard{}
	c, h := newHarness(t, "c\n", true, WithClipboard(clip))
	c.Checkpoint(here)

	assert.Contains(t, h.out.String(), "(nothing to copy)")
	clip.AssertNotCalled(t, "WriteAll", mock.Anything)
}

func TestCommandHelp(t *testing.T) {
	c, h := newHarness(t, "h\n\n", true)
	c.Checkpoint(here)

	out := h.out.String()
	assert.Contains(t, out, "# Checkpoint commands")
	assert.Contains(t, out, "PRINT_BREAK_DEPTH")
	assert.Equal(t, 2, strings.Count(out, PromptText))
}

func TestCommandReadError(t *testing.T) {
	c, h := newHarness(t, "", true, WithInput(failingReader{}))
	c.Checkpoint(here)

	assert.Contains(t, h.out.String(), "failed to read command: tty gone")
}

func TestInputIsSharedAcrossCheckpoints(t *testing.T) {
	c, h := newHarness(t, "\ns\n", true)
	c.Checkpoint(here)
	c.Checkpoint(here)

	assert.Contains(t, h.out.String(), "BREAK #2")
	assert.True(t, c.State().Skipping())
}

func TestCommandLeavesRestOfInput(t *testing.T) {
	in := strings.NewReader("m\n\nhost line 1\nhost line 2\n")
	c, h := newHarness(t, "", true, WithInput(in))
	c.Checkpoint(here, Value{Name: "x", Value: 1})

	assert.Contains(t, h.out.String(), "─── Full Output ───")
	rest, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "host line 1\nhost line 2\n", string(rest))
}
