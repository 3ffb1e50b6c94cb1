// Package session runs checkpoints: it renders the values, prints the
// panel and drives the interactive command loop.
package session

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/arthur-debert/printbreak/pkg/clipboard"
	"github.com/arthur-debert/printbreak/pkg/config"
	"github.com/arthur-debert/printbreak/pkg/debugfmt"
	"github.com/arthur-debert/printbreak/pkg/errors"
	"github.com/arthur-debert/printbreak/pkg/logging"
	"github.com/arthur-debert/printbreak/pkg/render"
	"github.com/arthur-debert/printbreak/pkg/style"
	"github.com/arthur-debert/printbreak/pkg/terminal"
	"github.com/arthur-debert/printbreak/pkg/trace"
)

// Value is a named value handed to a checkpoint.
type Value struct {
	Name  string
	Value interface{}
}

// Controller owns a State and everything a checkpoint talks to.
type Controller struct {
	state *State

	in   io.Reader
	inMu sync.Mutex
	out  io.Writer

	interactive *bool
	color       *bool

	exit       func(code int)
	clip       clipboard.Writer
	tracer     trace.Tracer
	loadConfig func() (config.Config, error)
	now        func() time.Time
	detectTerm func() terminal.Info
}

// Option configures a Controller.
type Option func(*Controller)

// WithInput sets the command source. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(c *Controller) { c.in = r }
}

// WithOutput sets where panels go. Defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(c *Controller) { c.out = w }
}

// WithInteractive overrides terminal detection for the command loop.
func WithInteractive(interactive bool) Option {
	return func(c *Controller) { c.interactive = &interactive }
}

// WithColor overrides color detection.
func WithColor(color bool) Option {
	return func(c *Controller) { c.color = &color }
}

// WithExit replaces os.Exit for the quit command.
func WithExit(exit func(code int)) Option {
	return func(c *Controller) { c.exit = exit }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(w clipboard.Writer) Option {
	return func(c *Controller) { c.clip = w }
}

// WithTracer replaces the stack tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// WithConfigLoader replaces config.Load.
func WithConfigLoader(load func() (config.Config, error)) Option {
	return func(c *Controller) { c.loadConfig = load }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New returns a controller with its own State.
func New(opts ...Option) *Controller {
	c := &Controller{
		state:      &State{},
		in:         os.Stdin,
		out:        os.Stderr,
		exit:       os.Exit,
		clip:       clipboard.System{},
		tracer:     trace.NewStack(),
		loadConfig: config.Load,
		now:        time.Now,
		detectTerm: terminal.Detect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the controller's shared state.
func (c *Controller) State() *State {
	return c.state
}

func (c *Controller) config() config.Config {
	cfg, err := c.loadConfig()
	// An empty level leaves logging as the host set it up.
	if cfg.Log != "" {
		logging.Configure(cfg.Log)
	}
	if err != nil {
		log := logging.GetLogger("session")
		log.Debug().Err(err).Msg("using default configuration")
	}
	return cfg
}

// Enabled reports whether a checkpoint would run right now.
func (c *Controller) Enabled() bool {
	if c.state.Skipping() {
		return false
	}
	return c.config().Enabled
}

// Checkpoint renders values, prints the panel and waits for a command
// when attached to a terminal. It does nothing when checkpoints are
// disabled or skipped.
func (c *Controller) Checkpoint(where Location, values ...Value) {
	if c.state.Skipping() {
		return
	}
	cfg := c.config()
	if !cfg.Enabled {
		return
	}

	log := logging.GetLogger("session")
	done := logging.LogOperationStart(log, "checkpoint")
	defer done()

	interactive, palette := c.terminalState()
	number := c.state.Next()
	elapsed := ""
	if d, ok := c.state.MarkTime(c.now()); ok {
		elapsed = FormatElapsed(d)
	}

	glyphs := style.ParseBorder(cfg.Border).Glyphs()
	renderer := render.NewRenderer(render.Options{
		MaxDepth: cfg.Depth,
		Guide:    glyphs.Vertical,
		Palette:  palette,
	})

	blocks := make([]render.Block, len(values))
	for i, v := range values {
		blocks[i] = renderer.Render(render.Request{Name: v.Name, DebugText: debugfmt.Sprint(v.Value)})
	}
	c.state.SetFullOutput(render.FullOutput(blocks))

	panel := Panel{
		Number:  number,
		Elapsed: elapsed,
		Where:   where,
		Blocks:  blocks,
		Glyphs:  glyphs,
		Palette: palette,
	}
	c.write(panel.Render())

	log.Debug().
		Int64("break", number).
		Str("location", where.String()).
		Int("values", len(values)).
		Bool("interactive", interactive).
		Msg("checkpoint shown")

	c.await(interactive, palette)
}

func (c *Controller) terminalState() (bool, style.Palette) {
	var info terminal.Info
	if c.interactive == nil || c.color == nil {
		info = c.detectTerm()
	}

	interactive := info.Interactive
	if c.interactive != nil {
		interactive = *c.interactive
	}

	color := info.Color
	if c.color != nil {
		color = *c.color
	} else if c.interactive != nil {
		color = interactive && !terminal.NoColor()
	}

	return interactive, style.NewPalette(color, info.Profile)
}

func (c *Controller) write(s string) {
	if _, err := io.WriteString(c.out, s); err != nil {
		log := logging.GetLogger("session")
		log.Debug().
			Err(errors.Wrap(err, errors.ErrOutputWrite, "failed to write panel")).
			Msg("output lost")
	}
}

// await runs the command loop. Each iteration does one blocking read.
func (c *Controller) await(interactive bool, p style.Palette) {
	if !interactive {
		c.write(p.Paint(style.Label, "(non-interactive mode, continuing...)") + "\n")
		return
	}

	for {
		c.write(p.Paint(style.Prompt, PromptText) + " ")

		line, err := c.readLine()
		if err != nil && err != io.EOF {
			c.write(p.Paint(style.Error, "failed to read command: "+err.Error()) + "\n")
			log := logging.GetLogger("session")
			log.Debug().
				Err(errors.Wrap(err, errors.ErrInputRead, "command read failed")).
				Msg("leaving checkpoint")
			return
		}
		if err == io.EOF && line == "" {
			c.write("\n")
			return
		}

		cmd := ParseCommand(line)
		c.run(cmd, p)
		if !cmd.reprompts() {
			return
		}
	}
}

// readLine reads up to and including the next newline, one byte at a
// time, so input after the command stays in stdin for the host program.
func (c *Controller) readLine() (string, error) {
	c.inMu.Lock()
	defer c.inMu.Unlock()

	var line []byte
	var b [1]byte
	for {
		n, err := c.in.Read(b[:])
		if n == 1 {
			line = append(line, b[0])
			if b[0] == '\n' {
				return string(line), nil
			}
		}
		if err != nil {
			return string(line), err
		}
	}
}

func (c *Controller) run(cmd Command, p style.Palette) {
	switch cmd {
	case CmdQuit:
		c.write(p.Paint(style.Error, "Quitting...") + "\n")
		c.exit(0)
	case CmdSkip:
		c.state.SkipAll()
		c.write(p.Paint(style.Warning, "Skipping remaining breakpoints...") + "\n")
	case CmdMore:
		c.more(p)
	case CmdTrace:
		frames := c.tracer.Capture()
		c.write("\n" + p.Paint(style.Heading, "─── Trace ───") + "\n" +
			trace.Format(frames, p) + "\n" +
			p.Paint(style.Heading, "─────────────") + "\n\n")
	case CmdCopy:
		c.copy(p)
	case CmdHelp:
		c.write(c.helpRenderer(p).Render(helpMarkdown) + "\n")
	}
}

func (c *Controller) more(p style.Palette) {
	full := c.state.FullOutput()
	if full == "" {
		c.write(p.Paint(style.Label, "(no truncated output to show)") + "\n")
		return
	}
	var b strings.Builder
	b.WriteString("\n" + p.Paint(style.Heading, "─── Full Output ───") + "\n")
	for _, line := range strings.Split(strings.TrimRight(full, "\n"), "\n") {
		b.WriteString(line + "\n")
	}
	b.WriteString(p.Paint(style.Heading, "───────────────────") + "\n\n")
	c.write(b.String())
}

func (c *Controller) copy(p style.Palette) {
	text := render.ClipboardText(c.state.FullOutput())
	if text == "" {
		c.write(p.Paint(style.Label, "(nothing to copy)") + "\n")
		return
	}
	if err := c.clip.WriteAll(text); err != nil {
		c.write(p.Paint(style.Error, "Copy failed: "+err.Error()) + "\n")
		log := logging.GetLogger("session")
		log.Debug().Err(err).Msg("clipboard write failed")
		return
	}
	c.write(p.Paintf(style.Success, "Copied %s characters to the clipboard", humanize.Comma(int64(len([]rune(text))))) + "\n")
}

func (c *Controller) helpRenderer(p style.Palette) HelpRenderer {
	if !p.Enabled() {
		return PlainHelp{}
	}
	return GlamourHelp{Style: "dark", Width: 72, Profile: p.Profile()}
}
