package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/printbreak/pkg/config"
	"github.com/arthur-debert/printbreak/pkg/debugfmt"
	"github.com/arthur-debert/printbreak/pkg/errors"
	"github.com/arthur-debert/printbreak/pkg/logging"
	"github.com/arthur-debert/printbreak/pkg/render"
	"github.com/arthur-debert/printbreak/pkg/session"
	"github.com/arthur-debert/printbreak/pkg/style"
	"github.com/arthur-debert/printbreak/pkg/terminal"
)

type renderOptions struct {
	full    bool
	raw     bool
	panel   bool
	noColor bool
	depth   int
	border  string
	name    string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a file or stdin as a checkpoint value",
		Long: `Render reads a file (or stdin when the argument is "-" or missing) and
prints it the way a checkpoint would show a string holding that content.

With --raw the input is taken as debug text instead, so the output of
a %#v style dump is indented and collapsed like a structural value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(cmd, path, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.full, "full", false, "Print the full output without collapsing or truncation")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Treat the input as debug text rather than a string value")
	cmd.Flags().BoolVar(&opts.panel, "panel", false, "Wrap the value in a checkpoint panel")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colors")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "Collapse depth for nested values (default from configuration)")
	cmd.Flags().StringVar(&opts.border, "border", "", "Panel border: rounded, sharp, double or ascii")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Name shown for the value (default: file name)")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions) error {
	log := logging.GetLogger("cmd.render")

	if cmd.Flags().Changed("depth") && opts.depth < 0 {
		return errors.Newf(errors.ErrInvalidInput, "depth must be 0 or more, got %d", opts.depth).
			WithDetail("depth", opts.depth)
	}

	content, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("bytes", len(content)).Msg("input read")

	cfg, err := config.Load()
	if errors.IsErrorCode(err, errors.ErrConfigParse) {
		log.Warn().Err(err).Msg("config file ignored, using defaults")
	} else if err != nil {
		log.Debug().Err(err).Msg("using default configuration")
	}
	if cmd.Flags().Changed("depth") {
		cfg.Depth = opts.depth
	}
	if opts.border != "" {
		cfg.Border = config.ParseBorderName(opts.border)
	}

	name := opts.name
	if name == "" {
		name = valueName(path)
	}

	out := cmd.OutOrStdout()
	palette := outputPalette(out, opts.noColor)
	glyphs := style.ParseBorder(cfg.Border).Glyphs()

	debugText := debugfmt.Sprint(content)
	if opts.raw {
		debugText = strings.TrimRight(content, "\n")
	}

	block := render.NewRenderer(render.Options{
		MaxDepth: cfg.Depth,
		Guide:    glyphs.Vertical,
		Palette:  palette,
	}).Render(render.Request{Name: name, DebugText: debugText})

	if opts.full {
		block.Display = block.Full
	}

	if opts.panel {
		panel := session.Panel{
			Number:  1,
			Where:   session.Location{File: name, Line: 1},
			Blocks:  []render.Block{block},
			Glyphs:  glyphs,
			Palette: palette,
		}
		_, err = io.WriteString(out, panel.Render())
	} else {
		_, err = fmt.Fprintln(out, block.Display)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
	}
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInputRead, "failed to read %s", path).
			WithDetail("path", path)
	}
	return string(data), nil
}

func valueName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

// outputPalette colors only real terminals.
func outputPalette(w io.Writer, noColor bool) style.Palette {
	f, ok := w.(*os.File)
	if noColor || !ok || !terminal.IsTerminal(f) || terminal.NoColor() {
		return style.Plain()
	}
	return style.NewPalette(true, termenv.NewOutput(f).EnvColorProfile())
}
