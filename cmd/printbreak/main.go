package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/printbreak/cmd/printbreak/commands"
	"github.com/arthur-debert/printbreak/pkg/style"
	"github.com/arthur-debert/printbreak/pkg/terminal"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		palette := style.NewPalette(terminal.IsTerminal(os.Stderr) && !terminal.NoColor(), termenv.ANSI)
		fmt.Fprintln(os.Stderr, palette.Paint(style.Error, commands.ErrorMessage(err)))
		os.Exit(commands.ExitCode(err))
	}
}
