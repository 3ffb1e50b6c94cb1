package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/printbreak/internal/version"
	"github.com/arthur-debert/printbreak/pkg/logging"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "printbreak",
		Short: "Render values the way a checkpoint shows them",
		Long: `printbreak renders values with the same pipeline the printbreak checkpoints
use: JSON, TOML and YAML hidden in strings are detected and pretty-printed,
nested values are collapsed and long output is truncated.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity, os.Stderr)
			log := logging.GetLogger("cmd")
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Verbosity flag for logging
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := installTopics(rootCmd); err != nil {
		log := logging.GetLogger("cmd")
		log.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version information for printbreak`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}
