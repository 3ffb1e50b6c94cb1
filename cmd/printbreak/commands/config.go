package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/printbreak/pkg/config"
)

func newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the checkpoint configuration",
		Long: `Config prints the settings a checkpoint would use right now, after
the user config file and PRINT_BREAK* variables are applied.

With --defaults it prints the built-in defaults file instead, which is a
good starting point for $XDG_CONFIG_HOME/printbreak/config.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				fmt.Fprint(out, config.DefaultsContent())
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "# user config: %s\n", config.UserConfigPath())
			fmt.Fprintf(out, "enabled = %t\n", cfg.Enabled)
			fmt.Fprintf(out, "depth = %d\n", cfg.Depth)
			fmt.Fprintf(out, "border = %q\n", cfg.Border)
			fmt.Fprintf(out, "log = %q\n", cfg.Log)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults file")

	return cmd
}
