//go:build printbreak_release

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through a few checkpoints over sample values",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "checkpoints are compiled out of this build (printbreak_release)")
			return nil
		},
	}
}
