package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "featured",
		Short:         "Start features on top of a core service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewStartCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
