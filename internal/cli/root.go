package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "schedulectl" command
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "schedulectl",
		Short:         "Salon schedule layout tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(),
		newCodeCmd(),
	)

	return root
}
