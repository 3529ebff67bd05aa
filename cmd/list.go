package cmd

import (
	"github.com/spf13/cobra"

	"goxform.dev/pkg/goxform/internal/domain/transforms"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in transforms",
		Long:  "List the transforms accepted by run --transform, with their arguments.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			newUI(cmd).DisplayTransforms(transforms.List())
			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
