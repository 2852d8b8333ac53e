package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addPath(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print where the log is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.store.Path)
				return err
			})
		},
	}

	topLevel.AddCommand(cmd)
}
