package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/ranker"
)

func newRankersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rankers",
		Short: "List ranking strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range ranker.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
