package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type aggregateResult struct {
	Edges   int    `yaml:"edges" json:"edges"`
	Sizes   []int  `yaml:"sizes" json:"sizes"`
	Product uint64 `yaml:"product" json:"product"`
}

func (r aggregateResult) raw() string { return fmt.Sprint(r.Product) }

func newAggregateCmd(a *app) *cobra.Command {
	var edges, components int

	cmd := &cobra.Command{
		Use:   "aggregate [file]",
		Short: "Multiply the largest component sizes after N unions",
		Long: `Union the N shortest pairs, then multiply the sizes of the largest
components (three by default).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.readPoints(cmd, args)
			if err != nil {
				return err
			}
			d, err := a.driver()
			if err != nil {
				return err
			}

			sizes, err := d.LargestComponents(points, edges, components)
			if err != nil {
				return err
			}
			product := uint64(1)
			for _, s := range sizes {
				product *= uint64(s)
			}

			return writeResult(cmd.OutOrStdout(), a.output, aggregateResult{Edges: edges, Sizes: sizes, Product: product})
		},
	}

	cmd.Flags().IntVarP(&edges, "edges", "n", 1000, "number of shortest pairs to union")
	cmd.Flags().IntVarP(&components, "components", "m", 3, "number of largest components to multiply")

	return cmd
}
