package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/ranker"
)

type spanningEdge struct {
	I      int    `yaml:"i" json:"i"`
	J      int    `yaml:"j" json:"j"`
	Weight uint64 `yaml:"weight" json:"weight"`
}

type spanningResult struct {
	Weight  uint64         `yaml:"weight" json:"weight"`
	Scanned int            `yaml:"scanned" json:"scanned"`
	Edges   []spanningEdge `yaml:"edges" json:"edges"`
}

func (r spanningResult) raw() string { return fmt.Sprint(r.Weight) }

func newSpanningCmd(a *app) *cobra.Command {
	var budget int

	cmd := &cobra.Command{
		Use:   "spanning [file]",
		Short: "Minimum spanning tree over the ranked pairs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.readPoints(cmd, args)
			if err != nil {
				return err
			}
			d, err := a.driver()
			if err != nil {
				return err
			}

			k := budget
			if k == 0 {
				k = ranker.PairCount(len(points))
			}
			tree, err := d.SpanningTree(points, k)
			if err != nil {
				return err
			}

			out := spanningResult{Weight: tree.Weight, Scanned: tree.Scanned, Edges: make([]spanningEdge, len(tree.Edges))}
			for i, e := range tree.Edges {
				out.Edges[i] = spanningEdge{I: e.I, J: e.J, Weight: e.Weight}
			}

			return writeResult(cmd.OutOrStdout(), a.output, out)
		},
	}

	cmd.Flags().IntVarP(&budget, "budget", "k", 0, "maximum ranked pairs to scan (0 = all)")

	return cmd
}
