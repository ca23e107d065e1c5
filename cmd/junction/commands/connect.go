package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/ranker"
)

type connectResult struct {
	State  string `yaml:"state" json:"state"`
	Steps  int    `yaml:"steps" json:"steps"`
	I      int    `yaml:"i" json:"i"`
	J      int    `yaml:"j" json:"j"`
	Weight uint64 `yaml:"weight" json:"weight"`
	Value  uint64 `yaml:"value" json:"value"`
}

func (r connectResult) raw() string { return fmt.Sprint(r.Value) }

func newConnectCmd(a *app) *cobra.Command {
	var budget int

	cmd := &cobra.Command{
		Use:   "connect [file]",
		Short: "Find the pair whose connection first joins every point",
		Long: `Scan pairs shortest first and stop at the one that leaves a single
component. Prints the product of that pair's coordinates on --axis.

--budget caps how many ranked pairs are scanned; 0 means every pair.`,
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

			k := budget
			if k == 0 {
				k = ranker.PairCount(len(points))
			}
			res, err := d.FirstFullConnectivity(points, k)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), a.output, connectResult{
				State:  res.State.String(),
				Steps:  res.Steps,
				I:      res.Edge.I,
				J:      res.Edge.J,
				Weight: res.Edge.Weight,
				Value:  res.Value,
			})
		},
	}

	cmd.Flags().IntVarP(&budget, "budget", "k", 0, "maximum ranked pairs to scan (0 = all)")

	return cmd
}
