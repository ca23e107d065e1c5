package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/connectivity"
	"github.com/katalvlaran/junction/point"
	"github.com/katalvlaran/junction/ranker"
)

// app carries the global flag values and the state derived from them.
type app struct {
	cfgFile    string
	rankerName string
	check      string
	axis       int
	output     string
	verbose    bool

	logger *slog.Logger
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "junction",
		Short: "Connectivity queries over integer point sets",
		Long: `junction ranks point pairs by squared Euclidean distance and connects them
with a union-find forest, one pair at a time.

Examples:
  # Product of the three largest groups after the 1000 shortest connections
  junction aggregate -n 1000 points.txt

  # The pair that finally connects everything, X coordinates multiplied
  junction connect points.txt

  # Same, with a KD-tree ranker and Z as the designated axis
  junction connect --ranker kdtree --axis 2 points.txt

  # Settings from a run file; explicit flags still win
  junction --config run.yaml aggregate points.txt
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML run file with default settings")
	pf.StringVarP(&a.rankerName, "ranker", "r", ranker.NameBruteForce, fmt.Sprintf("ranking strategy %v", ranker.Names()))
	pf.StringVar(&a.check, "check", connectivity.CheckAll.String(), "full-connectivity test: all or anchored")
	pf.IntVar(&a.axis, "axis", 0, "coordinate axis multiplied by connect (0 = X)")
	pf.StringVarP(&a.output, "output", "o", string(formatRaw), "output format: raw, yaml or json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newAggregateCmd(a),
		newConnectCmd(a),
		newSpanningCmd(a),
		newRankersCmd(),
	)

	return root
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup configures logging and merges the run file under the explicit flags.
func (a *app) setup(cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if a.verbose {
		logLevel = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(a.logger)

	if a.cfgFile == "" {
		return nil
	}
	cfg, err := loadRunConfig(a.cfgFile)
	if err != nil {
		return err
	}
	a.logger.Debug("run file loaded", "path", a.cfgFile)
	a.apply(cfg, cmd)

	return nil
}

// driver builds a connectivity.Driver from the resolved settings.
func (a *app) driver() (*connectivity.Driver, error) {
	r, err := ranker.ByName(a.rankerName)
	if err != nil {
		return nil, err
	}
	c, err := connectivity.ParseCheck(a.check)
	if err != nil {
		return nil, err
	}

	return connectivity.New(
		connectivity.WithRanker(r),
		connectivity.WithCheck(c),
		connectivity.WithAxis(a.axis),
		connectivity.WithLogger(a.logger),
	), nil
}

// readPoints loads points from the single optional file argument, or stdin
// when it is absent or "-".
func (a *app) readPoints(cmd *cobra.Command, args []string) ([]point.Point, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}

	points, err := point.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.logger.Debug("points loaded",
		"source", name,
		"points", humanize.Comma(int64(len(points))),
		"pairs", humanize.Comma(int64(ranker.PairCount(len(points)))))

	return points, nil
}
