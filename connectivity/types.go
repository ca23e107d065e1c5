package connectivity

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/junction/ranker"
)

// Sentinel errors for connectivity queries.
var (
	// ErrEmptyPoints indicates a query over an empty point set.
	ErrEmptyPoints = errors.New("connectivity: no points")

	// ErrInvalidCount indicates a negative edge count or a non-positive component count.
	ErrInvalidCount = errors.New("connectivity: invalid count")

	// ErrEdgeBudget indicates the ranker yielded fewer edges than the query asked for.
	ErrEdgeBudget = errors.New("connectivity: not enough edges")

	// ErrInsufficientComponents indicates fewer components than requested remain after the unions.
	ErrInsufficientComponents = errors.New("connectivity: insufficient components")

	// ErrNotConnected indicates the ranked edges were exhausted before every point was connected.
	// Retrying with a larger edge budget may succeed.
	ErrNotConnected = errors.New("connectivity: points not fully connected")

	// ErrOptionViolation indicates an invalid Option passed to New.
	ErrOptionViolation = errors.New("connectivity: invalid option supplied")
)

// Check selects how a query decides that the forest is fully connected.
type Check int

const (
	// CheckAll requires a single remaining set (every Find agrees).
	CheckAll Check = iota
	// CheckAnchored requires the set containing index 0 to hold every point.
	CheckAnchored
)

// String returns the flag spelling of c.
func (c Check) String() string {
	switch c {
	case CheckAll:
		return "all"
	case CheckAnchored:
		return "anchored"
	default:
		return fmt.Sprintf("Check(%d)", int(c))
	}
}

// ParseCheck maps "all" or "anchored" to a Check.
func ParseCheck(s string) (Check, error) {
	switch s {
	case "all", "":
		return CheckAll, nil
	case "anchored":
		return CheckAnchored, nil
	default:
		return 0, fmt.Errorf("%w: unknown check %q", ErrOptionViolation, s)
	}
}

// Options configures a Driver. Use DefaultOptions and the With* helpers.
type Options struct {
	// Ranker produces the ascending edge sequence.
	Ranker ranker.Ranker

	// Axis is the coordinate axis multiplied to form FirstFullConnectivity's value.
	Axis int

	// Check selects the full-connectivity test.
	Check Check

	// Logger receives Debug records; it discards by default.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - Ranker = ranker.BruteForce{}
//   - Axis   = 0 (X)
//   - Check  = CheckAll
//   - Logger discards everything.
func DefaultOptions() Options {
	return Options{
		Ranker: ranker.BruteForce{},
		Axis:   0,
		Check:  CheckAll,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRanker selects the ranking strategy. nil keeps the current one.
func WithRanker(r ranker.Ranker) Option {
	return func(o *Options) {
		if r != nil {
			o.Ranker = r
		}
	}
}

// WithAxis selects the coordinate axis for the derived value.
// A negative axis is recorded as ErrOptionViolation.
func WithAxis(axis int) Option {
	return func(o *Options) {
		if axis < 0 {
			o.err = fmt.Errorf("%w: axis cannot be negative (%d)", ErrOptionViolation, axis)
			return
		}
		o.Axis = axis
	}
}

// WithCheck selects the full-connectivity test.
func WithCheck(c Check) Option {
	return func(o *Options) {
		if c != CheckAll && c != CheckAnchored {
			o.err = fmt.Errorf("%w: unknown check %v", ErrOptionViolation, c)
			return
		}
		o.Check = c
	}
}

// WithLogger routes Debug records to l. nil keeps the current logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// State is the position of a FirstFullConnectivity scan.
type State int

const (
	// Scanning: edges remain and the forest is not yet connected.
	Scanning State = iota
	// Connected: the last processed edge connected every point. Terminal.
	Connected
	// Exhausted: the edge sequence ended first. Terminal.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Connected:
		return "connected"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result reports the outcome of FirstFullConnectivity.
type Result struct {
	// State is Connected on success and Exhausted otherwise.
	State State
	// Value is Coord(axis) of Edge.I times Coord(axis) of Edge.J. Zero unless Connected.
	Value uint64
	// Edge is the edge whose union connected every point.
	Edge ranker.Edge
	// Steps counts the edges processed, the connecting one included.
	Steps int
}

// Tree is a minimum spanning tree over the ranked edges.
type Tree struct {
	// Edges lists, in scan order, the edges that merged two components.
	Edges []ranker.Edge
	// Weight is the sum of Edges' weights.
	Weight uint64
	// Bottleneck is the last (heaviest) edge added; zero for a single point.
	Bottleneck ranker.Edge
	// Scanned counts ranked edges examined, including skipped ones.
	Scanned int
}
