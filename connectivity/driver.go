package connectivity

import (
	"fmt"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/point"
	"github.com/katalvlaran/junction/ranker"
)

// Driver runs connectivity queries with a fixed configuration.
type Driver struct {
	opts Options
}

// New builds a Driver from DefaultOptions and opts. An invalid option is
// reported as ErrOptionViolation by every query.
func New(opts ...Option) *Driver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Driver{opts: o}
}

// Options returns a copy of the driver's configuration.
func (d *Driver) Options() Options { return d.opts }

// AggregateAfterN unions the n shortest edges and returns the product of the
// three largest component sizes.
func (d *Driver) AggregateAfterN(points []point.Point, n int) (uint64, error) {
	sizes, err := d.LargestComponents(points, n, 3)
	if err != nil {
		return 0, err
	}

	product := uint64(1)
	for _, s := range sizes {
		product *= uint64(s)
	}

	return product, nil
}

// LargestComponents unions the n shortest edges and returns the m largest
// component sizes, largest first.
func (d *Driver) LargestComponents(points []point.Point, n, m int) ([]int, error) {
	if n < 0 || m < 1 {
		return nil, fmt.Errorf("%w: edges %d, components %d", ErrInvalidCount, n, m)
	}
	if _, err := d.prepare(points); err != nil {
		return nil, err
	}

	edges := d.rank(points, n)
	if len(edges) < n {
		return nil, fmt.Errorf("%w: asked for %d, ranker produced %d", ErrEdgeBudget, n, len(edges))
	}

	f := dsu.New(len(points))
	for _, e := range edges {
		f.Union(e.I, e.J)
	}

	sizes := f.ComponentSizes()
	d.opts.Logger.Debug("unions applied", "edges", n, "components", len(sizes))
	if len(sizes) < m {
		return nil, fmt.Errorf("%w: %d remain after %d unions, need %d", ErrInsufficientComponents, len(sizes), n, m)
	}

	return sizes[:m:m], nil
}

// FirstFullConnectivity scans the k shortest edges in ascending order and
// stops at the first one whose union connects every point.
//
// Error Conditions:
//   - ErrOptionViolation : an option passed to New was invalid.
//   - ErrInvalidCount    : k < 0.
//   - ErrEmptyPoints     : no points.
//   - point.ErrDimensionMismatch, point.ErrEmptyPoint : malformed point set.
//   - point.ErrAxisOutOfRange : the configured axis is not below the arity.
//   - ErrNotConnected    : the k edges ran out first; the Exhausted result is
//     returned alongside. A single point has no edge to report and ends here.
//
// Steps:
//  1. Validate k, the options and the point set; check the axis against the arity.
//  2. Rank at most k edges (Weight, I, J) ascending.
//  3. Start a forest of len(points) singletons in the Scanning state.
//  4. For each edge: union its endpoints, count the step, and test connectivity
//     with the configured Check.
//  5. On the first connected step, move to Connected and return the product of
//     both endpoints' coordinates on the axis.
//  6. If the loop ends, move to Exhausted and report ErrNotConnected.
//
// Complexity: ranking cost plus O(k·α(n)) for the scan. Memory: O(n + k).
func (d *Driver) FirstFullConnectivity(points []point.Point, k int) (Result, error) {
	// 1. Validate inputs.
	res := Result{State: Scanning}
	if k < 0 {
		return res, fmt.Errorf("%w: edges %d", ErrInvalidCount, k)
	}
	dim, err := d.prepare(points)
	if err != nil {
		return res, err
	}
	if d.opts.Axis >= dim {
		return res, fmt.Errorf("connectivity: %w: axis %d, dim %d", point.ErrAxisOutOfRange, d.opts.Axis, dim)
	}

	// 2-3. Rank and start from singletons.
	edges := d.rank(points, k)
	f := dsu.New(len(points))
	// 4. Scan.
	for _, e := range edges {
		res.Steps++
		f.Union(e.I, e.J)
		if !d.connected(f) {
			continue
		}

		// 5. This edge closed the last gap.
		res.State = Connected
		res.Edge = e
		res.Value = points[e.I][d.opts.Axis] * points[e.J][d.opts.Axis]
		d.opts.Logger.Debug("fully connected",
			"step", res.Steps, "i", e.I, "j", e.J, "weight", e.Weight, "value", res.Value)

		return res, nil
	}

	// 6. Budget spent without a single component.
	res.State = Exhausted
	d.opts.Logger.Debug("edges exhausted", "steps", res.Steps, "components", f.Count())

	return res, fmt.Errorf("%w: %d components left after %d edges", ErrNotConnected, f.Count(), res.Steps)
}

// SpanningTree runs Kruskal over the k shortest edges and returns the minimum
// spanning tree of the points.
//
// Error Conditions:
//   - ErrOptionViolation : an option passed to New was invalid.
//   - ErrInvalidCount    : k < 0.
//   - ErrEmptyPoints     : no points.
//   - point.ErrDimensionMismatch, point.ErrEmptyPoint : malformed point set.
//   - ErrNotConnected    : fewer than len(points)-1 tree edges within k.
//
// Steps:
//  1. Validate k, the options and the point set.
//  2. A single point yields an empty tree with zero weight.
//  3. Rank at most k edges (Weight, I, J) ascending.
//  4. For each edge: keep it when Union merges two components, adding its
//     weight and recording it as the current bottleneck.
//  5. Stop once len(points)-1 edges are kept; otherwise ErrNotConnected.
//
// Complexity: ranking cost plus O(k·α(n)). Memory: O(n + k).
func (d *Driver) SpanningTree(points []point.Point, k int) (Tree, error) {
	// 1. Validate inputs.
	if k < 0 {
		return Tree{}, fmt.Errorf("%w: edges %d", ErrInvalidCount, k)
	}
	if _, err := d.prepare(points); err != nil {
		return Tree{}, err
	}

	// 2. Trivial tree.
	n := len(points)
	if n == 1 {
		return Tree{Edges: []ranker.Edge{}}, nil
	}

	// 3. Rank.
	edges := d.rank(points, k)
	f := dsu.New(n)
	tree := Tree{Edges: make([]ranker.Edge, 0, n-1)}
	// 4. Kruskal scan; edges inside one component would close a cycle.
	for _, e := range edges {
		tree.Scanned++
		if !f.Union(e.I, e.J) {
			continue
		}
		tree.Edges = append(tree.Edges, e)
		tree.Weight += e.Weight
		tree.Bottleneck = e
		// 5. Spanning.
		if len(tree.Edges) == n-1 {
			d.opts.Logger.Debug("spanning tree complete", "edges", len(tree.Edges), "scanned", tree.Scanned, "weight", tree.Weight)

			return tree, nil
		}
	}

	return Tree{}, fmt.Errorf("%w: spanning tree has %d of %d edges after %d scanned",
		ErrNotConnected, len(tree.Edges), n-1, tree.Scanned)
}

// prepare surfaces option errors and validates the point set, returning its arity.
func (d *Driver) prepare(points []point.Point) (int, error) {
	if d.opts.err != nil {
		return 0, d.opts.err
	}
	if len(points) == 0 {
		return 0, ErrEmptyPoints
	}
	dim, err := point.Validate(points)
	if err != nil {
		return 0, fmt.Errorf("connectivity: %w", err)
	}

	return dim, nil
}

// rank asks the configured ranker for the k shortest edges and cuts anything
// past k, so a ranker that over-returns cannot add unions.
func (d *Driver) rank(points []point.Point, k int) []ranker.Edge {
	edges := d.opts.Ranker.ClosestNeighbors(points, k)
	if len(edges) > k {
		d.opts.Logger.Debug("ranker over-returned", "budget", k, "edges", len(edges))
		edges = edges[:k:k]
	}
	d.opts.Logger.Debug("edges ranked",
		"ranker", fmt.Sprintf("%T", d.opts.Ranker), "points", len(points), "budget", k, "edges", len(edges))

	return edges
}

func (d *Driver) connected(f *dsu.Forest) bool {
	if d.opts.Check == CheckAnchored {
		return f.AnchoredConnected()
	}

	return f.IsFullyConnected()
}
