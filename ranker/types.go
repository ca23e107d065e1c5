package ranker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/junction/point"
)

// ErrUnknownRanker is returned by ByName for an unregistered strategy name.
var ErrUnknownRanker = errors.New("ranker: unknown strategy")

// Edge is an unordered point pair canonicalized so that I < J, weighted by the
// squared Euclidean distance between points I and J.
type Edge struct {
	Weight uint64
	I, J   int
}

// Less is the total order every Ranker must honor: ascending Weight, ties
// broken by I, then J.
func Less(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.I != b.I {
		return a.I < b.I
	}

	return a.J < b.J
}

// PairCount returns the number of unordered pairs over n points.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Ranker produces the k globally shortest edges of points in ascending Less order.
type Ranker interface {
	ClosestNeighbors(points []point.Point, k int) []Edge
}

// RankerFunc adapts a plain function into a Ranker.
type RankerFunc func(points []point.Point, k int) []Edge

// ClosestNeighbors calls f(points, k).
func (f RankerFunc) ClosestNeighbors(points []point.Point, k int) []Edge { return f(points, k) }

// Strategy names accepted by ByName.
const (
	NameBruteForce = "brute"
	NameBounded    = "bounded"
	NameKDTree     = "kdtree"
)

// ByName returns the strategy registered under name.
func ByName(name string) (Ranker, error) {
	switch name {
	case NameBruteForce:
		return BruteForce{}, nil
	case NameBounded:
		return Bounded{}, nil
	case NameKDTree:
		return KDTree{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownRanker, name, Names())
	}
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := []string{NameBruteForce, NameBounded, NameKDTree}
	sort.Strings(names)

	return names
}

// budget clamps k to the number of available pairs.
func budget(n, k int) int {
	if k <= 0 {
		return 0
	}
	if total := PairCount(n); k > total {
		return total
	}

	return k
}
