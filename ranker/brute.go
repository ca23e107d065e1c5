package ranker

import (
	"sort"

	"github.com/katalvlaran/junction/point"
)

// BruteForce enumerates every unordered pair once in (i, j) order, stable
// sorts by weight and truncates to k.
type BruteForce struct{}

// ClosestNeighbors implements Ranker.
func (BruteForce) ClosestNeighbors(points []point.Point, k int) []Edge {
	k = budget(len(points), k)
	if k == 0 {
		return []Edge{}
	}

	edges := make([]Edge, 0, PairCount(len(points)))
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			edges = append(edges, Edge{Weight: point.Distance(points[i], points[j]), I: i, J: j})
		}
	}

	// Stable sort keeps equal weights in generation order, i.e. by (I, J).
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	return edges[:k:k]
}
