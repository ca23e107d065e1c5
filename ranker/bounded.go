package ranker

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/junction/point"
)

// Bounded yields the same sequence as BruteForce while holding at most k
// edges in memory: a max-heap under Less keeps the k best pairs seen so far.
type Bounded struct{}

// ClosestNeighbors implements Ranker.
func (Bounded) ClosestNeighbors(points []point.Point, k int) []Edge {
	k = budget(len(points), k)
	if k == 0 {
		return []Edge{}
	}

	// Worst edge on top.
	h := binaryheap.NewWith(func(a, b interface{}) int {
		return -compare(a.(Edge), b.(Edge))
	})

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			e := Edge{Weight: point.Distance(points[i], points[j]), I: i, J: j}
			if h.Size() < k {
				h.Push(e)
				continue
			}
			top, _ := h.Peek()
			if Less(e, top.(Edge)) {
				h.Pop()
				h.Push(e)
			}
		}
	}

	edges := make([]Edge, h.Size())
	for idx := len(edges) - 1; idx >= 0; idx-- {
		v, _ := h.Pop()
		edges[idx] = v.(Edge)
	}

	return edges
}

// compare is the three-way form of Less.
func compare(a, b Edge) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}
