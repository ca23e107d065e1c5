package ranker

import (
	"container/heap"
	"sort"

	"github.com/google/btree"

	"github.com/katalvlaran/junction/point"
)

// DefaultLeafSize is the leaf capacity used when KDTree.LeafSize is zero.
const DefaultLeafSize = 16

// KDTree ranks edges with per-point nearest-neighbor queries on a KD-tree.
// It returns exactly the BruteForce sequence.
type KDTree struct {
	// LeafSize caps the number of points per leaf; <= 0 means DefaultLeafSize.
	LeafSize int
}

// ClosestNeighbors implements Ranker.
//
// Error Conditions: none; k is clamped to [0, n(n-1)/2] and fewer than two
// points yield an empty slice. Points must share one arity.
//
// Steps:
//  1. Clamp k; build the tree over an index permutation, splitting on the
//     axis of widest spread at the median until leaves hold LeafSize points.
//  2. For every point i, collect its min(k, n-1) nearest neighbors under
//     (weight, index) order. A global top-k edge has fewer than k
//     predecessors, so it is among the first k neighbors of its lower endpoint.
//  3. Insert each pair (i, j) with j > i into a B-tree ordered by Less and
//     drop its maximum whenever it holds more than k edges.
//  4. Read the B-tree in ascending order.
//
// Complexity: O(n log n) build plus about O(n·(k + log n)·log k) for the
// queries on well-spread data; O(n²) in the worst case. Memory: O(n + k).
func (r KDTree) ClosestNeighbors(points []point.Point, k int) []Edge {
	// 1. Clamp and build.
	n := len(points)
	k = budget(n, k)
	if k == 0 {
		return []Edge{}
	}

	leafSize := r.LeafSize
	if leafSize <= 0 {
		leafSize = DefaultLeafSize
	}
	t := newKDIndex(points, leafSize)

	// Each endpoint only ever needs its first k neighbors.
	perPoint := k
	if perPoint > n-1 {
		perPoint = n - 1
	}

	// 2-3. Per-point neighbors feed a bounded ordered set.
	best := btree.NewG[Edge](32, Less)
	h := &neighborHeap{}
	for i := range points {
		*h = (*h)[:0]
		t.nearest(0, i, perPoint, h)
		for _, nb := range *h {
			// The pair is also found from i's side when nb.index < i.
			if nb.index < i {
				continue
			}
			best.ReplaceOrInsert(Edge{Weight: nb.weight, I: i, J: nb.index})
			if best.Len() > k {
				best.DeleteMax()
			}
		}
	}

	// 4. Ascending read-out.
	edges := make([]Edge, 0, best.Len())
	best.Ascend(func(e Edge) bool {
		edges = append(edges, e)
		return true
	})

	return edges
}

// kdNode covers idx[start:end]; lo/hi bound its points per axis.
type kdNode struct {
	start, end  int
	left, right int // -1 for leaves
	lo, hi      []uint64
}

type kdIndex struct {
	points []point.Point
	idx    []int // tree order -> original index
	nodes  []kdNode
	dims   int
}

func newKDIndex(points []point.Point, leafSize int) *kdIndex {
	t := &kdIndex{
		points: points,
		idx:    make([]int, len(points)),
		dims:   points[0].Dim(),
	}
	for i := range t.idx {
		t.idx[i] = i
	}
	t.build(0, len(points), leafSize)

	return t
}

// build appends the node for idx[start:end] and returns its id.
func (t *kdIndex) build(start, end, leafSize int) int {
	id := len(t.nodes)
	lo, hi := t.bounds(start, end)
	t.nodes = append(t.nodes, kdNode{start: start, end: end, left: -1, right: -1, lo: lo, hi: hi})

	if end-start <= leafSize {
		return id
	}

	// Split on the axis with the greatest spread.
	splitDim := 0
	var maxSpread uint64
	for d := 0; d < t.dims; d++ {
		if spread := hi[d] - lo[d]; spread > maxSpread {
			maxSpread, splitDim = spread, d
		}
	}
	if maxSpread == 0 {
		// All points coincide; splitting cannot tighten any bound.
		return id
	}

	sub := t.idx[start:end]
	sort.Slice(sub, func(a, b int) bool {
		return t.points[sub[a]][splitDim] < t.points[sub[b]][splitDim]
	})
	mid := start + (end-start)/2

	left := t.build(start, mid, leafSize)
	right := t.build(mid, end, leafSize)
	t.nodes[id].left, t.nodes[id].right = left, right

	return id
}

func (t *kdIndex) bounds(start, end int) (lo, hi []uint64) {
	lo = make([]uint64, t.dims)
	hi = make([]uint64, t.dims)
	copy(lo, t.points[t.idx[start]])
	copy(hi, t.points[t.idx[start]])
	for _, pi := range t.idx[start+1 : end] {
		for d, v := range t.points[pi] {
			if v < lo[d] {
				lo[d] = v
			}
			if v > hi[d] {
				hi[d] = v
			}
		}
	}

	return lo, hi
}

// minDist is a lower bound on the squared distance from q to any point in node.
func (t *kdIndex) minDist(node int, q point.Point) uint64 {
	nd := &t.nodes[node]
	var sum uint64
	for d, v := range q {
		var gap uint64
		switch {
		case v < nd.lo[d]:
			gap = nd.lo[d] - v
		case v > nd.hi[d]:
			gap = v - nd.hi[d]
		}
		sum += gap * gap
	}

	return sum
}

// nearest collects into h the m nearest neighbors of point q (excluding q
// itself) under (weight, index) order.
func (t *kdIndex) nearest(node, q, m int, h *neighborHeap) {
	nd := &t.nodes[node]
	qp := t.points[q]

	if nd.left < 0 {
		for _, pi := range t.idx[nd.start:nd.end] {
			if pi == q {
				continue
			}
			cand := neighbor{weight: point.Distance(qp, t.points[pi]), index: pi}
			if h.Len() < m {
				heap.Push(h, cand)
			} else if cand.before((*h)[0]) {
				(*h)[0] = cand
				heap.Fix(h, 0)
			}
		}
		return
	}

	near, far := nd.left, nd.right
	nearDist, farDist := t.minDist(near, qp), t.minDist(far, qp)
	if farDist < nearDist {
		near, far = far, near
		farDist = nearDist
	}

	t.nearest(near, q, m, h)
	// Non-strict: a far point at the current worst weight may still win on index.
	if h.Len() < m || farDist <= (*h)[0].weight {
		t.nearest(far, q, m, h)
	}
}

type neighbor struct {
	weight uint64
	index  int
}

func (a neighbor) before(b neighbor) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.index < b.index
}

// neighborHeap is a max-heap: the worst kept neighbor sits at index 0.
type neighborHeap []neighbor

func (h neighborHeap) Len() int           { return len(h) }
func (h neighborHeap) Less(i, j int) bool { return h[j].before(h[i]) }
func (h neighborHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *neighborHeap) Push(x any)        { *h = append(*h, x.(neighbor)) }
func (h *neighborHeap) Pop() any {
	old := *h
	item := old[len(old)-1]
	*h = old[:len(old)-1]

	return item
}
