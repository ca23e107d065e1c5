package dsu

import (
	"fmt"
	"sort"
)

// Forest partitions the indices [0, n) into disjoint sets.
// A Forest is not safe for concurrent use.
type Forest struct {
	parent []int
	size   []int // valid only at roots
	count  int   // number of disjoint sets
}

// New creates a forest of n singleton sets.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &Forest{parent: parent, size: size, count: n}
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of disjoint sets.
func (f *Forest) Count() int { return f.count }

// Find returns the root of the set containing x and points every node on the
// walked path directly at that root.
//
// Error Conditions:
//   - panics with ErrIndexOutOfRange if x is not in [0, Len()).
//
// Steps:
//  1. Walk parent links from x until a node is its own parent.
//  2. Walk the same path again, re-pointing each node at the root.
//
// Both walks are loops, so depth never grows the stack.
// Complexity: amortized O(α(n)) with Union's size rule. Memory: O(1).
func (f *Forest) Find(x int) int {
	f.check(x)

	// 1. Locate the root.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// 2. Compress.
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

// Union merges the sets containing x and y and reports whether a merge
// happened.
//
// Error Conditions:
//   - panics with ErrIndexOutOfRange if x or y is not in [0, Len()).
//
// Steps:
//  1. Find both roots; equal roots (including x == y) are a no-op.
//  2. Order the roots so the smaller set goes under the larger one; on equal
//     sizes root(x) goes under root(y).
//  3. Link, add the sizes at the new root and decrement the set count.
//
// Complexity: amortized O(α(n)). Memory: O(1).
func (f *Forest) Union(x, y int) bool {
	// 1. Roots.
	rootX := f.Find(x)
	rootY := f.Find(y)
	if rootX == rootY {
		return false
	}

	// 2. Size rule with a fixed tie direction.
	if f.size[rootX] > f.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	// 3. Link.
	f.parent[rootX] = rootY
	f.size[rootY] += f.size[rootX]
	f.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (f *Forest) Connected(x, y int) bool {
	return f.Find(x) == f.Find(y)
}

// SizeOf returns the member count of the set rooted at root.
// root must be a value previously returned by Find.
func (f *Forest) SizeOf(root int) int {
	f.check(root)
	if f.parent[root] != root {
		panic(fmt.Errorf("%w: %d", ErrNotRoot, root))
	}

	return f.size[root]
}

// IsFullyConnected reports whether a single set spans every element.
// An empty forest is not connected.
func (f *Forest) IsFullyConnected() bool {
	return f.count == 1
}

// AnchoredConnected reports whether the set containing index 0 has n members.
func (f *Forest) AnchoredConnected() bool {
	if len(f.parent) == 0 {
		return false
	}

	return f.size[f.Find(0)] == len(f.parent)
}

// Roots returns every distinct root in ascending order.
func (f *Forest) Roots() []int {
	roots := make([]int, 0, f.count)
	for i := range f.parent {
		if f.Find(i) == i {
			roots = append(roots, i)
		}
	}

	return roots
}

// ComponentSizes returns the size of every set, largest first.
func (f *Forest) ComponentSizes() []int {
	roots := f.Roots()
	sizes := make([]int, len(roots))
	for i, r := range roots {
		sizes[i] = f.size[r]
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

func (f *Forest) check(x int) {
	if x < 0 || x >= len(f.parent) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, x, len(f.parent)))
	}
}
