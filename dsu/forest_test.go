package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/junction/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singletons(t *testing.T) {
	f := dsu.New(5)

	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, f.Find(i), "each element starts as its own root")
		assert.Equal(t, 1, f.SizeOf(i))
	}
	assert.Equal(t, []int{1, 1, 1, 1, 1}, f.ComponentSizes())
}

func TestUnion_MergesAndIsIdempotent(t *testing.T) {
	f := dsu.New(5)

	require.True(t, f.Union(1, 3))
	assert.Equal(t, f.Find(1), f.Find(3))
	assert.True(t, f.Connected(3, 1))

	root := f.Find(1)
	assert.Equal(t, 2, f.SizeOf(root))
	assert.Equal(t, 4, f.Count())

	// Repeating the union changes nothing.
	assert.False(t, f.Union(1, 3))
	assert.False(t, f.Union(3, 1))
	assert.Equal(t, root, f.Find(3))
	assert.Equal(t, 2, f.SizeOf(root))
	assert.Equal(t, 4, f.Count())
}

func TestUnion_SelfEdgeIsNoop(t *testing.T) {
	f := dsu.New(3)

	assert.False(t, f.Union(2, 2))
	assert.Equal(t, 3, f.Count())
	assert.Equal(t, 1, f.SizeOf(2))
}

func TestUnion_TieAttachesFirstUnderSecond(t *testing.T) {
	f := dsu.New(4)

	f.Union(0, 1)
	assert.Equal(t, 1, f.Find(0), "on equal sizes root(x) goes under root(y)")

	f.Union(2, 3)
	f.Union(1, 3)
	assert.Equal(t, 3, f.Find(0))
	assert.Equal(t, 4, f.SizeOf(3))
}

func TestUnion_BySize(t *testing.T) {
	f := dsu.New(4)
	f.Union(0, 1)
	f.Union(0, 2)
	big := f.Find(0)

	// The singleton must go under the larger tree whatever the argument order.
	f.Union(big, 3)
	assert.Equal(t, big, f.Find(3))
	assert.Equal(t, 4, f.SizeOf(big))
}

func TestFind_AgreesOnRoot(t *testing.T) {
	f := dsu.New(6)
	// Build a deep chain by always merging the current root with a fresh singleton
	// that wins the tie.
	f.Union(0, 1)
	f.Union(2, 3)
	f.Union(1, 3)
	f.Union(4, 5)
	f.Union(5, 3)

	root := f.Find(0)
	for i := 0; i < 6; i++ {
		assert.Equal(t, root, f.Find(i))
	}
	assert.Equal(t, 6, f.SizeOf(root))
	assert.Equal(t, []int{root}, f.Roots())
}

func TestFind_DeepChainDoesNotRecurse(t *testing.T) {
	const n = 1 << 16
	f := dsu.New(n)
	// Pairwise merges build a balanced tree of height log2(n), the deepest
	// union-by-size allows; Find walks it with a loop.
	for step := 1; step < n; step *= 2 {
		for i := 0; i+step < n; i += 2 * step {
			f.Union(i, i+step)
		}
	}

	assert.True(t, f.IsFullyConnected())
	assert.Equal(t, n, f.SizeOf(f.Find(n-1)))
}

func TestOutOfRangePanics(t *testing.T) {
	f := dsu.New(3)

	assert.PanicsWithError(t, "dsu: index out of range: 3 not in [0, 3)", func() { f.Find(3) })
	assert.Panics(t, func() { f.Union(-1, 0) })
	assert.Panics(t, func() { f.Union(0, 7) })
}

func TestSizeOf_NonRootPanics(t *testing.T) {
	f := dsu.New(2)
	f.Union(0, 1)

	assert.Panics(t, func() { f.SizeOf(0) })
	assert.Equal(t, 2, f.SizeOf(1))
}

func TestConnectivityChecks(t *testing.T) {
	empty := dsu.New(0)
	assert.False(t, empty.IsFullyConnected())
	assert.False(t, empty.AnchoredConnected())

	single := dsu.New(1)
	assert.True(t, single.IsFullyConnected())
	assert.True(t, single.AnchoredConnected())

	f := dsu.New(4)
	f.Union(1, 2)
	f.Union(2, 3)
	// Everything but index 0 is merged: both checks agree it is not connected.
	assert.False(t, f.IsFullyConnected())
	assert.False(t, f.AnchoredConnected())

	f.Union(3, 0)
	assert.True(t, f.IsFullyConnected())
	assert.True(t, f.AnchoredConnected())
}

// TestRandomUnions_MatchesNaiveLabels checks the forest invariants against a
// quadratic relabeling reference on seeded random union sequences.
func TestRandomUnions_MatchesNaiveLabels(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(40)
		f := dsu.New(n)
		label := make([]int, n)
		for i := range label {
			label[i] = i
		}

		for step := 0; step < n; step++ {
			x, y := r.Intn(n), r.Intn(n)
			f.Union(x, y)
			if lx, ly := label[x], label[y]; lx != ly {
				for i := range label {
					if label[i] == lx {
						label[i] = ly
					}
				}
			}

			// Same-set relation matches the reference.
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.Equal(t, label[i] == label[j], f.Connected(i, j))
				}
			}

			// Root sizes equal the number of indices resolving to that root.
			members := make(map[int]int)
			for i := 0; i < n; i++ {
				members[f.Find(i)]++
			}
			for root, cnt := range members {
				require.Equal(t, cnt, f.SizeOf(root))
			}
			require.Equal(t, len(members), f.Count())

			// Fully connected iff every Find agrees, and the anchored check agrees.
			require.Equal(t, len(members) == 1, f.IsFullyConnected())
			require.Equal(t, f.IsFullyConnected(), f.AnchoredConnected())
		}
	}
}
