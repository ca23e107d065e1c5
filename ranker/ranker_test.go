package ranker_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/junction/point"
	"github.com/katalvlaran/junction/ranker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strategies lists every ranker under test; all must produce identical output.
func strategies() map[string]ranker.Ranker {
	return map[string]ranker.Ranker{
		ranker.NameBruteForce: ranker.BruteForce{},
		ranker.NameBounded:    ranker.Bounded{},
		ranker.NameKDTree:     ranker.KDTree{},
		"kdtree-leaf1":        ranker.KDTree{LeafSize: 1},
	}
}

// randomPoints draws n points of dimension dim with coordinates in [0, span).
// A small span forces many equal weights and duplicate points.
func randomPoints(r *rand.Rand, n, dim, span int) []point.Point {
	pts := make([]point.Point, n)
	for i := range pts {
		p := make(point.Point, dim)
		for d := range p {
			p[d] = uint64(r.Intn(span))
		}
		pts[i] = p
	}

	return pts
}

// checkContract verifies the ordering, canonicalization and uniqueness rules.
func checkContract(t *testing.T, points []point.Point, k int, edges []ranker.Edge) {
	t.Helper()

	want := k
	if total := ranker.PairCount(len(points)); want > total {
		want = total
	}
	if want < 0 {
		want = 0
	}
	require.Len(t, edges, want)

	seen := make(map[[2]int]bool, len(edges))
	for idx, e := range edges {
		require.Less(t, e.I, e.J, "edge %d not canonical", idx)
		require.GreaterOrEqual(t, e.I, 0)
		require.Less(t, e.J, len(points))
		require.Equal(t, point.Distance(points[e.I], points[e.J]), e.Weight)
		require.False(t, seen[[2]int{e.I, e.J}], "duplicate pair %d-%d", e.I, e.J)
		seen[[2]int{e.I, e.J}] = true
		if idx > 0 {
			require.True(t, ranker.Less(edges[idx-1], e), "edges %d and %d out of order", idx-1, idx)
		}
	}
}

func TestScenarioA(t *testing.T) {
	points := []point.Point{
		point.New(0, 0, 0),
		point.New(0, 0, 1),
		point.New(0, 0, 5),
		point.New(10, 10, 10),
	}
	want := []ranker.Edge{
		{Weight: 1, I: 0, J: 1},
		{Weight: 16, I: 1, J: 2},
	}

	for name, r := range strategies() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, r.ClosestNeighbors(points, 2))
		})
	}
}

func TestAllPairs(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	points := randomPoints(r, 25, 3, 50)
	k := ranker.PairCount(len(points))

	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			edges := s.ClosestNeighbors(points, k)
			checkContract(t, points, k, edges)
		})
	}
}

func TestBudgetEdges(t *testing.T) {
	points := []point.Point{point.New(0, 0), point.New(1, 0), point.New(3, 0)}

	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, s.ClosestNeighbors(points, 0))
			assert.Empty(t, s.ClosestNeighbors(points, -5))
			assert.Empty(t, s.ClosestNeighbors(nil, 10))
			assert.Empty(t, s.ClosestNeighbors(points[:1], 10))
			assert.Len(t, s.ClosestNeighbors(points, 10_000), 3, "k is clamped to the pair count")
		})
	}
}

func TestTieBreakIsLexicographic(t *testing.T) {
	// A unit square: four sides of weight 1, two diagonals of weight 2.
	points := []point.Point{point.New(0, 0), point.New(1, 0), point.New(0, 1), point.New(1, 1)}
	e := func(w uint64, i, j int) ranker.Edge { return ranker.Edge{Weight: w, I: i, J: j} }
	want := []ranker.Edge{
		e(1, 0, 1), e(1, 0, 2), e(1, 1, 3), e(1, 2, 3),
		e(2, 0, 3), e(2, 1, 2),
	}

	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, s.ClosestNeighbors(points, 6))
			assert.Equal(t, want[:3], s.ClosestNeighbors(points, 3))
		})
	}
}

func TestStrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 40; trial++ {
		n := 2 + r.Intn(60)
		dim := 1 + r.Intn(3)
		span := 1 + r.Intn(20)
		points := randomPoints(r, n, dim, span)
		k := 1 + r.Intn(ranker.PairCount(n))

		want := ranker.BruteForce{}.ClosestNeighbors(points, k)
		checkContract(t, points, k, want)

		for name, s := range strategies() {
			got := s.ClosestNeighbors(points, k)
			require.Equal(t, want, got, "trial %d strategy %s n=%d dim=%d span=%d k=%d", trial, name, n, dim, span, k)
		}
	}
}

func TestDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	points := randomPoints(r, 40, 3, 8)

	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, s.ClosestNeighbors(points, 200), s.ClosestNeighbors(points, 200))
		})
	}
}

func TestInputNotMutated(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	points := randomPoints(r, 30, 3, 100)
	snapshot := make([]string, len(points))
	for i, p := range points {
		snapshot[i] = p.String()
	}

	for name, s := range strategies() {
		s.ClosestNeighbors(points, 50)
		for i, p := range points {
			require.Equal(t, snapshot[i], p.String(), "%s mutated point %d", name, i)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range ranker.Names() {
		r, err := ranker.ByName(name)
		require.NoError(t, err)
		assert.NotNil(t, r)
	}

	_, err := ranker.ByName("grid")
	assert.ErrorIs(t, err, ranker.ErrUnknownRanker)
	assert.Equal(t, []string{"bounded", "brute", "kdtree"}, ranker.Names())
}

func TestRankerFunc(t *testing.T) {
	calls := 0
	f := ranker.RankerFunc(func(points []point.Point, k int) []ranker.Edge {
		calls++
		return ranker.BruteForce{}.ClosestNeighbors(points, k)
	})

	edges := f.ClosestNeighbors([]point.Point{point.New(0), point.New(4)}, 1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []ranker.Edge{{Weight: 16, I: 0, J: 1}}, edges)
}

func TestPairCount(t *testing.T) {
	for n, want := range map[int]int{-1: 0, 0: 0, 1: 0, 2: 1, 4: 6, 20: 190} {
		assert.Equal(t, want, ranker.PairCount(n), fmt.Sprintf("n=%d", n))
	}
}
