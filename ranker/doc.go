// Package ranker produces the k globally shortest point pairs of a point set,
// in ascending order, as an edge sequence for the connectivity driver.
//
// The Ranker Contract
//
// Every strategy returns min(k, n(n-1)/2) edges, each with I < J, no pair
// twice, ordered by Less: weight first, then I, then J. That tie-break is the
// lexicographic order in which a nested i<j loop generates pairs, so a stable
// sort of the generated pairs and an explicit (weight, I, J) ordering agree.
// Strategies never mutate the input points. A strategy that returns an
// approximate top-k is a different strategy, not a drop-in replacement.
//
// Strategies
//
//   - BruteForce: enumerate all pairs, stable-sort, truncate.
//     Time O(n² log n), memory O(n²). The reference behavior.
//
//   - Bounded: enumerate all pairs but keep only the k best in a max-heap.
//     Time O(n² log k), memory O(k).
//
//   - KDTree: per-point k-nearest-neighbor search on a KD-tree, candidate
//     pairs merged into an ordered B-tree. Exact: an edge in the global top-k
//     has fewer than k predecessors under Less, so it is among the first k
//     neighbors of both of its endpoints. Pays off when k is much smaller than n.
package ranker
