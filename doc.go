// Package junction answers connectivity questions about integer point sets by
// ranking point pairs on squared Euclidean distance and merging them one at a
// time in a union-find forest.
//
// What it answers
//
//   - After connecting the N globally shortest pairs, how large are the biggest
//     groups? (connectivity.Driver.AggregateAfterN, LargestComponents)
//   - Scanning pairs shortest first, which pair is the first to leave a single
//     group? (connectivity.Driver.FirstFullConnectivity)
//   - Which of those pairs form the minimum spanning tree?
//     (connectivity.Driver.SpanningTree)
//
// Everything is organized under four subpackages, leaves first:
//
//	point/        — immutable integer points, squared Euclidean distance, "x,y,z" reader
//	dsu/          — disjoint-set forest with iterative path compression and union by size
//	ranker/       — k-shortest-pairs strategies: brute force, bounded heap, KD-tree
//	connectivity/ — the driver that feeds ranked edges into a fresh forest per query
//
// and one binary:
//
//	cmd/junction  — CLI over the driver (aggregate, connect, spanning, rankers)
//
// Quick ASCII example (2-D, k = 3):
//
//	A(0,0)──1──B(1,0)
//	  │
//	  1
//	  │
//	C(0,1)          D(5,5)
//
// The three shortest pairs are A–B, A–C and B–C; after them {A,B,C} and {D}
// remain, so full connectivity needs a larger budget.
//
//	go get github.com/katalvlaran/junction
package junction
