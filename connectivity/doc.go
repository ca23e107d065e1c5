// Package connectivity drives incremental union-find over a ranked edge
// sequence to answer connectivity queries on integer point sets.
//
// Queries
//
//   - AggregateAfterN(points, n)
//     Unions the n globally shortest pairs and returns the product of the
//     three largest component sizes. LargestComponents generalizes this to
//     any number of components.
//
//   - FirstFullConnectivity(points, k)
//     Scans the k shortest pairs in ascending order and stops at the first
//     one whose union leaves a single component. The result carries that
//     edge and the product of its endpoints' coordinates on the configured
//     axis (X by default).
//
//   - SpanningTree(points, k)
//     Kruskal over the same scan: the edges that actually merged components,
//     their total weight, and the final (bottleneck) edge, which is the edge
//     FirstFullConnectivity stops on.
//
// Every query ranks edges with the configured ranker.Ranker (BruteForce by
// default), builds a private dsu.Forest and discards it afterwards; nothing is
// shared between calls, so a Driver may be reused freely from one goroutine at
// a time, or concurrently when the Ranker and Logger are concurrency safe.
//
// Error Conditions
//
//   - ErrEmptyPoints            : no points were supplied.
//   - ErrInvalidCount           : a negative edge count or a non-positive component count.
//   - ErrEdgeBudget             : the ranker produced fewer than n edges for an aggregate query.
//   - ErrInsufficientComponents : fewer components remain than were requested.
//   - ErrNotConnected           : the edge budget ran out before full connectivity.
//   - ErrOptionViolation        : an invalid Option was supplied to New.
//
// Point validation errors from package point (mixed arity, bad axis) are
// wrapped and returned as is. An edge referencing a point index out of range
// means the ranker broke its contract and panics inside package dsu.
package connectivity
