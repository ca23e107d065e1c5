// Package point defines the immutable integer point model consumed by the
// junction engine, the squared Euclidean metric over it, and a small
// line-oriented reader for "x,y,z" style input.
//
// What & Why
//
//   - A Point is a fixed-arity tuple of non-negative integers. Points carry no
//     identity of their own: the engine addresses them by their index in the
//     ordered slice handed to it.
//
//   - Distance returns the squared Euclidean distance in uint64 arithmetic.
//     Dropping the square root keeps every comparison exact and preserves the
//     ordering of true Euclidean distances.
//
// Contracts
//
//   - Distance requires both points to share the same arity and panics with
//     ErrDimensionMismatch otherwise. Coordinates must be small enough that the
//     per-axis squares and their sum fit in 64 bits; this is not checked.
//
//   - Read and Parse belong to the input boundary. They reject malformed lines
//     with ErrMalformedLine and mixed arities with ErrDimensionMismatch, so the
//     connectivity packages only ever see validated data.
//
// Complexity
//
//   - Distance: O(d) for d axes, zero allocations.
//   - Read:     O(total input size).
package point
