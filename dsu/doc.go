// Package dsu implements a fixed-size disjoint-set forest (union-find) over
// the integer index space [0, n).
//
// Find compresses paths iteratively, so adversarial union orders can never
// grow the call stack. Union attaches the smaller set under the larger one,
// which bounds every tree at O(log n) height even before compression.
//
// Two connectivity checks are offered:
//
//   - IsFullyConnected reports whether exactly one set remains. The forest
//     tracks the number of sets, so the check is O(1) and is equivalent to
//     "every index resolves to the same root".
//
//   - AnchoredConnected reports whether the set containing index 0 spans all
//     n elements. It is kept as the historical behavior and agrees with
//     IsFullyConnected because sizes are only recorded at roots and unions
//     never split a set.
//
// Index arguments outside [0, n) are programming errors in the caller and
// panic with ErrIndexOutOfRange; silently accepting them would corrupt the
// parent mapping.
package dsu
