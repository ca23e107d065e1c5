package point

import "fmt"

// Distance returns the squared Euclidean distance between a and b:
// the sum over every axis of |a[k] - b[k]|², computed in uint64.
//
// Distance is pure and commutative. It panics if a and b differ in arity.
func Distance(a, b Point) uint64 {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: %d vs %d axes", ErrDimensionMismatch, len(a), len(b)))
	}

	var sum uint64
	for k := range a {
		d := absDiff(a[k], b[k])
		sum += d * d
	}

	return sum
}

func absDiff(x, y uint64) uint64 {
	if x > y {
		return x - y
	}

	return y - x
}
