package dt

import (
	"fmt"
	"iter"
)

// validateAxis panics when axis is not an axis of shape. The public entry
// points validate grids before reaching the enumerator, so a failure here is
// a programmer error.
func validateAxis(shape []int, axis int) {
	if axis < 0 || axis >= len(shape) {
		panic(fmt.Sprintf("dt: axis %d out of range for %d-dimensional shape", axis, len(shape)))
	}
}

// LineCount returns the number of 1D lines along axis: the product of every
// extent except shape[axis]. A 1-dimensional shape has exactly one line.
// Complexity: O(D).
func LineCount(shape []int, axis int) int {
	validateAxis(shape, axis)
	n := 1
	for a, s := range shape {
		if a != axis {
			n *= s
		}
	}

	return n
}

// LineStart decodes line index i (0 <= i < LineCount) into the coordinates
// of the first cell of that line. The coordinate at axis is 0 and the other
// coordinates are the mixed-radix digits of i, with the last non-active axis
// varying fastest.
//
// The result is written into dst when it has room for len(shape) entries;
// otherwise a new slice is allocated. Decoding is stateless, so concurrent
// workers can each compute their own line starts without a shared counter.
// Complexity: O(D).
func LineStart(shape []int, axis, i int, dst []int) []int {
	validateAxis(shape, axis)
	if cap(dst) < len(shape) {
		dst = make([]int, len(shape))
	}
	dst = dst[:len(shape)]
	for a := len(shape) - 1; a >= 0; a-- {
		if a == axis {
			dst[a] = 0
			continue
		}
		dst[a] = i % shape[a]
		i /= shape[a]
	}

	return dst
}

// Lines yields (index, start) for every line along axis in odometer order:
// the last non-active axis is incremented first and overflow carries into the
// previous non-active axis. The yielded slice is reused between iterations;
// copy it to retain it.
//
// Lines(shape, axis) visits exactly the starts LineStart(shape, axis, i, nil)
// for i in [0, LineCount).
func Lines(shape []int, axis int) iter.Seq2[int, []int] {
	count := LineCount(shape, axis)

	return func(yield func(int, []int) bool) {
		coords := make([]int, len(shape))
		for i := 0; i < count; i++ {
			if !yield(i, coords) {
				return
			}
			for a := len(shape) - 1; a >= 0; a-- {
				if a == axis {
					continue
				}
				coords[a]++
				if coords[a] < shape[a] {
					break
				}
				coords[a] = 0
			}
		}
	}
}
