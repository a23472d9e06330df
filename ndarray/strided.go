// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"
)

// StridedLine returns the 1D line of a that starts at base and runs along axis,
// as a gonum blas32.Vector sharing memory with a. The coordinate base[axis] is
// ignored (treated as 0), so a line descriptor from any enumerator can be
// passed unchanged.
//
// The vector can be handed to blas32 routines (Copy, Scal, Axpy, …) to gather,
// scatter or scale the line without index arithmetic at the call site.
//
// Errors:
//   - ErrDimensionMismatch when len(base) != a.Dims() or axis is not an axis of a.
//   - ErrOutOfRange when a non-active coordinate of base is out of range.
//
// Complexity: O(D).
func StridedLine(a *Dense[float32], base []int, axis int) (blas32.Vector, error) {
	if axis < 0 || axis >= len(a.shape) || len(base) != len(a.shape) {
		return blas32.Vector{}, fmt.Errorf("StridedLine(axis=%d, base=%v): %w", axis, base, ErrDimensionMismatch)
	}
	off := a.offset
	for ax, i := range base {
		if ax == axis {
			continue
		}
		if i < 0 || i >= a.shape[ax] {
			return blas32.Vector{}, fmt.Errorf("StridedLine(axis=%d, base=%v): %w", axis, base, ErrOutOfRange)
		}
		off += i * a.strides[ax]
	}

	return blas32.Vector{
		N:    a.shape[axis],
		Inc:  a.strides[axis],
		Data: a.data[off:],
	}, nil
}
