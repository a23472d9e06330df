// SPDX-License-Identifier: MIT

// Package ndarray - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat buffer with the explicit index formula offset + Σ idx[a]*strides[a].
//   - Guarantee safety at the public surface: At/Set/Offset return errors instead of panicking.
//   - Keep iteration deterministic (row-major logical order for every view).
//   - Support no-copy views (Transpose, Layer) and copy-based materialization (Clone).
//
// Complexity quicksheet:
//   - New: O(N) zero-init; At/Set: O(D); Clone: O(N); Transpose/Layer: O(D).
package ndarray

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxOffset    = "Offset"
	ctxTranspose = "Transpose"
	ctxLayer     = "Layer"
)

// denseErrorf wraps a sentinel with a uniform Dense context and the offending index.
func denseErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}

// Dense is an N-dimensional array of T.
//   - shape holds the per-axis extents (all > 0).
//   - strides holds the element step of every axis inside data.
//   - offset is the position of element (0,…,0) inside data.
//
// A freshly constructed Dense is contiguous row-major; views produced by
// Transpose and Layer share data with their base.
type Dense[T Element] struct {
	shape   []int
	strides []int
	offset  int
	data    []T
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Array        = (*Dense[float32])(nil)
	_ Array        = (*Dense[int32])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// New creates a zero-filled contiguous array of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate shape (≥1 axis, every extent > 0); else ErrBadShape.
//   - Stage 2: allocate the flat buffer and row-major strides.
//
// Inputs:
//   - shape: per-axis extents; the slice is copied.
//
// Returns:
//   - *Dense[T]: newly allocated array.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(N), Space O(N).
func New[T Element](shape ...int) (*Dense[T], error) {
	n, err := validateShape(shape)
	if err != nil {
		return nil, err
	}
	sh := append([]int(nil), shape...)

	return &Dense[T]{
		shape:   sh,
		strides: rowMajorStrides(sh),
		data:    make([]T, n),
	}, nil
}

// Full creates a contiguous array with every element set to v.
// Complexity: O(N).
func Full[T Element](v T, shape ...int) (*Dense[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = v
	}

	return a, nil
}

// FromSlice builds a contiguous array from row-major data.
// The data is copied so later mutation of the argument does not leak in.
// Returns ErrBadShape for an invalid shape and ErrDataLength when
// len(data) != product(shape).
// Complexity: O(N).
func FromSlice[T Element](data []T, shape ...int) (*Dense[T], error) {
	n, err := validateShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("FromSlice: got %d elements for shape %v: %w", len(data), shape, ErrDataLength)
	}
	a, _ := New[T](shape...)
	copy(a.data, data)

	return a, nil
}

// DType reports the element type.
func (a *Dense[T]) DType() DType { return dtypeOf[T]() }

// Dims returns the number of axes.
func (a *Dense[T]) Dims() int { return len(a.shape) }

// Shape returns a copy of the per-axis extents.
func (a *Dense[T]) Shape() []int { return append([]int(nil), a.shape...) }

// Strides returns a copy of the per-axis element strides.
func (a *Dense[T]) Strides() []int { return append([]int(nil), a.strides...) }

// Size returns the extent of one axis. It panics on an invalid axis, like a slice index.
func (a *Dense[T]) Size(axis int) int { return a.shape[axis] }

// Len returns the number of elements.
func (a *Dense[T]) Len() int {
	n := 1
	for _, s := range a.shape {
		n *= s
	}

	return n
}

// IsContiguous reports whether the array is laid out row-major without gaps,
// so that Data() covers exactly its elements in logical order.
func (a *Dense[T]) IsContiguous() bool {
	step := 1
	for ax := len(a.shape) - 1; ax >= 0; ax-- {
		if a.shape[ax] != 1 && a.strides[ax] != step {
			return false
		}
		step *= a.shape[ax]
	}

	return true
}

// Data returns the elements of a contiguous array in row-major order, sharing
// memory with the array. It returns nil for strided views; Clone first.
func (a *Dense[T]) Data() []T {
	if !a.IsContiguous() {
		return nil
	}

	return a.data[a.offset : a.offset+a.Len()]
}

// Offset returns the position of idx inside the shared backing buffer.
// MAIN DESCRIPTION:
//   - Bounds-check idx and compute offset + Σ idx[a]*strides[a].
//
// Errors:
//   - ErrDimensionMismatch when len(idx) != Dims().
//   - ErrOutOfRange when any idx[a] is outside [0, shape[a]).
//
// Complexity:
//   - Time O(D), Space O(1).
func (a *Dense[T]) Offset(idx ...int) (int, error) {
	off, err := a.checkedOffset(idx)
	if err != nil {
		return 0, denseErrorf(ctxOffset, idx, err)
	}

	return off, nil
}

// checkedOffset validates idx and returns its buffer position (unwrapped sentinel on error).
func (a *Dense[T]) checkedOffset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrDimensionMismatch
	}
	off := a.offset
	for ax, i := range idx {
		if i < 0 || i >= a.shape[ax] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[ax]
	}

	return off, nil
}

// At retrieves the element at idx.
// Complexity: O(D).
func (a *Dense[T]) At(idx ...int) (T, error) {
	off, err := a.checkedOffset(idx)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set assigns v at idx. Views write through to their base.
// Complexity: O(D).
func (a *Dense[T]) Set(v T, idx ...int) error {
	off, err := a.checkedOffset(idx)
	if err != nil {
		return denseErrorf(ctxSet, idx, err)
	}
	a.data[off] = v

	return nil
}

// Fill assigns v to every element of the array (or view).
// Complexity: O(N).
func (a *Dense[T]) Fill(v T) {
	a.each(func(off int, _ []int) { a.data[off] = v })
}

// Each calls fn for every element in row-major logical order.
// The idx slice is reused between calls; copy it to retain it.
// Complexity: O(N·D) worst case, O(N) amortized.
func (a *Dense[T]) Each(fn func(idx []int, v T)) {
	a.each(func(off int, idx []int) { fn(idx, a.data[off]) })
}

// each walks the array in row-major logical order with an odometer over idx,
// tracking the buffer offset incrementally.
func (a *Dense[T]) each(fn func(off int, idx []int)) {
	d := len(a.shape)
	idx := make([]int, d)
	off := a.offset
	n := a.Len()
	for k := 0; k < n; k++ {
		fn(off, idx)
		// Increment the last axis and carry backwards.
		for ax := d - 1; ax >= 0; ax-- {
			idx[ax]++
			off += a.strides[ax]
			if idx[ax] < a.shape[ax] {
				break
			}
			off -= idx[ax] * a.strides[ax]
			idx[ax] = 0
		}
	}
}

// Clone returns a contiguous deep copy. Views are materialized in logical order.
// Complexity: O(N) time and memory.
func (a *Dense[T]) Clone() *Dense[T] {
	out, _ := New[T](a.shape...)
	if a.IsContiguous() {
		copy(out.data, a.Data())

		return out
	}
	i := 0
	a.each(func(off int, _ []int) {
		out.data[i] = a.data[off]
		i++
	})

	return out
}

// Transpose returns a view whose axis k is axis perm[k] of a. No data is copied.
// MAIN DESCRIPTION:
//   - Reorder shape and strides by perm; the view shares the buffer.
//
// Errors:
//   - ErrBadPermutation when perm is not a permutation of 0..Dims()-1.
//
// Complexity:
//   - Time O(D), Space O(D).
//
// AI-Hints:
//   - Call Clone on the result when a contiguous layout is required.
func (a *Dense[T]) Transpose(perm ...int) (*Dense[T], error) {
	d := len(a.shape)
	if len(perm) != d {
		return nil, fmt.Errorf("Dense.%s(%v): %w", ctxTranspose, perm, ErrBadPermutation)
	}
	seen := make([]bool, d)
	shape := make([]int, d)
	strides := make([]int, d)
	for k, p := range perm {
		if p < 0 || p >= d || seen[p] {
			return nil, fmt.Errorf("Dense.%s(%v): %w", ctxTranspose, perm, ErrBadPermutation)
		}
		seen[p] = true
		shape[k] = a.shape[p]
		strides[k] = a.strides[p]
	}

	return &Dense[T]{shape: shape, strides: strides, offset: a.offset, data: a.data}, nil
}

// Layer returns the view a[i, ...] that drops the leading axis. No data is copied.
// Errors:
//   - ErrDimensionMismatch when a has a single axis.
//   - ErrOutOfRange when i is outside the leading axis.
//
// Complexity: O(D).
func (a *Dense[T]) Layer(i int) (*Dense[T], error) {
	if len(a.shape) < 2 {
		return nil, denseErrorf(ctxLayer, []int{i}, ErrDimensionMismatch)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, denseErrorf(ctxLayer, []int{i}, ErrOutOfRange)
	}

	return &Dense[T]{
		shape:   append([]int(nil), a.shape[1:]...),
		strides: append([]int(nil), a.strides[1:]...),
		offset:  a.offset + i*a.strides[0],
		data:    a.data,
	}, nil
}

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders the array as rows of its last axis, with a blank line between
// consecutive 2D slices of higher-dimensional arrays.
// Complexity: O(N).
func (a *Dense[T]) String() string {
	var sb strings.Builder
	last := a.shape[len(a.shape)-1]
	rowsPerSlice := 1
	if len(a.shape) >= 2 {
		rowsPerSlice = a.shape[len(a.shape)-2]
	}
	k := 0
	a.Each(func(idx []int, v T) {
		col := idx[len(idx)-1]
		if col == 0 {
			if k > 0 && len(a.shape) > 2 && (k/last)%rowsPerSlice == 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(_fmtRowOpen)
		}
		fmt.Fprintf(&sb, "%v", v)
		if col < last-1 {
			sb.WriteString(_fmtSep)
		} else {
			sb.WriteString(_fmtRowClose)
		}
		k++
	})

	return sb.String()
}
