// SPDX-License-Identifier: MIT

// Package ndarray: element types and the read-only Array surface.
package ndarray

// DType identifies the element type of an array.
type DType int

// Supported element types.
const (
	Invalid DType = iota
	Float32
	Float64
	Int32
)

// String returns the lower-case Go name of the element type.
func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	default:
		return "invalid"
	}
}

// Element is the set of element types a Dense array can hold.
type Element interface {
	float32 | float64 | int32
}

// Array is the read-only surface shared by every Dense instantiation.
// Algorithms that accept "any array" take an Array and inspect DType before
// asserting the concrete type.
type Array interface {
	// DType reports the element type.
	DType() DType

	// Dims returns the number of axes.
	Dims() int

	// Shape returns a copy of the per-axis extents.
	Shape() []int

	// Len returns the number of elements (product of Shape).
	Len() int
}

// dtypeOf maps a type parameter to its DType.
func dtypeOf[T Element]() DType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	}

	return Invalid
}

// validateShape checks that shape has at least one axis and positive extents,
// and returns the element count.
func validateShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, s := range shape {
		if s <= 0 {
			return 0, ErrBadShape
		}
		n *= s
	}

	return n, nil
}

// rowMajorStrides returns element strides for a contiguous row-major layout:
// the last axis has stride 1.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for a := len(shape) - 1; a >= 0; a-- {
		strides[a] = step
		step *= shape[a]
	}

	return strides
}
