// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)); tests match them via errors.Is.

package ndarray

import "errors"

var (
	// ErrBadShape is returned when a shape has no axes or a non-positive extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates that an index is outside its axis bounds.
	// Public indexers (At/Set/Offset) MUST return this, not panic.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrDimensionMismatch indicates that the number of indices (or the shape of an
	// operand) does not match the array dimensionality.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrBadPermutation indicates that a Transpose argument is not a permutation
	// of 0..Dims()-1.
	ErrBadPermutation = errors.New("ndarray: invalid axis permutation")

	// ErrDataLength indicates that the supplied backing data length differs from
	// the product of the shape.
	ErrDataLength = errors.New("ndarray: data length does not match shape")
)
