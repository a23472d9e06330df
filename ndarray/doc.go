// Package ndarray provides a small N-dimensional dense array for numeric grids.
//
// What:
//
//   - Dense[T] stores float32, float64 or int32 elements in a flat row-major buffer.
//   - Arrays may be strided views (Transpose, Layer) that share the base buffer.
//   - Clone always materializes a contiguous, independent copy.
//   - StridedLine exposes a 1D line of a float32 array as a gonum blas32.Vector.
//   - FromSparse / ToSparse convert to and from github.com/ctessum/sparse dense arrays.
//
// Why:
//
//   - Distance transforms and other separable filters walk an array one axis at a
//     time; the stride of every axis is explicit so callers never do pointer math.
//
// Complexity:
//
//   - New/Clone: O(N) time and memory (N = product of the shape).
//   - At/Set/Offset: O(D) (D = number of axes).
//   - Transpose/Layer: O(D), no copy.
//
// Errors:
//
//   - ErrBadShape: empty shape or a non-positive extent.
//   - ErrOutOfRange: an index is outside its axis.
//   - ErrDimensionMismatch: wrong number of indices.
//   - ErrBadPermutation: Transpose argument is not a permutation of the axes.
//   - ErrDataLength: backing data does not match the shape.
package ndarray
