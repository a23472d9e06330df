package ndarray

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// FromSparse converts a github.com/ctessum/sparse dense array into a contiguous
// float32 array of the same shape. Values are narrowed to float32.
// Returns ErrBadShape for a nil or shapeless array and ErrDataLength when the
// element slice does not match the shape.
func FromSparse(src *sparse.DenseArray) (*Dense[float32], error) {
	if src == nil {
		return nil, ErrBadShape
	}
	out, err := New[float32](src.Shape...)
	if err != nil {
		return nil, err
	}
	if len(src.Elements) != len(out.data) {
		return nil, fmt.Errorf("FromSparse: got %d elements for shape %v: %w", len(src.Elements), src.Shape, ErrDataLength)
	}
	for i, v := range src.Elements {
		out.data[i] = float32(v)
	}

	return out, nil
}

// ToSparse copies a (in row-major logical order) into a new sparse.DenseArray.
func ToSparse[T Element](a *Dense[T]) *sparse.DenseArray {
	out := sparse.ZerosDense(a.Shape()...)
	i := 0
	a.Each(func(_ []int, v T) {
		out.Elements[i] = float64(v)
		i++
	})

	return out
}
