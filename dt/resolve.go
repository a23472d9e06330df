package dt

import (
	"fmt"

	"github.com/katalvlaran/gdt/ndarray"
)

// checkLocations verifies that loc has shape [dims]+grid shape and returns dims.
func checkLocations(loc *ndarray.Dense[int32]) (int, error) {
	if loc == nil || loc.Dims() < 2 || loc.Size(0) != loc.Dims()-1 {
		return 0, ErrLocationShape
	}

	return loc.Dims() - 1, nil
}

// ResolveSource returns the coordinates of the source cell whose cost produced
// the transformed value at idx.
//
// Each layer of the location map only knows its own axis, relative to the grid
// as it was when that axis ran. Axis 0 ran last, so its layer is read at idx
// first; the next layer is read at the point with axis 0 already replaced by
// the winner, and so on up to the last axis:
//
//	q := idx
//	for a := 0; a < dims; a++ { q[a] = loc[a][q] }
//
// Errors:
//   - ErrLocationShape when loc is not [dims]+shape.
//   - ndarray.ErrDimensionMismatch / ndarray.ErrOutOfRange for a bad idx.
//
// Complexity: O(D²).
func ResolveSource(loc *ndarray.Dense[int32], idx ...int) ([]int, error) {
	dims, err := checkLocations(loc)
	if err != nil {
		return nil, err
	}
	if len(idx) != dims {
		return nil, fmt.Errorf("ResolveSource(%v): %w", idx, ndarray.ErrDimensionMismatch)
	}
	q := append([]int(nil), idx...)
	for a := 0; a < dims; a++ {
		layer, err := loc.Layer(a)
		if err != nil {
			return nil, err
		}
		v, err := layer.At(q...)
		if err != nil {
			return nil, fmt.Errorf("ResolveSource(%v): %w", idx, err)
		}
		q[a] = int(v)
	}

	return q, nil
}

// ResolveSources resolves every cell at once and returns a [dims]+shape map
// whose layer a holds the axis-a coordinate of each cell's source.
// Complexity: O(N·D²).
func ResolveSources(loc *ndarray.Dense[int32]) (*ndarray.Dense[int32], error) {
	if _, err := checkLocations(loc); err != nil {
		return nil, err
	}
	out, err := ndarray.New[int32](loc.Shape()...)
	if err != nil {
		return nil, err
	}
	first, _ := loc.Layer(0)

	var walkErr error
	first.Each(func(idx []int, _ int32) {
		if walkErr != nil {
			return
		}
		src, err := ResolveSource(loc, idx...)
		if err != nil {
			walkErr = err
			return
		}
		for a, c := range src {
			cell := append([]int{a}, idx...)
			_ = out.Set(int32(c), cell...)
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return out, nil
}
