package costfield

import (
	"fmt"

	"github.com/katalvlaran/gdt/ndarray"
)

// checkMask validates that mask is non-empty and rectangular and returns its size.
func checkMask(mask [][]int) (h, w int, err error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	h, w = len(mask), len(mask[0])
	for y, row := range mask {
		if len(row) != w {
			return 0, 0, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}

	return h, w, nil
}

// FromMask builds an H×W cost grid from mask: cells with value ≥ opts.Threshold
// get opts.Source, the rest opts.Background. The mask is read, never retained.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed masks.
// Complexity: O(H×W) time and memory.
func FromMask(mask [][]int, opts Options) (*ndarray.Dense[float32], error) {
	h, w, err := checkMask(mask)
	if err != nil {
		return nil, err
	}
	g, err := ndarray.Full(opts.Background, h, w)
	if err != nil {
		return nil, err
	}
	data := g.Data()
	for y, row := range mask {
		for x, v := range row {
			if v >= opts.Threshold {
				data[y*w+x] = opts.Source
			}
		}
	}

	return g, nil
}

// FromPoints builds a grid of the given shape filled with opts.Background and
// sets every listed point to opts.Source. Duplicate points are harmless.
// Returns ndarray.ErrBadShape for an invalid shape and ErrPointOutOfRange when a
// point has the wrong number of coordinates or lies outside the grid.
// Complexity: O(N + P×D).
func FromPoints(shape []int, points [][]int, opts Options) (*ndarray.Dense[float32], error) {
	g, err := ndarray.Full(opts.Background, shape...)
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		if err := g.Set(opts.Source, p...); err != nil {
			return nil, fmt.Errorf("point %v: %w", p, ErrPointOutOfRange)
		}
	}

	return g, nil
}
