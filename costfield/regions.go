package costfield

import (
	"fmt"

	"github.com/katalvlaran/gdt/dt"
	"github.com/katalvlaran/gdt/ndarray"
)

// Regions labels the connected groups of source cells (value ≥ opts.Threshold)
// of mask under opts.Conn. Labels are 0..n-1 in row-major order of each
// region's first cell; non-source cells are NoRegion.
// Time O(H×W×d), Memory O(H×W).
func Regions(mask [][]int, opts Options) (*ndarray.Dense[int32], int, error) {
	h, w, err := checkMask(mask)
	if err != nil {
		return nil, 0, err
	}
	labels, err := ndarray.Full(NoRegion, h, w)
	if err != nil {
		return nil, 0, err
	}
	lab := labels.Data()
	offsets := opts.Conn.offsets()
	isSource := func(y, x int) bool {
		return y >= 0 && y < h && x >= 0 && x < w && mask[y][x] >= opts.Threshold
	}

	var n int32
	queue := make([]int, 0, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !isSource(y, x) || lab[y*w+x] != NoRegion {
				continue
			}
			// BFS over the region
			queue = append(queue[:0], y*w+x)
			lab[y*w+x] = n
			for qi := 0; qi < len(queue); qi++ {
				uy, ux := queue[qi]/w, queue[qi]%w
				for _, d := range offsets {
					vy, vx := uy+d[0], ux+d[1]
					if !isSource(vy, vx) || lab[vy*w+vx] != NoRegion {
						continue
					}
					lab[vy*w+vx] = n
					queue = append(queue, vy*w+vx)
				}
			}
			n++
		}
	}

	return labels, int(n), nil
}

// Partition gives every cell the label of its nearest source, read from labels
// at the cell that ResolveSource reports for the location map loc. With labels
// from Regions this is the region-wise nearest-source partition of the grid.
//
// Returns ErrLabelShape when loc is not [dims]+labels.Shape(), and the errors of
// dt.ResolveSource otherwise.
// Complexity: O(N×D²).
func Partition(labels, loc *ndarray.Dense[int32]) (*ndarray.Dense[int32], error) {
	if labels == nil || loc == nil {
		return nil, ErrLabelShape
	}
	shape := labels.Shape()
	ls := loc.Shape()
	if len(ls) != len(shape)+1 || ls[0] != len(shape) {
		return nil, fmt.Errorf("location map %v for labels %v: %w", ls, shape, ErrLabelShape)
	}
	for a, s := range shape {
		if ls[a+1] != s {
			return nil, fmt.Errorf("location map %v for labels %v: %w", ls, shape, ErrLabelShape)
		}
	}

	out, err := ndarray.New[int32](shape...)
	if err != nil {
		return nil, err
	}
	var walkErr error
	labels.Each(func(idx []int, _ int32) {
		if walkErr != nil {
			return
		}
		src, err := dt.ResolveSource(loc, idx...)
		if err != nil {
			walkErr = err
			return
		}
		l, _ := labels.At(src...)
		_ = out.Set(l, idx...)
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return out, nil
}
