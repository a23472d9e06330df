package dt

import (
	"fmt"

	"github.com/katalvlaran/gdt/internal/parallel"
	"github.com/katalvlaran/gdt/ndarray"
	"gonum.org/v1/gonum/blas/blas32"
)

// DistanceTransform: separable N-dimensional generalized distance transform.
//
// Description:
//
//	Computes, for every cell p of the float32 cost grid in,
//
//	  out(p) = min_k in(k) + Σ_a (p_a - k_a)² / w_a      (w_a = 1 without weights)
//
//	as one exact 1D transform per axis, each pass reading the output of the
//	previous one. It also returns the location map: a [dims]+shape int32
//	array whose layer a holds, for every cell, the axis-a coordinate chosen
//	by the axis-a pass. ResolveSource turns those layers into the joint
//	coordinates of the winning source cell.
//
// Algorithm Outline:
//  1. Validate input type and weight count; clone the grid (the input is
//     never modified or aliased) and allocate the location map.
//  2. For axis = dims-1 down to 0:
//     a. with weights, multiply the grid by the axis factor
//     (w[a], or WeightFloor when w[a] < MinWeight);
//     b. split the LineCount(shape, axis) lines into ranges and run them in
//     parallel: gather the line, Transform1D, scatter it back and write the
//     argmin into layer axis of the location map;
//     c. wait for every line (barrier), then divide the factor back out.
//
// Errors (checked before any pass runs):
//   - ErrNilInput: in is nil.
//   - ErrInvalidInputType: in does not hold float32 elements.
//   - ErrWeightLengthMismatch: len(weights) is neither 0 nor in.Dims().
//
// Complexity:
//
//	Time O(N·D), Memory O(N·D), where N is the cell count and D the number of axes.
func DistanceTransform(in ndarray.Array, opts ...Option) (*ndarray.Dense[float32], *ndarray.Dense[int32], error) {
	if in == nil {
		return nil, nil, ErrNilInput
	}
	grid, ok := in.(*ndarray.Dense[float32])
	if !ok {
		return nil, nil, fmt.Errorf("DistanceTransform: got %s elements: %w", in.DType(), ErrInvalidInputType)
	}
	if grid == nil {
		return nil, nil, ErrNilInput
	}
	o := gatherOptions(opts...)
	dims := grid.Dims()
	if len(o.weights) != 0 && len(o.weights) != dims {
		return nil, nil, fmt.Errorf("DistanceTransform: %d weights for %d axes: %w", len(o.weights), dims, ErrWeightLengthMismatch)
	}

	out := grid.Clone()
	shape := out.Shape()
	loc, err := ndarray.New[int32](append([]int{dims}, shape...)...)
	if err != nil {
		return nil, nil, err
	}
	workers := parallel.Workers(o.workers)

	for axis := dims - 1; axis >= 0; axis-- {
		factor := 1.0
		if len(o.weights) != 0 {
			var floored bool
			factor, floored = axisFactor(o.weights[axis])
			if floored {
				Logger().Warn("dt: weight below minimum, using floor",
					"axis", axis, "weight", o.weights[axis], "floor", WeightFloor)
			}
		}
		layer, err := loc.Layer(axis)
		if err != nil {
			return nil, nil, err
		}
		p := &pass{
			grid:    out,
			locData: loc.Data(),
			layer:   layer,
			shape:   shape,
			axis:    axis,
		}
		Logger().Debug("dt: axis pass",
			"axis", axis, "lines", LineCount(shape, axis), "length", shape[axis], "factor", factor)

		if factor != 1 {
			scale(out.Data(), factor, workers)
		}
		parallel.For(LineCount(shape, axis), workers, p.run)
		if factor != 1 {
			scale(out.Data(), 1/factor, workers)
		}
	}

	return out, loc, nil
}

// pass holds the state shared (read-only) by every work item of one axis.
// Work items write disjoint lines of grid and of the layer, so no locking is needed.
type pass struct {
	grid    *ndarray.Dense[float32] // contiguous working grid
	locData []int32                 // full location map buffer
	layer   *ndarray.Dense[int32]   // view of locData for this axis
	shape   []int
	axis    int
}

// run transforms lines [lo, hi) with scratch owned by this work item.
func (p *pass) run(lo, hi int) {
	n := p.shape[p.axis]
	env := newEnvelope(n)
	f := blas32.Vector{N: n, Inc: 1, Data: make([]float32, n)}
	d := blas32.Vector{N: n, Inc: 1, Data: make([]float32, n)}
	v := make([]int32, n)
	coords := make([]int, len(p.shape))
	step := p.layer.Strides()[p.axis]

	for i := lo; i < hi; i++ {
		coords = LineStart(p.shape, p.axis, i, coords)
		// coords come from LineStart and are always in range.
		line, _ := ndarray.StridedLine(p.grid, coords, p.axis)
		off, _ := p.layer.Offset(coords...)

		blas32.Copy(line, f)
		transform1D(f.Data, d.Data, v, env)
		blas32.Copy(d, line)
		for q, src := range v {
			p.locData[off+q*step] = src
		}
	}
}

// scale multiplies every element by factor in float64 and stores the result as
// float32, splitting the buffer across workers.
func scale(data []float32, factor float64, workers int) {
	parallel.For(len(data), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			data[i] = float32(float64(data[i]) * factor)
		}
	})
}
