// Package gdt computes generalized distance transforms of N-dimensional cost
// grids.
//
// For a cost grid f the transform assigns every cell p
//
//	d(p) = min_k f(k) + Σ_a (p_a - k_a)² / w_a
//
// and a location map recording which cell k attained the minimum. With sources
// at cost 0 and background at dt.Infinity this is the squared Euclidean
// distance transform; arbitrary costs give the min-convolution used for
// template matching and part-based shape models.
//
// The module is organized as:
//
//	dt/        - 1D envelope kernel, line enumeration, the separable N-D transform
//	ndarray/   - dense N-D arrays with strided views (Transpose, Layer)
//	costfield/ - cost grids from masks and points, region labels and partitions
//	cmd/gdt    - command-line driver (run, demo, version)
//	examples/  - runnable programs
//
// Quick start:
//
//	grid, _ := ndarray.Full[float32](10, 4, 4)
//	_ = grid.Set(1, 2, 2)
//	out, loc, err := dt.DistanceTransform(grid, dt.WithWeights(2, 2))
//	src, _ := dt.ResolveSource(loc, 0, 0) // [2 2]
//
// Every pass over an axis runs its lines on a bounded pool of goroutines
// (dt.WithWorkers); results do not depend on the worker count.
package gdt
