// Package dt computes generalized squared-Euclidean distance transforms over
// N-dimensional float32 grids, together with a per-axis map of the cells that
// produced each minimum.
//
// What is a generalized distance transform?
//
//	For a cost field f the transform is
//
//	  d(p) = min_k f(k) + Σ_a (p_a - k_a)²
//
//	i.e. every cell receives the cheapest "cost + squared travel" over all other
//	cells. A field of zeros (sources) and +Infinity (background) yields the
//	squared Euclidean distance to the nearest source; arbitrary finite costs
//	yield the min-convolution used by template matching, pictorial-structure
//	shape models and max-product message passing over grids.
//
// How:
//
//   - Transform1D: exact 1D transform in O(n) via the lower envelope of the
//     parabolas f(k) + (q-k)² (monotone stack of vertices and intersections).
//   - LineCount / LineStart / Lines: enumerate every 1D line of a grid along
//     one axis (a stateless mixed-radix odometer).
//   - DistanceTransform: run one 1D pass per axis, last axis first, dispatching
//     the independent lines of a pass to a bounded set of goroutines.
//   - ResolveSource / ResolveSources: chain the per-axis location layers back
//     into the coordinates of the winning source cell.
//
// Options:
//
//   - WithWeights(w...): per-axis weights. Each pass scales the grid by w[a]
//     before the 1D transform and divides it back afterwards, so the axis
//     contributes (Δ_a)²/w[a]. Weights below MinWeight use WeightFloor.
//   - WithWorkers(n): bound on concurrent goroutines (<= 0 means GOMAXPROCS).
//
// Complexity:
//
//   - Time O(N·D) for a grid of N cells and D axes, Memory O(N·D) for the
//     location map plus O(workers·max extent) scratch.
//
// Errors:
//
//   - ErrNilInput, ErrInvalidInputType, ErrWeightLengthMismatch: rejected before
//     any pass runs; no partial result is returned.
//   - ErrLocationShape: a location map that is not [dims]+shape.
//
// The result does not depend on the worker count.
package dt
