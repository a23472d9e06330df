// SPDX-License-Identifier: MIT

// Package dt: functional configuration for DistanceTransform.
//
// Design goals:
//   - Deterministic behavior: no global state besides the logger, no randomness.
//   - Safe by construction: constructors panic only on nonsensical values
//     (programmer error); data-dependent problems are returned as errors.
package dt

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers lets the parallel adapter pick GOMAXPROCS goroutines.
	DefaultWorkers = 0

	// MinWeight is the smallest axis weight applied literally. Smaller weights
	// (zero and negative included) are replaced by WeightFloor.
	MinWeight = 0.1

	// WeightFloor is the positive factor substituted for weights below MinWeight.
	// It makes movement along the axis prohibitively expensive without dividing by zero.
	WeightFloor = 1e-5
)

const panicWeightInvalid = "dt: WithWeights: weights must be finite"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	weights []float64 // empty ⇒ isotropic
	workers int       // <= 0 ⇒ GOMAXPROCS
}

// WithWeights sets one weight per axis (axis 0 first).
// Implementation:
//   - Stage 1: validate every weight is finite; panic otherwise.
//   - Stage 2: copy the slice so later caller mutation does not leak in.
//
// Behavior highlights:
//   - An empty list means isotropic (same as not passing the option).
//   - The length is checked against the grid by DistanceTransform
//     (ErrWeightLengthMismatch), since the grid is not known here.
//
// AI-Hints:
//   - A weight of 2 halves the cost of travel along that axis; a weight
//     below MinWeight effectively forbids travel along it.
func WithWeights(w ...float64) Option {
	for _, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			panic(panicWeightInvalid)
		}
	}
	cp := append([]float64(nil), w...)

	return func(o *Options) { o.weights = cp }
}

// WithWorkers bounds the number of goroutines per pass. n <= 0 selects
// GOMAXPROCS; n == 1 runs every pass on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// axisFactor returns the scale applied to the grid for a weight and whether
// the floor substitution was used.
func axisFactor(w float64) (factor float64, floored bool) {
	if w >= MinWeight {
		return w, false
	}

	return WeightFloor, true
}
