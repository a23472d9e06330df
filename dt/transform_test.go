package dt_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/gdt/dt"
	"github.com/katalvlaran/gdt/ndarray"
	"github.com/stretchr/testify/require"
)

// TestDistanceTransform_FourByFour is the reference 4×4 scenario without weights.
func TestDistanceTransform_FourByFour(t *testing.T) {
	in := fourByFour(t)
	out, loc, err := dt.DistanceTransform(in)
	require.NoError(t, err)

	require.Equal(t, []int{4, 4}, out.Shape())
	require.Equal(t, []float32{
		9, 6, 5, 6,
		6, 3, 2, 3,
		5, 2, 1, 2,
		6, 3, 2, 3,
	}, out.Data())

	require.Equal(t, []int{2, 4, 4}, loc.Shape())
	rows, err := loc.Layer(0)
	require.NoError(t, err)
	for _, r := range rows.Data() {
		require.Equal(t, int32(2), r)
	}
	// The axis-1 layer records per-row winners before the axis-0 pass:
	// constant rows keep their own column, the source row points at column 2.
	cols, err := loc.Layer(1)
	require.NoError(t, err)
	require.Equal(t, []int32{
		0, 1, 2, 3,
		0, 1, 2, 3,
		2, 2, 2, 2,
		0, 1, 2, 3,
	}, cols.Data())

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			src, err := dt.ResolveSource(loc, i, j)
			require.NoError(t, err)
			require.Equal(t, []int{2, 2}, src, "cell (%d,%d)", i, j)
		}
	}
}

// TestDistanceTransform_FourByFourWeighted applies weights [2,2]: every axis
// contributes Δ²/2, so (0,0) becomes 1 + (4+4)/2 = 5.
func TestDistanceTransform_FourByFourWeighted(t *testing.T) {
	out, loc, err := dt.DistanceTransform(fourByFour(t), dt.WithWeights(2, 2))
	require.NoError(t, err)
	require.Equal(t, []float32{
		5, 3.5, 3, 3.5,
		3.5, 2, 1.5, 2,
		3, 1.5, 1, 1.5,
		3.5, 2, 1.5, 2,
	}, out.Data())

	resolved, err := dt.ResolveSources(loc)
	require.NoError(t, err)
	for _, c := range resolved.Data() {
		require.Equal(t, int32(2), c)
	}
}

// TestDistanceTransform_WeightLengthMismatch covers grids of 1 to 4 axes.
func TestDistanceTransform_WeightLengthMismatch(t *testing.T) {
	shapes := [][]int{{5}, {3, 4}, {2, 3, 4}, {2, 2, 3, 2}}
	for _, shape := range shapes {
		g, err := ndarray.Full[float32](1, shape...)
		require.NoError(t, err)
		for _, n := range []int{len(shape) - 1, len(shape) + 1} {
			if n == 0 {
				continue
			}
			w := make([]float64, n)
			for i := range w {
				w[i] = 1
			}
			out, loc, err := dt.DistanceTransform(g, dt.WithWeights(w...))
			require.ErrorIs(t, err, dt.ErrWeightLengthMismatch, "shape=%v weights=%d", shape, n)
			require.Nil(t, out)
			require.Nil(t, loc)
		}
		// Exact length and empty weights are accepted.
		w := make([]float64, len(shape))
		for i := range w {
			w[i] = 1
		}
		_, _, err = dt.DistanceTransform(g, dt.WithWeights(w...))
		require.NoError(t, err)
		_, _, err = dt.DistanceTransform(g, dt.WithWeights())
		require.NoError(t, err)
	}
}

func TestDistanceTransform_InvalidInput(t *testing.T) {
	f64, _ := ndarray.Full[float64](1, 3, 3)
	_, _, err := dt.DistanceTransform(f64)
	require.ErrorIs(t, err, dt.ErrInvalidInputType)

	i32, _ := ndarray.New[int32](3)
	_, _, err = dt.DistanceTransform(i32)
	require.ErrorIs(t, err, dt.ErrInvalidInputType)

	_, _, err = dt.DistanceTransform(nil)
	require.ErrorIs(t, err, dt.ErrNilInput)

	var typedNil *ndarray.Dense[float32]
	_, _, err = dt.DistanceTransform(typedNil)
	require.ErrorIs(t, err, dt.ErrNilInput)

	// Type is checked before weights.
	_, _, err = dt.DistanceTransform(f64, dt.WithWeights(1))
	require.ErrorIs(t, err, dt.ErrInvalidInputType)
}

// TestDistanceTransform_NoAliasing checks the input is neither modified nor shared.
func TestDistanceTransform_NoAliasing(t *testing.T) {
	in := fourByFour(t)
	before := append([]float32(nil), in.Data()...)

	out, _, err := dt.DistanceTransform(in, dt.WithWeights(0.5, 3))
	require.NoError(t, err)
	require.Equal(t, before, in.Data())

	require.NoError(t, out.Set(-1, 0, 0))
	v, _ := in.At(0, 0)
	require.Equal(t, float32(10), v)
}

// TestDistanceTransform_Idempotent runs the transform twice on the same input.
func TestDistanceTransform_Idempotent(t *testing.T) {
	in := randomIntGrid(t, 3, 50, 5, 6, 7)
	out1, loc1, err := dt.DistanceTransform(in, dt.WithWeights(1, 2, 0.5))
	require.NoError(t, err)
	out2, loc2, err := dt.DistanceTransform(in, dt.WithWeights(1, 2, 0.5))
	require.NoError(t, err)
	require.Equal(t, out1.Data(), out2.Data())
	require.Equal(t, loc1.Data(), loc2.Data())
}

// TestDistanceTransform_BruteForce compares N-dimensional results with the
// definition for 1 to 4 axes.
func TestDistanceTransform_BruteForce(t *testing.T) {
	shapes := [][]int{{9}, {6, 7}, {4, 5, 3}, {3, 2, 4, 3}}
	for s, shape := range shapes {
		in := randomIntGrid(t, int64(s+1), 30, shape...)
		out, loc, err := dt.DistanceTransform(in)
		require.NoError(t, err)
		want := bruteForce(t, in, nil)

		got := out.Data()
		for i, w := range want.Data() {
			require.Equal(t, float32(w), got[i], "shape=%v flat=%d", shape, i)
		}

		// Every resolved source must explain the value at its cell.
		out.Each(func(idx []int, v float32) {
			src, err := dt.ResolveSource(loc, idx...)
			require.NoError(t, err)
			cost, _ := in.At(src...)
			for a := range idx {
				d := idx[a] - src[a]
				cost += float32(d * d)
			}
			require.Equal(t, v, cost, "shape=%v idx=%v src=%v", shape, idx, src)
		})
	}
}

// TestDistanceTransform_WeightedBruteForce checks out = min f + Σ Δ²/w with
// power-of-two weights, where the scale bracket is exact.
func TestDistanceTransform_WeightedBruteForce(t *testing.T) {
	in := randomIntGrid(t, 11, 40, 5, 4, 6)
	w := []float64{2, 0.5, 4}
	out, _, err := dt.DistanceTransform(in, dt.WithWeights(w...))
	require.NoError(t, err)
	want := bruteForce(t, in, w)

	got := out.Data()
	for i, v := range want.Data() {
		require.InDelta(t, v, float64(got[i]), 1e-4, "flat=%d", i)
	}
}

// TestDistanceTransform_AxisPermutation verifies that transposing the input
// transposes the isotropic output.
func TestDistanceTransform_AxisPermutation(t *testing.T) {
	in := randomIntGrid(t, 5, 25, 3, 4, 5)
	base, _, err := dt.DistanceTransform(in)
	require.NoError(t, err)

	perms := [][]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, perm := range perms {
		view, err := in.Transpose(perm...)
		require.NoError(t, err)
		out, _, err := dt.DistanceTransform(view.Clone())
		require.NoError(t, err)

		want, err := base.Transpose(perm...)
		require.NoError(t, err)
		require.Equal(t, want.Clone().Data(), out.Data(), "perm=%v", perm)
	}
}

// TestDistanceTransform_StridedInput accepts a non-contiguous view directly.
func TestDistanceTransform_StridedInput(t *testing.T) {
	in := randomIntGrid(t, 9, 25, 4, 6)
	view, err := in.Transpose(1, 0)
	require.NoError(t, err)

	fromView, locView, err := dt.DistanceTransform(view)
	require.NoError(t, err)
	fromClone, locClone, err := dt.DistanceTransform(view.Clone())
	require.NoError(t, err)
	require.Equal(t, fromClone.Data(), fromView.Data())
	require.Equal(t, locClone.Data(), locView.Data())
	require.True(t, fromView.IsContiguous())
}

// TestDistanceTransform_WorkerCountDeterminism compares results across worker counts.
func TestDistanceTransform_WorkerCountDeterminism(t *testing.T) {
	in := randomIntGrid(t, 21, 100, 7, 9, 11)
	ref, refLoc, err := dt.DistanceTransform(in, dt.WithWorkers(1), dt.WithWeights(1.5, 0.3, 3))
	require.NoError(t, err)
	for _, workers := range []int{0, 2, 3, 16} {
		out, loc, err := dt.DistanceTransform(in, dt.WithWorkers(workers), dt.WithWeights(1.5, 0.3, 3))
		require.NoError(t, err)
		require.Equal(t, ref.Data(), out.Data(), "workers=%d", workers)
		require.Equal(t, refLoc.Data(), loc.Data(), "workers=%d", workers)
	}
}

// TestDistanceTransform_WeightMonotonic raises the axis-0 weight and checks
// that no cell ever gets farther from its sources.
func TestDistanceTransform_WeightMonotonic(t *testing.T) {
	in := randomIntGrid(t, 13, 60, 6, 8)
	var prev []float32
	for _, w := range []float64{1, 2, 4, 8} {
		out, _, err := dt.DistanceTransform(in, dt.WithWeights(w, 1))
		require.NoError(t, err)
		if prev != nil {
			for i, v := range out.Data() {
				require.LessOrEqual(t, v, prev[i], "w=%v flat=%d", w, i)
			}
		}
		prev = out.Data()
	}
}

// TestDistanceTransform_WeightFloor checks that weights below MinWeight are
// replaced by WeightFloor and effectively freeze the axis.
func TestDistanceTransform_WeightFloor(t *testing.T) {
	in := fourByFour(t)
	ref, refLoc, err := dt.DistanceTransform(in, dt.WithWeights(dt.WeightFloor, 1))
	require.NoError(t, err)
	for _, w := range []float64{0, 0.05, 0.0999, -3} {
		out, loc, err := dt.DistanceTransform(in, dt.WithWeights(w, 1))
		require.NoError(t, err)
		require.Equal(t, ref.Data(), out.Data(), "w=%v", w)
		require.Equal(t, refLoc.Data(), loc.Data(), "w=%v", w)
	}

	// Rows keep their axis-1 result; nothing travels along axis 0.
	want := []float64{
		10, 10, 10, 10,
		10, 10, 10, 10,
		5, 2, 1, 2,
		10, 10, 10, 10,
	}
	for i, v := range ref.Data() {
		require.InDelta(t, want[i], float64(v), 1e-3, "flat=%d", i)
	}
	rows, _ := refLoc.Layer(0)
	for i, r := range rows.Data() {
		require.Equal(t, int32(i/4), r, "flat=%d", i)
	}
}

// TestDistanceTransform_OneDimensional matches Transform1D on a single line.
func TestDistanceTransform_OneDimensional(t *testing.T) {
	f := []float32{4, 9, 0, 7, 7, 2, 30}
	in, err := ndarray.FromSlice(f, len(f))
	require.NoError(t, err)

	out, loc, err := dt.DistanceTransform(in)
	require.NoError(t, err)
	d, v := dt.Transform1D(f)
	require.Equal(t, d, out.Data())
	require.Equal(t, []int{1, len(f)}, loc.Shape())
	require.Equal(t, v, loc.Data())
}

func TestResolveSource_Errors(t *testing.T) {
	_, loc, err := dt.DistanceTransform(fourByFour(t))
	require.NoError(t, err)

	_, err = dt.ResolveSource(loc, 1)
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
	_, err = dt.ResolveSource(loc, 4, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	bad, _ := ndarray.New[int32](3, 4, 4)
	_, err = dt.ResolveSource(bad, 0, 0)
	require.ErrorIs(t, err, dt.ErrLocationShape)
	_, err = dt.ResolveSources(bad)
	require.ErrorIs(t, err, dt.ErrLocationShape)
	_, err = dt.ResolveSources(nil)
	require.ErrorIs(t, err, dt.ErrLocationShape)
}

// TestLogger checks that the floor substitution is reported and that the
// default logger stays silent.
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	dt.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer dt.SetLogger(nil)

	_, _, err := dt.DistanceTransform(fourByFour(t), dt.WithWeights(0, 1))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "weight below minimum")
	require.Contains(t, buf.String(), "axis pass")

	dt.SetLogger(nil)
	require.False(t, dt.Logger().Enabled(t.Context(), slog.LevelError))
}

func TestWithWeights_PanicsOnNonFinite(t *testing.T) {
	require.Panics(t, func() { dt.WithWeights(1, math.NaN()) })
	require.Panics(t, func() { dt.WithWeights(math.Inf(1)) })
	require.NotPanics(t, func() { dt.WithWeights(-1, 0) })
}
