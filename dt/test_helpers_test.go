package dt_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gdt/ndarray"
	"github.com/stretchr/testify/require"
)

// randomIntGrid builds a grid of small integer costs so that every transform
// value is exactly representable and results can be compared with ==.
func randomIntGrid(t testing.TB, seed int64, maxCost int, shape ...int) *ndarray.Dense[float32] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := ndarray.New[float32](shape...)
	require.NoError(t, err)
	data := g.Data()
	for i := range data {
		data[i] = float32(rng.Intn(maxCost))
	}

	return g
}

// bruteForce evaluates min_k f(k) + Σ_a (p_a-k_a)²/w_a directly in float64.
// A nil w means isotropic.
func bruteForce(t testing.TB, g *ndarray.Dense[float32], w []float64) *ndarray.Dense[float64] {
	t.Helper()
	out, err := ndarray.New[float64](g.Shape()...)
	require.NoError(t, err)

	type cell struct {
		idx []int
		v   float64
	}
	var cells []cell
	g.Each(func(idx []int, v float32) {
		cells = append(cells, cell{idx: append([]int(nil), idx...), v: float64(v)})
	})

	for _, p := range cells {
		best := 0.0
		for j, k := range cells {
			val := k.v
			for a := range p.idx {
				d := float64(p.idx[a] - k.idx[a])
				wa := 1.0
				if w != nil {
					wa = w[a]
				}
				val += d * d / wa
			}
			if j == 0 || val < best {
				best = val
			}
		}
		require.NoError(t, out.Set(best, p.idx...))
	}

	return out
}

// fourByFour is the 4×4 constant-10 grid with a single 1.0 at (2,2).
func fourByFour(t testing.TB) *ndarray.Dense[float32] {
	t.Helper()
	g, err := ndarray.Full[float32](10, 4, 4)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 2, 2))

	return g
}
