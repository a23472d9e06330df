package dt

// Infinity is the sentinel used for the outer boundaries of the lower envelope.
// Costs at or above it behave as "no source here".
const Infinity float32 = 1e20

// Transform1D: exact 1D generalized distance transform.
//
// Description:
//
//	d[q] = min_k f[k] + (q-k)²  and  v[q] = argmin_k.
//
//	The parabolas f[k] + (q-k)² are scanned left to right. A monotone stack
//	keeps the vertices of the current lower envelope (v) and the abscissas
//	where consecutive parabolas intersect (z). A new parabola pops every
//	vertex it hides, i.e. while its intersection s with the top vertex lies
//	at or left of that vertex's own left boundary. A second scan reads, for
//	every q, the vertex whose envelope segment contains q.
//
// Ties:
//
//	When two sources give the same value at q, the one whose envelope segment
//	covers q in the left-to-right scan wins.
//
// Edge cases:
//   - len(f) == 0 returns empty slices.
//   - len(f) == 1 returns (f, [0]).
//   - Negative costs are allowed.
//
// Complexity:
//
//	Time O(n), Memory O(n).
func Transform1D(f []float32) (d []float32, v []int32) {
	n := len(f)
	d = make([]float32, n)
	v = make([]int32, n)
	transform1D(f, d, v, newEnvelope(n))

	return d, v
}

// envelope is the reusable scratch of one 1D transform: the vertex stack and
// the intersection abscissas (one more than vertices).
type envelope struct {
	v []int32
	z []float32
}

// newEnvelope allocates scratch for lines of length n.
func newEnvelope(n int) *envelope {
	return &envelope{v: make([]int32, n), z: make([]float32, n+1)}
}

// intersect returns the abscissa where the parabola rooted at q meets the one
// rooted at p (p < q). fq is f[q] + q², precomputed by the caller.
func intersect(f []float32, fq float32, q, p int) float32 {
	return (fq - (f[p] + float32(p*p))) / float32(2*q-2*p)
}

// transform1D writes the transform of f into d and the argmin into loc, using
// e as scratch. len(d), len(loc) >= len(f) and e must fit len(f).
func transform1D(f, d []float32, loc []int32, e *envelope) {
	n := len(f)
	if n == 0 {
		return
	}
	v, z := e.v[:n], e.z[:n+1]

	k := 0
	v[0] = 0
	z[0] = -Infinity
	z[1] = Infinity
	for q := 1; q < n; q++ {
		fq := f[q] + float32(q*q)
		s := intersect(f, fq, q, int(v[k]))
		// k > 0 guards against costs so negative that s falls below -Infinity.
		for k > 0 && s <= z[k] {
			k--
			s = intersect(f, fq, q, int(v[k]))
		}
		k++
		v[k] = int32(q)
		z[k] = s
		z[k+1] = Infinity
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float32(q) {
			k++
		}
		p := int(v[k])
		d[q] = float32((q-p)*(q-p)) + f[p]
		loc[q] = v[k]
	}
}
