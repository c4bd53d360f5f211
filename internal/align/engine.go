package align

import "nwalign/internal/domain"

// Global returns the optimal global alignment of a against b under p.
// Neither sequence is modified.
func Global[T comparable](a, b domain.Sequence[T], p domain.Penalties) domain.Alignment[T] {
	mx := fill(a, b, p)
	return domain.NewAlignment(traceback(mx, a, b), mx.scoreAt(a.Len(), b.Len()))
}

// traceback follows the recorded moves from the bottom-right cell to an edge,
// then exhausts whichever sequence still has symbols. Pairs come back in
// sequence order.
func traceback[T comparable](mx *matrix, a, b domain.Sequence[T]) []domain.Pair[T] {
	i, j := a.Len(), b.Len()
	out := make([]domain.Pair[T], 0, i+j)

	for i > 0 && j > 0 {
		switch mx.moveAt(i, j) {
		case moveMatch:
			out = append(out, domain.Aligned(a.At(i-1), b.At(j-1)))
			i--
			j--
		case moveDelete:
			out = append(out, domain.Deleted[T](a.At(i-1)))
			i--
		case moveInsert:
			out = append(out, domain.Inserted[T](b.At(j-1)))
			j--
		}
	}
	for ; i > 0; i-- {
		out = append(out, domain.Deleted[T](a.At(i-1)))
	}
	for ; j > 0; j-- {
		out = append(out, domain.Inserted[T](b.At(j-1)))
	}

	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

// Engine aligns text sequences with a fixed set of penalties.
type Engine struct {
	penalties domain.Penalties
}

var _ domain.Aligner = (*Engine)(nil)

// New returns an Engine scoring with p.
func New(p domain.Penalties) *Engine { return &Engine{penalties: p} }

// Align implements domain.Aligner.
func (e *Engine) Align(a, b domain.Sequence[domain.Char]) domain.Alignment[domain.Char] {
	return Global(a, b, e.penalties)
}

// Penalties returns the configuration the engine scores with.
func (e *Engine) Penalties() domain.Penalties { return e.penalties }
