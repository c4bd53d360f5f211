package align

import "nwalign/internal/domain"

type move uint8

const (
	moveMatch move = iota
	moveDelete
	moveInsert
)

// matrix stores scores and winning moves in row-major flat buffers.
type matrix struct {
	rows, cols int
	scores     []float64
	moves      []move
}

func newMatrix(n, m int) *matrix {
	size := (n + 1) * (m + 1)
	return &matrix{
		rows:   n + 1,
		cols:   m + 1,
		scores: make([]float64, size),
		moves:  make([]move, size),
	}
}

func (mx *matrix) idx(i, j int) int { return i*mx.cols + j }

func (mx *matrix) scoreAt(i, j int) float64 { return mx.scores[mx.idx(i, j)] }

func (mx *matrix) moveAt(i, j int) move { return mx.moves[mx.idx(i, j)] }

// fill computes every cell of the score and move tables for a against b.
func fill[T comparable](a, b domain.Sequence[T], p domain.Penalties) *matrix {
	n, m := a.Len(), b.Len()
	mx := newMatrix(n, m)

	// Cell (0, 0) stays at +0; 0*gap would give -0 for negative gaps.
	for i := 1; i <= n; i++ {
		mx.scores[mx.idx(i, 0)] = float64(i) * p.Gap
		mx.moves[mx.idx(i, 0)] = moveDelete
	}
	for j := 1; j <= m; j++ {
		mx.scores[mx.idx(0, j)] = float64(j) * p.Gap
		mx.moves[mx.idx(0, j)] = moveInsert
	}

	for i := 1; i <= n; i++ {
		ai := a.At(i - 1)
		row, prev := i*mx.cols, (i-1)*mx.cols
		for j := 1; j <= m; j++ {
			diag := mx.scores[prev+j-1]
			if ai != b.At(j-1) {
				diag += p.Mismatch
			}
			s, mv := best(
				diag,
				mx.scores[prev+j]+p.Gap,
				mx.scores[row+j-1]+p.Gap,
			)
			mx.scores[row+j] = s
			mx.moves[row+j] = mv
		}
	}
	return mx
}

// best picks the strictly largest candidate; on equal scores the earlier
// candidate wins (match, then delete, then insert).
func best(match, del, ins float64) (float64, move) {
	s, mv := match, moveMatch
	if del > s {
		s, mv = del, moveDelete
	}
	if ins > s {
		s, mv = ins, moveInsert
	}
	return s, mv
}
