package align_test

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nwalign/internal/align"
	"nwalign/internal/domain"
)

// rows returns the two rendered rows of rec without the summary line.
func rows(t *testing.T, rec domain.Alignment[domain.Char]) (string, string) {
	t.Helper()
	lines := strings.Split(rec.String(), "\n")
	require.Len(t, lines, 3)
	return lines[1], lines[2]
}

func assertReconstructs[T comparable](t *testing.T, rec domain.Alignment[T], a, b domain.Sequence[T]) {
	t.Helper()
	assert.True(t, rec.Project(0).Equal(a), "side 0 must reconstruct sequence 0")
	assert.True(t, rec.Project(1).Equal(b), "side 1 must reconstruct sequence 1")
	for _, p := range rec.Pairs() {
		_, l := p.Side(0)
		_, r := p.Side(1)
		assert.True(t, l || r, "pair must carry at least one symbol")
	}
}

func TestGlobal_KnownAlignments(t *testing.T) {
	cases := []struct {
		name       string
		a, b       string
		penalties  domain.Penalties
		score      float64
		row0, row1 string
	}{
		{"textbook equal penalties", "GATTACA", "GCATGCU", domain.Penalties{Mismatch: -1, Gap: -1}, -4, "GATTACA", "GCATGCU"},
		{"textbook defaults", "GATTACA", "GCATGCU", domain.DefaultPenalties(), -6, "G-ATTACA", "GCA-TGCU"},
		{"prefix", "AC", "ACGT", domain.DefaultPenalties(), -2, "AC--", "ACGT"},
		{"long against short", "AAAA", "A", domain.DefaultPenalties(), -3, "AAAA", "---A"},
		{"short against long", "A", "AAAA", domain.DefaultPenalties(), -3, "---A", "AAAA"},
		{"inner block", "ACGTTGCA", "TG", domain.DefaultPenalties(), -6, "ACGTTGCA", "----TG--"},
		{"reversed", "ACGT", "TGCA", domain.DefaultPenalties(), -6, "-ACGT", "TGC-A"},
		{"rewards", "GATTACA", "GCATGCU", domain.Penalties{Mismatch: 1, Gap: 1}, 14, "-------GATTACA", "GCATGCU-------"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := domain.FromString(tc.a), domain.FromString(tc.b)
			rec := align.Global(a, b, tc.penalties)

			assert.Equal(t, tc.score, rec.Score())
			r0, r1 := rows(t, rec)
			assert.Equal(t, tc.row0, r0)
			assert.Equal(t, tc.row1, r1)
			assertReconstructs(t, rec, a, b)
		})
	}
}

func TestGlobal_SelfAlignment(t *testing.T) {
	seq := domain.FromString("ACGTTGCAAGT")
	rec := align.Global(seq, seq, domain.DefaultPenalties())

	assert.Equal(t, 0.0, rec.Score())
	assert.Equal(t, 0, rec.Gaps())
	assert.Equal(t, 1.0, rec.MatchingRatio())
	assert.Equal(t, seq.Len(), rec.Len())
	assert.Contains(t, rec.String(), "score 0.00, 100.00% aligned")

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"score":0}`)
}

func TestGlobal_AgainstEmpty(t *testing.T) {
	p := domain.DefaultPenalties()
	seq := domain.FromString("ACGT")
	empty := domain.FromString("")

	rec := align.Global(seq, empty, p)
	assert.Equal(t, 4*p.Gap, rec.Score())
	assert.Equal(t, 4, rec.Len())
	assert.Equal(t, 4, rec.Gaps())
	assertReconstructs(t, rec, seq, empty)

	rec = align.Global(empty, seq, p)
	assert.Equal(t, 4*p.Gap, rec.Score())
	assert.Equal(t, 4, rec.Gaps())
	for _, pair := range rec.Pairs() {
		_, ok := pair.Side(0)
		assert.False(t, ok, "side 0 must be all gaps")
	}
	assertReconstructs(t, rec, empty, seq)
}

func TestGlobal_BothEmpty(t *testing.T) {
	empty := domain.FromString("")
	rec := align.Global(empty, empty, domain.DefaultPenalties())

	assert.Equal(t, 0, rec.Len())
	assert.Equal(t, 0.0, rec.Score())
	assert.Equal(t, 0.0, rec.MatchingRatio())
}

func TestGlobal_TieBreakPrefersMatch(t *testing.T) {
	// Equal penalties make diagonal and gap paths tie; the diagonal wins.
	p := domain.Penalties{Mismatch: -1, Gap: -1}
	a, b := domain.FromString("ABC"), domain.FromString("XBZ")
	rec := align.Global(a, b, p)

	assert.Equal(t, -2.0, rec.Score())
	assert.Equal(t, 0, rec.Gaps())
	r0, r1 := rows(t, rec)
	assert.Equal(t, "ABC", r0)
	assert.Equal(t, "XBZ", r1)
}

func TestGlobal_Deterministic(t *testing.T) {
	p := domain.Penalties{Mismatch: -1, Gap: -1}
	a, b := domain.FromString("GATTACAGATTACA"), domain.FromString("GCATGCUACGT")

	first, err := json.Marshal(align.Global(a, b, p))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = json.Marshal(align.Global(a, b, p))
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, string(first), string(got))
	}
}

func TestGlobal_GenericSymbols(t *testing.T) {
	a := domain.NewSequence(1, 2, 3, 4)
	b := domain.NewSequence(1, 3, 4)
	rec := align.Global(a, b, domain.DefaultPenalties())

	assert.Equal(t, -1.0, rec.Score())
	assert.Equal(t, 3, rec.Matches())
	assert.Equal(t, 1, rec.Gaps())
	assertReconstructs(t, rec, a, b)
}

func TestGlobal_DoesNotMutateInputs(t *testing.T) {
	a, b := domain.FromString("GATTACA"), domain.FromString("GCATGCU")
	_ = align.Global(a, b, domain.DefaultPenalties())
	assert.Equal(t, "GATTACA", a.String())
	assert.Equal(t, "GCATGCU", b.String())
}

func TestEngine_Align(t *testing.T) {
	p := domain.Penalties{Mismatch: -3, Gap: -2}
	e := align.New(p)
	assert.Equal(t, p, e.Penalties())

	a, b := domain.FromString("ACGT"), domain.FromString("AGT")
	rec := e.Align(a, b)
	assert.Equal(t, align.Global(a, b, p), rec)
	assert.Equal(t, -2.0, rec.Score())
}

// pathScore re-scores rec pair by pair.
func pathScore[T comparable](rec domain.Alignment[T], p domain.Penalties) float64 {
	var s float64
	for _, pair := range rec.Pairs() {
		switch {
		case pair.IsGap():
			s += p.Gap
		case !pair.IsMatch():
			s += p.Mismatch
		}
	}
	return s
}

// bestScore is the exhaustive optimum over every global path.
func bestScore(a, b []domain.Char, p domain.Penalties) float64 {
	switch {
	case len(a) == 0:
		return float64(len(b)) * p.Gap
	case len(b) == 0:
		return float64(len(a)) * p.Gap
	}
	diag := bestScore(a[1:], b[1:], p)
	if a[0] != b[0] {
		diag += p.Mismatch
	}
	return max(diag, bestScore(a[1:], b, p)+p.Gap, bestScore(a, b[1:], p)+p.Gap)
}

func randomSequence(r *rand.Rand, maxLen int) domain.Sequence[domain.Char] {
	const alphabet = "ACGT"
	syms := make([]domain.Char, r.IntN(maxLen+1))
	for i := range syms {
		syms[i] = domain.Char(alphabet[r.IntN(len(alphabet))])
	}
	return domain.NewSequence(syms...)
}

func TestGlobal_RandomPairs(t *testing.T) {
	r := rand.New(rand.NewPCG(6841, 1))
	penalties := []domain.Penalties{
		domain.DefaultPenalties(),
		{Mismatch: -1, Gap: -1},
		{Mismatch: -3, Gap: -0.5},
		{Mismatch: 0.5, Gap: -1.5},
		{Mismatch: 1, Gap: 1},
	}
	for i := 0; i < 2000; i++ {
		a, b := randomSequence(r, 12), randomSequence(r, 12)
		p := penalties[i%len(penalties)]
		rec := align.Global(a, b, p)

		assertReconstructs(t, rec, a, b)
		require.Equal(t, pathScore(rec, p), rec.Score(), "%s / %s", a, b)
		require.GreaterOrEqual(t, rec.Len(), max(a.Len(), b.Len()))
		require.LessOrEqual(t, rec.Len(), a.Len()+b.Len())
	}
}

func TestGlobal_OptimalOnShortPairs(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	for i := 0; i < 300; i++ {
		a, b := randomSequence(r, 5), randomSequence(r, 5)
		p := domain.Penalties{Mismatch: -1 - float64(r.IntN(3)), Gap: -0.5 * float64(1+r.IntN(3))}
		rec := align.Global(a, b, p)
		require.Equal(t, bestScore(a.Symbols(), b.Symbols(), p), rec.Score(), "%s / %s", a, b)
	}
}
