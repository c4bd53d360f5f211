package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultGap is the glyph rendered for an absent symbol.
const DefaultGap = "-"

var (
	errEmptyPair = errors.New("alignment: pair has no symbol on either side")
	errPairArity = errors.New("alignment: pair must have exactly two entries")
)

// Pair is one column of an alignment. At least one side is present: both for a
// match or mismatch, exactly one for a gap.
type Pair[T comparable] struct {
	left, right       T
	hasLeft, hasRight bool
}

// Aligned pairs a symbol of sequence 0 with a symbol of sequence 1.
func Aligned[T comparable](a, b T) Pair[T] {
	return Pair[T]{left: a, right: b, hasLeft: true, hasRight: true}
}

// Deleted keeps a symbol of sequence 0 against a gap in sequence 1.
func Deleted[T comparable](a T) Pair[T] {
	return Pair[T]{left: a, hasLeft: true}
}

// Inserted keeps a symbol of sequence 1 against a gap in sequence 0.
func Inserted[T comparable](b T) Pair[T] {
	return Pair[T]{right: b, hasRight: true}
}

// Side returns the symbol for sequence 0 (side 0) or sequence 1 (any other side).
func (p Pair[T]) Side(side int) (T, bool) {
	if side == 0 {
		return p.left, p.hasLeft
	}
	return p.right, p.hasRight
}

// IsGap reports whether one side is absent.
func (p Pair[T]) IsGap() bool { return p.hasLeft != p.hasRight }

// IsMatch reports whether both sides are present and equal.
func (p Pair[T]) IsMatch() bool {
	return p.hasLeft && p.hasRight && p.left == p.right
}

// MarshalJSON encodes the pair as a two-element array, null for an absent side.
func (p Pair[T]) MarshalJSON() ([]byte, error) {
	if !p.hasLeft && !p.hasRight {
		return nil, errEmptyPair
	}
	out := [2]*T{}
	if p.hasLeft {
		out[0] = &p.left
	}
	if p.hasRight {
		out[1] = &p.right
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (p *Pair[T]) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return errPairArity
	}
	var out Pair[T]
	for i, r := range raw {
		if bytes.Equal(bytes.TrimSpace(r), []byte("null")) {
			continue
		}
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			return fmt.Errorf("alignment: side %d: %w", i, err)
		}
		if i == 0 {
			out.left, out.hasLeft = v, true
		} else {
			out.right, out.hasRight = v, true
		}
	}
	if !out.hasLeft && !out.hasRight {
		return errEmptyPair
	}
	*p = out
	return nil
}

// Alignment is the result of aligning two sequences: ordered pairs from the start of
// both sequences to their end, and the optimal score under the penalties used.
type Alignment[T comparable] struct {
	pairs []Pair[T]
	score float64
}

// NewAlignment copies pairs into a new record.
func NewAlignment[T comparable](pairs []Pair[T], score float64) Alignment[T] {
	return Alignment[T]{pairs: append([]Pair[T](nil), pairs...), score: score}
}

// Score is the optimal alignment score.
func (a Alignment[T]) Score() float64 { return a.score }

// Len returns the number of columns.
func (a Alignment[T]) Len() int { return len(a.pairs) }

// Pairs returns a copy of the columns.
func (a Alignment[T]) Pairs() []Pair[T] { return append([]Pair[T](nil), a.pairs...) }

// Matches counts columns where both symbols are present and equal.
func (a Alignment[T]) Matches() int {
	n := 0
	for _, p := range a.pairs {
		if p.IsMatch() {
			n++
		}
	}
	return n
}

// Gaps counts columns with an absent side.
func (a Alignment[T]) Gaps() int {
	n := 0
	for _, p := range a.pairs {
		if p.IsGap() {
			n++
		}
	}
	return n
}

// MatchingRatio is Matches divided by Len, or 0 for an empty record.
func (a Alignment[T]) MatchingRatio() float64 {
	if len(a.pairs) == 0 {
		return 0
	}
	return float64(a.Matches()) / float64(len(a.pairs))
}

// Project returns the non-gap symbols of one side in order. Side 0 yields
// sequence 0, any other side yields sequence 1.
func (a Alignment[T]) Project(side int) Sequence[T] {
	out := make([]T, 0, len(a.pairs))
	for _, p := range a.pairs {
		if v, ok := p.Side(side); ok {
			out = append(out, v)
		}
	}
	return Sequence[T]{symbols: out}
}

// Render writes a summary line followed by one row per sequence, using gap for
// absent symbols.
func (a Alignment[T]) Render(gap string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Alignment with score %.2f, %.2f%% aligned\n", a.score, 100*a.MatchingRatio())
	for side := 0; side < 2; side++ {
		for _, p := range a.pairs {
			if v, ok := p.Side(side); ok {
				b.WriteString(symbolString(v))
			} else {
				b.WriteString(gap)
			}
		}
		if side == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the record with DefaultGap.
func (a Alignment[T]) String() string { return a.Render(DefaultGap) }

type alignmentJSON[T comparable] struct {
	Alignment []Pair[T] `json:"alignment"`
	Score     float64   `json:"score"`
}

// MarshalJSON encodes {"alignment": [[a, b], ...], "score": s}.
func (a Alignment[T]) MarshalJSON() ([]byte, error) {
	pairs := a.pairs
	if pairs == nil {
		pairs = []Pair[T]{}
	}
	return json.Marshal(alignmentJSON[T]{Alignment: pairs, Score: a.score})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (a *Alignment[T]) UnmarshalJSON(b []byte) error {
	var v alignmentJSON[T]
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if len(v.Alignment) == 0 {
		v.Alignment = nil
	}
	*a = Alignment[T]{pairs: v.Alignment, score: v.Score}
	return nil
}

func symbolString[T any](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
