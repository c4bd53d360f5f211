package domain

// Aligner aligns two text sequences under a fixed penalty configuration.
// Implementations hold no mutable state and are safe for concurrent use.
type Aligner interface {
	Align(a, b Sequence[Char]) Alignment[Char]
	Penalties() Penalties
}

// AlignmentSink persists a finished record.
type AlignmentSink interface {
	Save(path string, rec Alignment[Char]) error
}
