package domain

// Default penalty values used by the command surface.
const (
	DefaultMismatchPenalty = -2.0
	DefaultGapPenalty      = -1.0
)

// Penalties fully parameterizes scoring. Both values are added to the score, so
// negative numbers penalise and positive numbers reward; no sign is enforced.
// A Penalties value is never mutated by the engine and may be shared freely.
type Penalties struct {
	Mismatch float64 `yaml:"mismatch_penalty"`
	Gap      float64 `yaml:"gap_penalty"`
}

// DefaultPenalties returns mismatch -2.0 and gap -1.0.
func DefaultPenalties() Penalties {
	return Penalties{Mismatch: DefaultMismatchPenalty, Gap: DefaultGapPenalty}
}
