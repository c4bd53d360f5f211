package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nwalign/internal/domain"
)

func TestFromString(t *testing.T) {
	s := domain.FromString("AçG")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, domain.Char('ç'), s.At(1))
	assert.Equal(t, "AçG", s.String())
}

func TestSequence_SymbolsIsACopy(t *testing.T) {
	s := domain.NewSequence('A', 'C')
	syms := s.Symbols()
	syms[0] = 'T'

	assert.Equal(t, 'A', s.At(0))
}

func TestNewSequence_CopiesInput(t *testing.T) {
	in := []int{1, 2, 3}
	s := domain.NewSequence(in...)
	in[0] = 9

	assert.Equal(t, 1, s.At(0))
	assert.Equal(t, "123", s.String())
}

func TestSequence_Equal(t *testing.T) {
	assert.True(t, domain.FromString("ACGT").Equal(domain.FromString("ACGT")))
	assert.False(t, domain.FromString("ACGT").Equal(domain.FromString("ACG")))
	assert.False(t, domain.FromString("ACGT").Equal(domain.FromString("ACGA")))
	assert.True(t, domain.FromString("").Equal(domain.NewSequence[domain.Char]()))
}

func TestChar_Text(t *testing.T) {
	var c domain.Char
	assert.NoError(t, c.UnmarshalText([]byte("é")))
	assert.Equal(t, domain.Char('é'), c)

	b, err := c.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "é", string(b))

	assert.Error(t, c.UnmarshalText(nil))
	assert.Error(t, c.UnmarshalText([]byte("ab")))
}

func TestDefaultPenalties(t *testing.T) {
	p := domain.DefaultPenalties()
	assert.Equal(t, -2.0, p.Mismatch)
	assert.Equal(t, -1.0, p.Gap)
}
