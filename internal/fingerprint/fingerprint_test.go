package fingerprint_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nwalign/internal/align"
	"nwalign/internal/domain"
	"nwalign/internal/fingerprint"
)

func TestBytes_Length(t *testing.T) {
	fp := fingerprint.Bytes([]byte("hello"))
	assert.Len(t, fp, 2*fingerprint.Size)
	assert.Equal(t, fp, fingerprint.Bytes([]byte("hello")))
	assert.NotEqual(t, fp, fingerprint.Bytes([]byte("hello!")))
}

func TestJSON_MatchesBytes(t *testing.T) {
	rec := align.Global(domain.FromString("GATTACA"), domain.FromString("GCATGCU"), domain.DefaultPenalties())

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	fp, err := fingerprint.JSON(rec)
	require.NoError(t, err)
	assert.Equal(t, fingerprint.Bytes(b), fp)
}

func TestJSON_DistinguishesPaths(t *testing.T) {
	a, b := domain.FromString("ACGT"), domain.FromString("TGCA")
	x, err := fingerprint.JSON(align.Global(a, b, domain.DefaultPenalties()))
	require.NoError(t, err)
	y, err := fingerprint.JSON(align.Global(b, a, domain.DefaultPenalties()))
	require.NoError(t, err)
	assert.NotEqual(t, x, y)
}

func TestJSON_Error(t *testing.T) {
	_, err := fingerprint.JSON(domain.Pair[domain.Char]{})
	assert.Error(t, err)
}
