package bbs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCiphersuiteKnownNames(t *testing.T) {
	cs, err := NewCiphersuite("sha256")
	require.NoError(t, err)
	require.Equal(t, SHA256(), cs)

	cs, err = NewCiphersuite("shake256")
	require.NoError(t, err)
	require.Equal(t, SHAKE256(), cs)
}

func TestNewCiphersuiteUnknownName(t *testing.T) {
	_, err := NewCiphersuite("not-a-real-suite")
	require.Error(t, err)
	var bbsErr *Error
	require.ErrorAs(t, err, &bbsErr)
	require.Equal(t, InvalidArgument, bbsErr.Kind)
}

func TestCiphersuitesHaveDistinctDomainSeparation(t *testing.T) {
	require.NotEqual(t, SHA256().apiID, SHAKE256().apiID)
	require.False(t, SHA256().p1.Equal(&SHAKE256().p1))
}

func TestWithLoggerSharesGeneratorCache(t *testing.T) {
	cs := SHA256().WithLogger(SHA256().log)
	_, err := cs.ensureGenerators(3)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(SHA256().cache.generators), 3)
}
