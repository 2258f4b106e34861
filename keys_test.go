package bbs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyGenRequiresMinimumIKM(t *testing.T) {
	cs := SHA256()
	_, err := cs.KeyGen(bytes.Repeat([]byte{0x01}, 16), nil)
	require.Error(t, err)
	var bbsErr *Error
	require.ErrorAs(t, err, &bbsErr)
	require.Equal(t, InvalidArgument, bbsErr.Kind)
}

func TestKeyGenDeterministicGivenSameIKM(t *testing.T) {
	cs := SHA256()
	ikm := bytes.Repeat([]byte{0x42}, 32)
	a, err := cs.KeyGen(ikm, []byte("info"))
	require.NoError(t, err)
	b, err := cs.KeyGen(ikm, []byte("info"))
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 32)
}

func TestKeyGenVariesWithKeyInfo(t *testing.T) {
	cs := SHA256()
	ikm := bytes.Repeat([]byte{0x42}, 32)
	a, err := cs.KeyGen(ikm, []byte("info-a"))
	require.NoError(t, err)
	b, err := cs.KeyGen(ikm, []byte("info-b"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestKeyGenNilIKMGeneratesRandomKey(t *testing.T) {
	cs := SHA256()
	a, err := cs.KeyGen(nil, nil)
	require.NoError(t, err)
	b, err := cs.KeyGen(nil, nil)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSkToPkRoundTrip(t *testing.T) {
	cs := SHA256()
	sk, err := cs.KeyGen(bytes.Repeat([]byte{0x07}, 32), nil)
	require.NoError(t, err)

	pk, err := SkToPk(sk)
	require.NoError(t, err)
	require.Len(t, pk, 96)
	require.True(t, PubkeyValid(pk))
}

func TestOctetsToPubKeyRejectsWrongLength(t *testing.T) {
	_, err := octetsToPubKey([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}
