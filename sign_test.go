package bbs

import (
	"bytes"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"
)

func testKeyPair(t *testing.T, cs *Ciphersuite, seed byte) (sk, pk []byte) {
	t.Helper()
	sk, err := cs.KeyGen(bytes.Repeat([]byte{seed}, 32), nil)
	require.NoError(t, err)
	pk, err = SkToPk(sk)
	require.NoError(t, err)
	return sk, pk
}

func TestSignVerifyRoundTrip(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x01)
	messages := [][]byte{[]byte("msg1"), []byte("msg2"), []byte("msg3")}

	sig, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)
	require.Len(t, sig, signatureLength)
	require.True(t, SignatureValid(sig))

	ok, err := cs.Verify(pk, sig, nil, messages)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSignVerifyWithHeader(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x02)
	messages := [][]byte{[]byte("only message")}
	header := []byte("application header")

	sig, err := cs.Sign(sk, pk, header, messages)
	require.NoError(t, err)

	ok, err := cs.Verify(pk, sig, header, messages)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cs.Verify(pk, sig, []byte("different header"), messages)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSignDeterministic(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x03)
	messages := [][]byte{[]byte("a"), []byte("b")}

	sigA, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)
	sigB, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)
	require.Equal(t, sigA, sigB)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x04)
	messages := [][]byte{[]byte("original")}

	sig, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)

	ok, err := cs.Verify(pk, sig, nil, [][]byte{[]byte("tampered")})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x05)
	messages := [][]byte{[]byte("original")}

	sig, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)

	tampered := append([]byte{}, sig...)
	tampered[0] ^= 0xff

	ok, err := cs.Verify(pk, tampered, nil, messages)
	if err == nil {
		require.False(t, ok)
	}
}

func TestVerifyRejectsWrongSignatureLength(t *testing.T) {
	cs := SHA256()
	_, pk := testKeyPair(t, cs, 0x06)
	_, err := cs.Verify(pk, []byte{0x00, 0x01}, nil, nil)
	require.Error(t, err)
}

func TestSignVerifyEmptyMessageList(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x07)

	sig, err := cs.Sign(sk, pk, nil, nil)
	require.NoError(t, err)
	ok, err := cs.Verify(pk, sig, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSignVerifyShake256Suite(t *testing.T) {
	cs := SHAKE256()
	sk, pk := testKeyPair(t, cs, 0x08)
	messages := [][]byte{[]byte("shake message")}

	sig, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)
	ok, err := cs.Verify(pk, sig, nil, messages)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyRejectsZeroE(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x09)
	messages := [][]byte{[]byte("m")}

	sig, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)

	tampered := append([]byte{}, sig...)
	for i := 48; i < 80; i++ {
		tampered[i] = 0
	}

	_, err = cs.Verify(pk, tampered, nil, messages)
	require.Error(t, err)
	require.False(t, SignatureValid(tampered))
}

func TestVerifyRejectsG1GeneratorAsA(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x0a)
	messages := [][]byte{[]byte("m")}

	sig, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)

	_, _, g1Gen, _ := bls12381.Generators()
	gb := g1Gen.Bytes()
	sentinel := append(append([]byte{}, gb[:]...), sig[48:]...)

	_, err = cs.Verify(pk, sentinel, nil, messages)
	require.Error(t, err)
	require.False(t, SignatureValid(sentinel))
}

func TestSignVerifyCrossSuiteRejection(t *testing.T) {
	sk, pk := testKeyPair(t, SHA256(), 0x0b)
	messages := [][]byte{[]byte("m")}

	sig, err := SHA256().Sign(sk, pk, nil, messages)
	require.NoError(t, err)

	ok, err := SHAKE256().Verify(pk, sig, nil, messages)
	require.NoError(t, err)
	require.False(t, ok)
}
