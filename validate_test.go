package bbs

import (
	"bytes"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"
)

func TestPubkeyValid(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x21)
	_ = sk
	require.True(t, PubkeyValid(pk))
	require.False(t, PubkeyValid(bytes.Repeat([]byte{0x00}, 10)))
}

func TestSignatureValid(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x22)
	sig, err := cs.Sign(sk, pk, nil, [][]byte{[]byte("m")})
	require.NoError(t, err)
	require.True(t, SignatureValid(sig))
	require.False(t, SignatureValid(sig[:10]))
}

func TestSignatureValidRejectsG1GeneratorAsA(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x24)
	sig, err := cs.Sign(sk, pk, nil, [][]byte{[]byte("m")})
	require.NoError(t, err)

	_, _, g1Gen, _ := bls12381.Generators()
	gb := g1Gen.Bytes()
	sentinel := append(append([]byte{}, gb[:]...), sig[48:]...)
	require.False(t, SignatureValid(sentinel))
}

func TestProofValid(t *testing.T) {
	cs := SHA256()
	sk, pk := testKeyPair(t, cs, 0x23)
	messages := [][]byte{[]byte("m1"), []byte("m2")}
	sig, err := cs.Sign(sk, pk, nil, messages)
	require.NoError(t, err)
	proof, err := cs.ProofGen(pk, sig, nil, nil, messages, []int{1})
	require.NoError(t, err)
	require.True(t, ProofValid(proof))
	require.False(t, ProofValid(proof[:proofFloorLength-1]))
}
