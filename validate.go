package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// g1IsSentinel reports whether p equals the BLS12-381 G1 generator, the
// value a signature's A component is explicitly forbidden to take.
func g1IsSentinel(p bls12381.G1Affine) bool {
	_, _, g1Gen, _ := bls12381.Generators()
	return p.Equal(&g1Gen)
}

// PubkeyValid reports whether o is a structurally valid 96-octet public
// key: correct length, decodes as a Zcash-compressed G2 point, is not the
// identity, and lies in the prime-order subgroup.
func PubkeyValid(o []byte) bool {
	_, err := octetsToPubKey(o)
	return err == nil
}

// SignatureValid reports whether o is a structurally valid 80-octet BBS
// signature: correct length, A decodes to a non-identity, non-sentinel G1
// point, and e is strictly between 0 and the subgroup order.
func SignatureValid(o []byte) bool {
	if len(o) != signatureLength {
		return false
	}
	var a bls12381.G1Affine
	if _, err := a.SetBytes(o[:48]); err != nil {
		return false
	}
	if a.IsInfinity() || g1IsSentinel(a) {
		return false
	}
	return scalarInRange(o[48:80])
}

// ProofValid reports whether o is a structurally valid BBS proof: length
// at least the 272-octet floor (3*48 + 4*32) and congruent to it modulo 32, each of the
// three G1 points decodes to a non-identity point, and each trailing
// scalar is strictly between 0 and the subgroup order.
func ProofValid(o []byte) bool {
	if len(o) < proofFloorLength || (len(o)-proofFloorLength)%32 != 0 {
		return false
	}
	off := 0
	for i := 0; i < 3; i++ {
		var p bls12381.G1Affine
		if _, err := p.SetBytes(o[off : off+48]); err != nil {
			return false
		}
		if p.IsInfinity() {
			return false
		}
		off += 48
	}
	for off < len(o) {
		if !scalarInRange(o[off : off+32]) {
			return false
		}
		off += 32
	}
	return true
}

func scalarInRange(o []byte) bool {
	var s fr.Element
	s.SetBytes(o)
	if s.IsZero() {
		return false
	}
	b := s.Bytes()
	return bytesEqual(b[:], o)
}
