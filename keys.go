package bbs

import (
	"crypto/rand"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const skLength = 32
const pkLength = 96

// KeyGen derives a 32-octet secret key from ikm (at least 32 octets of
// entropy; a fresh random 32 octets are drawn if ikm is nil) and an
// optional keyInfo, per the BBS draft's key generation (section 3.3): the
// key is hash_to_scalar(ikm || i2osp(len(keyInfo), 2) || keyInfo, key_dst).
func (cs *Ciphersuite) KeyGen(ikm, keyInfo []byte) ([]byte, error) {
	if ikm == nil {
		ikm = make([]byte, 32)
		if _, err := rand.Read(ikm); err != nil {
			return nil, newError(CryptoFailure, err)
		}
	}
	if len(ikm) < 32 {
		return nil, newError(InvalidArgument, ErrShortIKM)
	}
	if len(keyInfo) >= 65536 {
		return nil, newError(InvalidArgument, ErrKeyInfoTooLong)
	}

	keyInfoLen, err := i2osp(uint64(len(keyInfo)), 2)
	if err != nil {
		return nil, err
	}
	deriveInput := append(append([]byte{}, ikm...), keyInfoLen...)
	deriveInput = append(deriveInput, keyInfo...)

	sk, err := cs.hashToScalar(deriveInput, cs.keyDST)
	if err != nil {
		return nil, err
	}
	if sk.IsZero() {
		return nil, newError(CryptoFailure, ErrScalarRange)
	}
	b := sk.Bytes()
	return b[:], nil
}

// SkToPk derives the public key for a secret key: PK = SK * BP2, where BP2
// is the BLS12-381 G2 generator point.
func SkToPk(sk []byte) ([]byte, error) {
	skScalar, err := octetsToScalar(sk)
	if err != nil {
		return nil, err
	}
	_, _, _, g2Gen := bls12381.Generators()
	var skBig big.Int
	skScalar.BigInt(&skBig)
	var pk bls12381.G2Affine
	pk.ScalarMultiplication(&g2Gen, &skBig)
	b := pk.Bytes()
	return b[:], nil
}

// octetsToScalar decodes a 32-octet secret key into a nonzero scalar in
// [1, r).
func octetsToScalar(sk []byte) (fr.Element, error) {
	if len(sk) != skLength {
		return fr.Element{}, newError(InvalidEncoding, ErrLength)
	}
	var s fr.Element
	s.SetBytes(sk)
	if s.IsZero() {
		return fr.Element{}, newError(InvalidEncoding, ErrScalarRange)
	}
	b := s.Bytes()
	if !bytesEqual(b[:], sk) {
		return fr.Element{}, newError(InvalidEncoding, ErrScalarRange)
	}
	return s, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// octetsToPubKey decodes and validates a 96-octet public key: it must
// decode to a valid, non-identity point in the G2 subgroup.
func octetsToPubKey(pk []byte) (bls12381.G2Affine, error) {
	if len(pk) != pkLength {
		return bls12381.G2Affine{}, newError(InvalidEncoding, ErrLength)
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(pk); err != nil {
		return bls12381.G2Affine{}, newError(InvalidEncoding, err)
	}
	if p.IsInfinity() {
		return bls12381.G2Affine{}, newError(InvalidEncoding, ErrIdentity)
	}
	if !p.IsInSubGroup() {
		return bls12381.G2Affine{}, newError(InvalidEncoding, ErrNotInSubgroup)
	}
	return p, nil
}
