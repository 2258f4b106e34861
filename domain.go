package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// calculateDomain computes the domain scalar shared by sign, verify,
// proof_gen and proof_verify (draft section 4.1), binding the signer's
// public key, the message generators in use, the ciphersuite's API id and
// an application-supplied header into a single scalar.
func (cs *Ciphersuite) calculateDomain(pk bls12381.G2Affine, q1 bls12381.G1Affine, generators []bls12381.G1Affine, header []byte) (fr.Element, error) {
	elements := make([]interface{}, 0, 2+len(generators)+1)
	elements = append(elements, len(generators))
	elements = append(elements, q1)
	for _, h := range generators {
		elements = append(elements, h)
	}

	domOcts, err := serialize(elements...)
	if err != nil {
		return fr.Element{}, err
	}
	domOcts = append(domOcts, cs.apiID...)

	pkBytes := pk.Bytes()
	domInput := append(append([]byte{}, domOcts...), pkBytes[:]...)

	headerLen, err := i2osp(uint64(len(header)), 8)
	if err != nil {
		return fr.Element{}, err
	}
	domInput = append(domInput, headerLen...)
	domInput = append(domInput, header...)

	return cs.hashToScalar(domInput, cs.hashToScalarDST)
}
