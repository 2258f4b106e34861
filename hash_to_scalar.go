package bbs

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// scalarHashLength is the 48-byte uniform output length hash_to_scalar
// expands to before reducing modulo r.
const scalarHashLength = 48

// hashToScalar expands msg under dst to 48 uniform octets and reduces modulo
// the G1 subgroup order r, yielding an element of Fr. The BBS draft requires
// the result to be nonzero; every caller that needs that guarantee checks it
// explicitly rather than relying on this function to retry.
func (cs *Ciphersuite) hashToScalar(msg, dst []byte) (fr.Element, error) {
	uniformBytes, err := cs.expand(msg, dst, scalarHashLength)
	if err != nil {
		return fr.Element{}, err
	}
	var s fr.Element
	s.SetBytes(uniformBytes)
	return s, nil
}
