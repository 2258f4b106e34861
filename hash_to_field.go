package bbs

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// fieldElementLength is L from RFC 9380 section 5.3: ceil((ceil(log2(p))+k)/8)
// for BLS12-381's 381-bit base field and k=128-bit security, i.e. 64 bytes.
const fieldElementLength = 64

// hashToFieldM1C2 implements hash_to_field specialized to m=1 (Fp, not an
// extension field) and count=2, producing the two independent field-element
// inputs that hashToCurve's direct curve mapper uses for the XOF suite.
func hashToFieldM1C2(expand expandFn, msg, dst []byte) (fp.Element, fp.Element, error) {
	lenInBytes := 2 * fieldElementLength
	uniformBytes, err := expand(msg, dst, lenInBytes)
	if err != nil {
		return fp.Element{}, fp.Element{}, err
	}

	var u0, u1 fp.Element
	u0.SetBytes(uniformBytes[0:fieldElementLength])
	u1.SetBytes(uniformBytes[fieldElementLength : 2*fieldElementLength])
	return u0, u1, nil
}
