package bbs

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const signatureLength = 48 + 32

// Sign computes a BBS signature over messages under the given secret key,
// its corresponding public key, and an optional header, per the BBS draft
// signature generation operation (section 3.4.1). The returned signature
// is 80 octets: a compressed G1 point A followed by a 32-octet scalar e.
func (cs *Ciphersuite) Sign(sk, pk []byte, header []byte, messages [][]byte) ([]byte, error) {
	skScalar, err := octetsToScalar(sk)
	if err != nil {
		return nil, err
	}
	pkPoint, err := octetsToPubKey(pk)
	if err != nil {
		return nil, err
	}

	generators, err := cs.ensureGenerators(len(messages) + 1)
	if err != nil {
		return nil, err
	}
	q1 := generators[0]
	hPoints := generators[1:]

	msgScalars, err := cs.messagesToScalars(messages)
	if err != nil {
		return nil, err
	}

	domain, err := cs.calculateDomain(pkPoint, q1, hPoints, header)
	if err != nil {
		return nil, err
	}

	eElements := make([]interface{}, 0, 2+len(msgScalars))
	eElements = append(eElements, skScalar, domain)
	for _, m := range msgScalars {
		eElements = append(eElements, m)
	}
	eInput, err := serialize(eElements...)
	if err != nil {
		return nil, err
	}
	e, err := cs.hashToScalar(eInput, cs.hashToScalarDST)
	if err != nil {
		return nil, err
	}

	b := cs.computeB(q1, domain, hPoints, msgScalars)

	var skPlusE fr.Element
	skPlusE.Add(&skScalar, &e)
	if skPlusE.IsZero() {
		return nil, newError(CryptoFailure, ErrScalarRange)
	}
	var inv fr.Element
	inv.Inverse(&skPlusE)

	var invBig big.Int
	inv.BigInt(&invBig)

	var bJac bls12381.G1Jac
	bJac.FromAffine(&b)
	bJac.ScalarMultiplication(&bJac, &invBig)

	var a bls12381.G1Affine
	a.FromJacobian(&bJac)

	return serialize(a, e)
}

// computeB computes B = P1 + Q1*domain + sum(H_i * msg_i), the commitment
// to the signed message vector that A is the BBS signature over.
func (cs *Ciphersuite) computeB(q1 bls12381.G1Affine, domain fr.Element, hPoints []bls12381.G1Affine, msgScalars []fr.Element) bls12381.G1Affine {
	var acc bls12381.G1Jac
	var p1Jac bls12381.G1Jac
	p1Jac.FromAffine(&cs.p1)
	acc.Set(&p1Jac)

	var domainBig big.Int
	domain.BigInt(&domainBig)
	var q1Jac bls12381.G1Jac
	q1Jac.FromAffine(&q1)
	q1Jac.ScalarMultiplication(&q1Jac, &domainBig)
	acc.AddAssign(&q1Jac)

	for i, h := range hPoints {
		var mBig big.Int
		msgScalars[i].BigInt(&mBig)
		var hJac bls12381.G1Jac
		hJac.FromAffine(&h)
		hJac.ScalarMultiplication(&hJac, &mBig)
		acc.AddAssign(&hJac)
	}

	var out bls12381.G1Affine
	out.FromJacobian(&acc)
	return out
}

// Verify checks a BBS signature over messages under pk and header, per the
// BBS draft's signature verification operation (section 3.4.2). A return
// of (false, nil) means the signature is well-formed but not authentic;
// a non-nil error means the inputs themselves were malformed.
func (cs *Ciphersuite) Verify(pk []byte, signature []byte, header []byte, messages [][]byte) (bool, error) {
	if len(signature) != signatureLength {
		return false, newError(InvalidEncoding, ErrLength)
	}
	pkPoint, err := octetsToPubKey(pk)
	if err != nil {
		return false, err
	}

	var a bls12381.G1Affine
	if _, err := a.SetBytes(signature[:48]); err != nil {
		return false, newError(InvalidEncoding, err)
	}
	if a.IsInfinity() || g1IsSentinel(a) {
		return false, newError(InvalidEncoding, ErrIdentity)
	}

	if !scalarInRange(signature[48:80]) {
		return false, newError(InvalidEncoding, ErrScalarRange)
	}
	var e fr.Element
	e.SetBytes(signature[48:80])

	generators, err := cs.ensureGenerators(len(messages) + 1)
	if err != nil {
		return false, err
	}
	q1 := generators[0]
	hPoints := generators[1:]

	msgScalars, err := cs.messagesToScalars(messages)
	if err != nil {
		return false, err
	}

	domain, err := cs.calculateDomain(pkPoint, q1, hPoints, header)
	if err != nil {
		return false, err
	}

	b := cs.computeB(q1, domain, hPoints, msgScalars)

	_, _, _, g2Gen := bls12381.Generators()

	var eBig big.Int
	e.BigInt(&eBig)
	var g2Jac, eG2Jac bls12381.G2Jac
	g2Jac.FromAffine(&g2Gen)
	eG2Jac.ScalarMultiplication(&g2Jac, &eBig)

	var pkJac, rhsJac bls12381.G2Jac
	pkJac.FromAffine(&pkPoint)
	rhsJac.Set(&pkJac)
	rhsJac.AddAssign(&eG2Jac)

	var rhs bls12381.G2Affine
	rhs.FromJacobian(&rhsJac)

	var negG2 bls12381.G2Affine
	negG2.Neg(&g2Gen)

	ok, err := bls12381.PairingCheck([]bls12381.G1Affine{a, b}, []bls12381.G2Affine{rhs, negG2})
	if err != nil {
		return false, newError(CryptoFailure, err)
	}
	return ok, nil
}
