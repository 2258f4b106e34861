package bbs

import (
	"math/big"
	"sort"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const proofFloorLength = 3*48 + 4*32

// ProofGen derives a zero-knowledge proof of knowledge of a BBS signature
// over messages, selectively disclosing only the messages at
// disclosedIndexes (1-based, sorted, unique, within [1, len(messages)]),
// per the BBS draft's core proof generation operation (section 3.5.1).
func (cs *Ciphersuite) ProofGen(pk []byte, signature []byte, header, ph []byte, messages [][]byte, disclosedIndexes []int) ([]byte, error) {
	if len(signature) != signatureLength {
		return nil, newError(InvalidEncoding, ErrLength)
	}
	pkPoint, err := octetsToPubKey(pk)
	if err != nil {
		return nil, err
	}

	var a bls12381.G1Affine
	if _, err := a.SetBytes(signature[:48]); err != nil {
		return nil, newError(InvalidEncoding, err)
	}
	if a.IsInfinity() || g1IsSentinel(a) {
		return nil, newError(InvalidEncoding, ErrIdentity)
	}
	if !scalarInRange(signature[48:80]) {
		return nil, newError(InvalidEncoding, ErrScalarRange)
	}
	var e fr.Element
	e.SetBytes(signature[48:80])

	l := len(messages)
	disclosedSet := make(map[int]bool, len(disclosedIndexes))
	for _, idx := range disclosedIndexes {
		if idx < 1 || idx > l {
			return nil, newError(InvalidArgument, ErrMessageCount)
		}
		disclosedSet[idx] = true
	}
	sortedDisclosed := append([]int{}, disclosedIndexes...)
	sort.Ints(sortedDisclosed)

	var undisclosedIndexes []int
	for i := 1; i <= l; i++ {
		if !disclosedSet[i] {
			undisclosedIndexes = append(undisclosedIndexes, i)
		}
	}
	u := len(undisclosedIndexes)

	generators, err := cs.ensureGenerators(l + 1)
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

	randScalars, err := calculateRandomScalars(5 + u)
	if err != nil {
		return nil, err
	}
	r1, r2, eTilde, r1Tilde, r3Tilde := randScalars[0], randScalars[1], randScalars[2], randScalars[3], randScalars[4]
	mTilde := randScalars[5:]

	b := cs.computeB(q1, domain, hPoints, msgScalars)

	d := pointMulG1(b, r2)

	var r1r2 fr.Element
	r1r2.Mul(&r1, &r2)
	abar := pointMulG1(a, r1r2)

	dr1 := pointMulG1(d, r1)
	abarE := pointMulG1(abar, e)
	bbar := pointSubG1(dr1, abarE)

	t1 := pointAddG1(pointMulG1(abar, eTilde), pointMulG1(d, r1Tilde))

	var r3 fr.Element
	r3.Inverse(&r2)

	t2 := pointMulG1(d, r3Tilde)
	for k, j := range undisclosedIndexes {
		t2 = pointAddG1(t2, pointMulG1(hPoints[j-1], mTilde[k]))
	}

	c, err := cs.proofChallenge(abar, bbar, d, t1, t2, domain, sortedDisclosed, msgScalars, ph)
	if err != nil {
		return nil, err
	}

	var eHat, r1Hat, r3Hat fr.Element
	var ec, r1c, r3c fr.Element
	ec.Mul(&e, &c)
	eHat.Add(&eTilde, &ec)
	r1c.Mul(&r1, &c)
	r1Hat.Sub(&r1Tilde, &r1c)
	r3c.Mul(&r3, &c)
	r3Hat.Sub(&r3Tilde, &r3c)

	mHat := make([]fr.Element, u)
	for k, j := range undisclosedIndexes {
		var mc fr.Element
		mc.Mul(&msgScalars[j-1], &c)
		mHat[k].Add(&mTilde[k], &mc)
	}

	elements := make([]interface{}, 0, 6+u)
	elements = append(elements, abar, bbar, d, eHat, r1Hat, r3Hat)
	for _, m := range mHat {
		elements = append(elements, m)
	}
	elements = append(elements, c)

	return serialize(elements...)
}

// proofChallenge computes the Fiat-Shamir challenge scalar binding the
// proof's commitments, the domain, the disclosed messages and indices, and
// the presentation header (draft section 3.5.1 step 11 / 3.5.2 step 7).
func (cs *Ciphersuite) proofChallenge(abar, bbar, d, t1, t2 bls12381.G1Affine, domain fr.Element, sortedDisclosed []int, msgScalars []fr.Element, ph []byte) (fr.Element, error) {
	r := len(sortedDisclosed)
	elements := make([]interface{}, 0, 6+2*r+2)
	elements = append(elements, abar, bbar, d, t1, t2, r)
	for _, idx := range sortedDisclosed {
		elements = append(elements, idx-1)
	}
	for _, idx := range sortedDisclosed {
		elements = append(elements, msgScalars[idx-1])
	}
	elements = append(elements, domain)

	cOcts, err := serialize(elements...)
	if err != nil {
		return fr.Element{}, err
	}
	phLen, err := i2osp(uint64(len(ph)), 8)
	if err != nil {
		return fr.Element{}, err
	}
	cOcts = append(cOcts, phLen...)
	cOcts = append(cOcts, ph...)

	return cs.hashToScalar(cOcts, cs.hashToScalarDST)
}

// ProofVerify checks a zero-knowledge proof of a BBS signature over a
// disclosed subset of messages, per the BBS draft's core proof verification
// operation (section 3.5.2). disclosedIndexes must be sorted and unique,
// with disclosedMessages[i] corresponding to disclosedIndexes[i].
func (cs *Ciphersuite) ProofVerify(pk []byte, proof []byte, header, ph []byte, disclosedMessages [][]byte, disclosedIndexes []int) (bool, error) {
	if len(proof) < proofFloorLength || (len(proof)-proofFloorLength)%32 != 0 {
		return false, newError(InvalidEncoding, ErrLength)
	}
	u := (len(proof) - proofFloorLength) / 32

	pkPoint, err := octetsToPubKey(pk)
	if err != nil {
		return false, err
	}

	off := 0
	readPoint := func() (bls12381.G1Affine, error) {
		var p bls12381.G1Affine
		if _, err := p.SetBytes(proof[off : off+48]); err != nil {
			return bls12381.G1Affine{}, newError(InvalidEncoding, err)
		}
		off += 48
		if p.IsInfinity() {
			return bls12381.G1Affine{}, newError(InvalidEncoding, ErrIdentity)
		}
		return p, nil
	}
	readScalar := func() (fr.Element, error) {
		var s fr.Element
		s.SetBytes(proof[off : off+32])
		b := s.Bytes()
		if !bytesEqual(b[:], proof[off:off+32]) || s.IsZero() {
			return fr.Element{}, newError(InvalidEncoding, ErrScalarRange)
		}
		off += 32
		return s, nil
	}

	abar, err := readPoint()
	if err != nil {
		return false, err
	}
	bbar, err := readPoint()
	if err != nil {
		return false, err
	}
	d, err := readPoint()
	if err != nil {
		return false, err
	}
	eHat, err := readScalar()
	if err != nil {
		return false, err
	}
	r1Hat, err := readScalar()
	if err != nil {
		return false, err
	}
	r3Hat, err := readScalar()
	if err != nil {
		return false, err
	}
	mHat := make([]fr.Element, u)
	for i := 0; i < u; i++ {
		mHat[i], err = readScalar()
		if err != nil {
			return false, err
		}
	}
	cPrime, err := readScalar()
	if err != nil {
		return false, err
	}

	r := len(disclosedMessages)
	if len(disclosedIndexes) != r {
		return false, newError(InvalidArgument, ErrMessageCount)
	}
	l := r + u
	disclosedSet := make(map[int]bool, r)
	for _, idx := range disclosedIndexes {
		if idx < 1 || idx > l {
			return false, newError(InvalidArgument, ErrMessageCount)
		}
		disclosedSet[idx] = true
	}
	sortedDisclosed := append([]int{}, disclosedIndexes...)
	sort.Ints(sortedDisclosed)

	var undisclosedIndexes []int
	for i := 1; i <= l; i++ {
		if !disclosedSet[i] {
			undisclosedIndexes = append(undisclosedIndexes, i)
		}
	}

	generators, err := cs.ensureGenerators(l + 1)
	if err != nil {
		return false, err
	}
	q1 := generators[0]
	hPoints := generators[1:]

	disclosedScalars, err := cs.messagesToScalars(disclosedMessages)
	if err != nil {
		return false, err
	}

	domain, err := cs.calculateDomain(pkPoint, q1, hPoints, header)
	if err != nil {
		return false, err
	}

	t1 := pointAddG1(pointMulG1(bbar, cPrime), pointMulG1(abar, eHat))
	t1 = pointAddG1(t1, pointMulG1(d, r1Hat))

	bv := cs.p1
	var bvJac bls12381.G1Jac
	bvJac.FromAffine(&bv)
	var domainBig big.Int
	domain.BigInt(&domainBig)
	var q1Jac bls12381.G1Jac
	q1Jac.FromAffine(&q1)
	q1Jac.ScalarMultiplication(&q1Jac, &domainBig)
	bvJac.AddAssign(&q1Jac)
	for k, idx := range sortedDisclosed {
		var mBig big.Int
		disclosedScalars[k].BigInt(&mBig)
		var hJac bls12381.G1Jac
		hJac.FromAffine(&hPoints[idx-1])
		hJac.ScalarMultiplication(&hJac, &mBig)
		bvJac.AddAssign(&hJac)
	}
	var bvAffine bls12381.G1Affine
	bvAffine.FromJacobian(&bvJac)

	t2 := pointAddG1(pointMulG1(bvAffine, cPrime), pointMulG1(d, r3Hat))
	for k, j := range undisclosedIndexes {
		t2 = pointAddG1(t2, pointMulG1(hPoints[j-1], mHat[k]))
	}

	c, err := cs.proofChallenge(abar, bbar, d, t1, t2, domain, sortedDisclosed, disclosedScalarsByIndex(sortedDisclosed, disclosedScalars), ph)
	if err != nil {
		return false, err
	}

	if !c.Equal(&cPrime) {
		return false, nil
	}

	_, _, _, g2Gen := bls12381.Generators()
	ok, err := bls12381.PairingCheck([]bls12381.G1Affine{abar, bbar}, []bls12381.G2Affine{pkPoint, negG2(g2Gen)})
	if err != nil {
		return false, newError(CryptoFailure, err)
	}
	return ok, nil
}

// disclosedScalarsByIndex builds a dense, 1-based-index-addressable slice
// so proofChallenge can address disclosed message scalars the same way on
// both the generation and verification paths, where verification only ever
// has the disclosed subset (not the full message vector) in hand.
func disclosedScalarsByIndex(sortedDisclosed []int, scalars []fr.Element) []fr.Element {
	maxIdx := 0
	for _, idx := range sortedDisclosed {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	dense := make([]fr.Element, maxIdx)
	for k, idx := range sortedDisclosed {
		dense[idx-1] = scalars[k]
	}
	return dense
}

func negG2(g2 bls12381.G2Affine) bls12381.G2Affine {
	var neg bls12381.G2Affine
	neg.Neg(&g2)
	return neg
}

func pointMulG1(p bls12381.G1Affine, scalar fr.Element) bls12381.G1Affine {
	var sBig big.Int
	scalar.BigInt(&sBig)
	var jac bls12381.G1Jac
	jac.FromAffine(&p)
	jac.ScalarMultiplication(&jac, &sBig)
	var out bls12381.G1Affine
	out.FromJacobian(&jac)
	return out
}

func pointAddG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aJac, bJac bls12381.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	var out bls12381.G1Affine
	out.FromJacobian(&aJac)
	return out
}

func pointSubG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var bNeg bls12381.G1Affine
	bNeg.Neg(&b)
	return pointAddG1(a, bNeg)
}
