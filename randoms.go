package bbs

import (
	"crypto/rand"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// maxRejectionSamples bounds the rejection-sampling loops used to draw
// uniform nonzero scalars. A real failure to sample within this many draws
// would indicate a broken entropy source, not bad luck: the chance of
// exceeding it with a working RNG is astronomically small.
const maxRejectionSamples = 128

// calculateRandomScalars draws count independent, uniformly random nonzero
// elements of Fr using a CSPRNG, rejecting and redrawing any 32-octet
// sample that does not reduce to a value strictly less than the field
// modulus (so every output is uniform, not biased toward the low end of
// the encoding space).
func calculateRandomScalars(count int) ([]fr.Element, error) {
	out := make([]fr.Element, count)
	for i := 0; i < count; i++ {
		s, err := randomScalar()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func randomScalar() (fr.Element, error) {
	for attempt := 0; attempt < maxRejectionSamples; attempt++ {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return fr.Element{}, newError(CryptoFailure, err)
		}
		var s fr.Element
		s.SetBytes(buf)
		b := s.Bytes()
		if bytesEqual(b[:], buf) && !s.IsZero() {
			return s, nil
		}
	}
	return fr.Element{}, newError(CryptoFailure, ErrRejectionSamplingExhausted)
}
