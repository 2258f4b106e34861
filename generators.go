package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ensureGenerators returns the first n message generators, extending the
// ciphersuite's cache under its mutex if it does not yet hold enough. The
// cache never shrinks or invalidates existing entries: generators[i] is the
// same point on every call for the life of the Ciphersuite, so callers may
// freely cache indexes returned by a previous call.
func (cs *Ciphersuite) ensureGenerators(n int) ([]bls12381.G1Affine, error) {
	if n < 0 {
		return nil, newError(InvalidArgument, ErrGeneratorCount)
	}

	c := cs.cache
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.generators) >= n {
		return c.generators[:n], nil
	}

	start := len(c.generators) + 1 // the recurrence is 1-indexed
	cs.log.Debug().
		Int("have", len(c.generators)).
		Int("want", n).
		Msg("extending generator cache")

	for i := start; i <= n; i++ {
		countBytes, err := i2osp(uint64(i), 8)
		if err != nil {
			return nil, err
		}
		v, err := cs.expand(append(append([]byte{}, c.seedState...), countBytes...), cs.seedDST, 48)
		if err != nil {
			return nil, err
		}
		c.seedState = v

		g, err := hashToCurve(cs.expand, c.seedState, cs.generatorDST)
		if err != nil {
			return nil, err
		}
		c.generators = append(c.generators, g)
	}

	return c.generators[:n], nil
}
