package bbs

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// messageToScalar maps a single message octet string to a scalar via
// hash_to_scalar under the ciphersuite's map_message_to_scalar_as_hash DST
// (draft section 4.2).
func (cs *Ciphersuite) messageToScalar(message []byte) (fr.Element, error) {
	return cs.hashToScalar(message, cs.mapMessageDST)
}

// messagesToScalars maps each message in messages to a scalar, preserving
// order.
func (cs *Ciphersuite) messagesToScalars(messages [][]byte) ([]fr.Element, error) {
	scalars := make([]fr.Element, len(messages))
	for i, m := range messages {
		s, err := cs.messageToScalar(m)
		if err != nil {
			return nil, err
		}
		scalars[i] = s
	}
	return scalars, nil
}
