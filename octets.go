package bbs

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// i2osp returns the big-endian n-octet encoding of x. It fails if x does not
// fit in n octets (x >= 256^n).
func i2osp(x uint64, n int) ([]byte, error) {
	out := make([]byte, n)
	v := x
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v & 0xff)
		v >>= 8
	}
	if v != 0 {
		return nil, newError(InvalidArgument, ErrLength)
	}
	return out, nil
}

// os2ip is the inverse of i2osp: the big-endian integer value of o.
func os2ip(o []byte) *big.Int {
	return new(big.Int).SetBytes(o)
}

// serialize concatenates the wire encoding of each element. Supported types
// are bls12381.G1Affine (48 bytes), bls12381.G2Affine (96 bytes), fr.Element
// (32 bytes big-endian), and uint64 (8 bytes big-endian). Callers pass
// fixed-shape tuples per call site; an unsupported type is a programmer
// error and panics rather than silently mis-encoding the wire format.
func serialize(elements ...interface{}) ([]byte, error) {
	out := make([]byte, 0, 64*len(elements))
	for _, el := range elements {
		switch v := el.(type) {
		case bls12381.G1Affine:
			b := v.Bytes()
			out = append(out, b[:]...)
		case *bls12381.G1Affine:
			b := v.Bytes()
			out = append(out, b[:]...)
		case bls12381.G2Affine:
			b := v.Bytes()
			out = append(out, b[:]...)
		case *bls12381.G2Affine:
			b := v.Bytes()
			out = append(out, b[:]...)
		case fr.Element:
			b := v.Bytes()
			out = append(out, b[:]...)
		case *fr.Element:
			b := v.Bytes()
			out = append(out, b[:]...)
		case uint64:
			enc, err := i2osp(v, 8)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		case int:
			enc, err := i2osp(uint64(v), 8)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		default:
			panic("bbs: serialize called with unsupported element type")
		}
	}
	return out, nil
}
