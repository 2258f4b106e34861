package bbs

import (
	"crypto/sha256"
	"reflect"

	"golang.org/x/crypto/sha3"
)

// expandFn is the pseudorandom-expansion primitive a ciphersuite is built
// around: SHA-256/XMD for the sha256 suite, SHAKE-256/XOF for the shake256
// suite. Both take (message, DST, len_in_bytes) and return len_in_bytes
// uniform pseudorandom octets.
type expandFn func(msg, dst []byte, lenInBytes int) ([]byte, error)

// isXMD reports whether expand is the SHA-256/XMD expander, as opposed to
// the SHAKE-256/XOF one. hashToCurve uses this to pick between delegating
// to a tested RFC 9380 implementation (XMD) and a direct curve mapper
// (XOF); expandFn values are otherwise used interchangeably.
func isXMD(expand expandFn) bool {
	return reflect.ValueOf(expand).Pointer() == reflect.ValueOf(expandMessageXMD).Pointer()
}

const maxDSTLength = 255

// expandMessageXMD implements expand_message_xmd from the hash-to-curve
// draft (RFC 9380 section 5.4.1), specialized to SHA-256 (b_in_bytes = 32,
// s_in_bytes = 64).
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	const bInBytes = sha256.Size // 32
	const sInBytes = 64          // SHA-256 block size

	if len(dst) > maxDSTLength {
		return nil, newError(InvalidArgument, ErrDSTTooLong)
	}
	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 || lenInBytes > 65535 {
		return nil, newError(InvalidArgument, ErrLength)
	}

	dstLen, err := i2osp(uint64(len(dst)), 1)
	if err != nil {
		return nil, err
	}
	dstPrime := append(append([]byte{}, dst...), dstLen...)

	zPad := make([]byte, sInBytes)
	libStr, err := i2osp(uint64(lenInBytes), 2)
	if err != nil {
		return nil, err
	}

	msgPrime := make([]byte, 0, len(zPad)+len(msg)+len(libStr)+1+len(dstPrime))
	msgPrime = append(msgPrime, zPad...)
	msgPrime = append(msgPrime, msg...)
	msgPrime = append(msgPrime, libStr...)
	msgPrime = append(msgPrime, 0x00)
	msgPrime = append(msgPrime, dstPrime...)

	b0 := sha256.Sum256(msgPrime)

	b1in := make([]byte, 0, len(b0)+1+len(dstPrime))
	b1in = append(b1in, b0[:]...)
	b1in = append(b1in, 0x01)
	b1in = append(b1in, dstPrime...)
	bPrev := sha256.Sum256(b1in)

	uniformBytes := make([]byte, 0, ell*bInBytes)
	uniformBytes = append(uniformBytes, bPrev[:]...)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := range xored {
			xored[j] = b0[j] ^ bPrev[j]
		}
		in := make([]byte, 0, bInBytes+1+len(dstPrime))
		in = append(in, xored...)
		in = append(in, byte(i))
		in = append(in, dstPrime...)
		bPrev = sha256.Sum256(in)
		uniformBytes = append(uniformBytes, bPrev[:]...)
	}

	return uniformBytes[:lenInBytes], nil
}

// expandMessageXOF implements expand_message_xof (RFC 9380 section 5.4.2),
// specialized to SHAKE-256.
func expandMessageXOF(msg, dst []byte, lenInBytes int) ([]byte, error) {
	if len(dst) > maxDSTLength {
		return nil, newError(InvalidArgument, ErrDSTTooLong)
	}

	dstLen, err := i2osp(uint64(len(dst)), 1)
	if err != nil {
		return nil, err
	}
	dstPrime := append(append([]byte{}, dst...), dstLen...)

	libStr, err := i2osp(uint64(lenInBytes), 2)
	if err != nil {
		return nil, err
	}

	msgPrime := make([]byte, 0, len(msg)+len(libStr)+len(dstPrime))
	msgPrime = append(msgPrime, msg...)
	msgPrime = append(msgPrime, libStr...)
	msgPrime = append(msgPrime, dstPrime...)

	h := sha3.NewShake256()
	_, _ = h.Write(msgPrime)
	out := make([]byte, lenInBytes)
	_, _ = h.Read(out)
	return out, nil
}
