package sm2

import "encoding/binary"

// kdf stretches the shared point coordinates z = x2 || y2 into outLen bytes
// of keystream: successive digests H(z || counter) with a 32-bit big-endian
// counter starting at 1, truncated to outLen.
//
// Callers must reject an all-zero keystream (see allZero); XOR with it would
// leave the plaintext in the clear.
func kdf(z []byte, outLen int) []byte {
	out := make([]byte, 0, (outLen+digestSize-1)/digestSize*digestSize)

	h := newHash()
	var counter [4]byte
	for ct := uint32(1); len(out) < outLen; ct++ {
		h.Reset()
		h.Write(z)
		binary.BigEndian.PutUint32(counter[:], ct)
		h.Write(counter[:])
		// Sum(nil) only: the sm3 implementation writes Sum's argument into
		// the hash state instead of appending the digest to it.
		out = append(out, h.Sum(nil)...)
	}

	return out[:outLen]
}

// allZero reports whether t is a degenerate keystream. An empty keystream
// (zero-length plaintext) is not degenerate.
func allZero(t []byte) bool {
	if len(t) == 0 {
		return false
	}

	var acc byte
	for _, b := range t {
		acc |= b
	}
	return acc == 0
}
