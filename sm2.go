// Package sm2 implements the SM2 public-key hybrid encryption scheme
// (GB/T 32918) over the sm2p256v1 curve, including key-pair generation and
// both the C1C3C2 and C1C2C3 ciphertext layouts.
package sm2

import (
	"hash"

	"github.com/athanorlabs/go-sm2/p256v1"
	"github.com/athanorlabs/go-sm2/types"
	"github.com/tjfoc/gmsm/sm3"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

// Mode selects the byte concatenation order of a ciphertext.
type Mode byte

const (
	// ModeC1C3C2 is the layout used by current implementations and the
	// default for encryption.
	ModeC1C3C2 Mode = iota
	// ModeC1C2C3 is the legacy layout, still accepted on decryption.
	ModeC1C2C3
)

func (m Mode) String() string {
	switch m {
	case ModeC1C3C2:
		return "C1C3C2"
	case ModeC1C2C3:
		return "C1C2C3"
	default:
		return "unknown"
	}
}

const (
	// coordinateSize is the field element width; an encoded point is the
	// 0x04 prefix followed by both coordinates.
	coordinateSize   = 32
	encodedPointSize = 1 + 2*coordinateSize
	digestSize       = 32

	// minCiphertextSize is C1 plus C3; C2 may be empty.
	minCiphertextSize = encodedPointSize + digestSize

	// maxEncryptAttempts bounds the internal retry loop around degenerate
	// ephemeral scalars and zero keystreams.
	maxEncryptAttempts = 10
)

// curve is the process-wide sm2p256v1 instance. It holds no mutable state.
var curve = p256v1.NewCurve()

// newHash produces the external 32-byte digest primitive (SM3) consumed by
// the KDF and the C3 tag.
var newHash func() hash.Hash = sm3.New

// tag computes C3 = H(x2 || plaintext || y2).
func tag(x2, plaintext, y2 []byte) []byte {
	h := newHash()
	h.Write(x2)
	h.Write(plaintext)
	h.Write(y2)
	return h.Sum(nil)
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
