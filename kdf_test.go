package sm2

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKDF_MatchesDigestConcatenation(t *testing.T) {
	z := []byte("shared point coordinates")

	// H(z || 1) || H(z || 2) || ... truncated to the requested length. Each
	// block is hashed with a fresh state so no prior digest leaks into it.
	var expected []byte
	for ct := uint32(1); ct <= 3; ct++ {
		h := newHash()
		h.Write(z)
		var counter [4]byte
		binary.BigEndian.PutUint32(counter[:], ct)
		h.Write(counter[:])
		expected = append(expected, h.Sum(nil)...)
	}

	for _, outLen := range []int{1, 31, 32, 33, 64, 80, 96} {
		require.True(t, bytes.Equal(expected[:outLen], kdf(z, outLen)), "outLen=%d", outLen)
	}
}

func TestKDF_SecondBlockIndependentOfFirst(t *testing.T) {
	z := []byte("shared")

	// The second keystream block must be exactly H(z || 0x00000002),
	// independent of the first block's digest.
	h := newHash()
	h.Write(z)
	h.Write([]byte{0x00, 0x00, 0x00, 0x02})
	block2 := h.Sum(nil)

	require.Equal(t, block2, kdf(z, 64)[32:])
}

func TestKDF_Length(t *testing.T) {
	z := []byte{0x01, 0x02, 0x03}
	for _, outLen := range []int{0, 1, 32, 33, 100, 1024} {
		require.Equal(t, outLen, len(kdf(z, outLen)))
	}
}

func TestKDF_DistinctInputs(t *testing.T) {
	a := kdf([]byte("input a"), 64)
	b := kdf([]byte("input b"), 64)
	require.False(t, bytes.Equal(a, b))
}

func TestAllZero(t *testing.T) {
	require.False(t, allZero(nil))
	require.False(t, allZero([]byte{}))
	require.False(t, allZero([]byte{0x00, 0x01}))
	require.True(t, allZero([]byte{0x00}))
	require.True(t, allZero(make([]byte, 1024)))
}

func TestHash_SM3KnownVector(t *testing.T) {
	// GB/T 32918 appendix vector: SM3("abc").
	h := newHash()
	h.Write([]byte("abc"))
	sum := h.Sum(nil)

	require.Equal(t, digestSize, len(sum))
	require.Equal(t,
		"66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0",
		hex.EncodeToString(sum),
	)
}
