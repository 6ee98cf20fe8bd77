package sm2

import (
	"errors"

	"github.com/athanorlabs/go-sm2/p256v1"
)

// Sentinel errors for errors.Is checks. The curve-level decode errors are
// re-exported so callers only ever import this package.
var (
	// ErrInvalidEncoding is returned for malformed hex, lengths, or point
	// prefixes in keys, points, and ciphertexts.
	ErrInvalidEncoding = p256v1.ErrInvalidEncoding

	// ErrPointNotOnCurve is returned when a decoded point fails the curve
	// equation.
	ErrPointNotOnCurve = p256v1.ErrPointNotOnCurve

	// ErrInvalidScalar is returned when a private key is outside [1, n-1].
	ErrInvalidScalar = p256v1.ErrInvalidScalar

	// ErrRngUnavailable is returned when the secure random source cannot
	// be read.
	ErrRngUnavailable = p256v1.ErrRngUnavailable

	// ErrInvalidKey is returned when a public key fails validation before
	// encryption.
	ErrInvalidKey = errors.New("sm2: invalid public key")

	// ErrInvalidCiphertextLength is returned when a ciphertext is shorter
	// than the 97-byte minimum (C1 plus C3).
	ErrInvalidCiphertextLength = errors.New("sm2: ciphertext too short")

	// ErrDecryptionFailed is returned when both ciphertext layouts have
	// been attempted without a MAC match. It deliberately does not say
	// which step failed.
	ErrDecryptionFailed = errors.New("sm2: decryption failed")

	// ErrOperationFailed is returned when encryption exhausts its bounded
	// internal retry budget.
	ErrOperationFailed = errors.New("sm2: encryption failed after retries")
)
