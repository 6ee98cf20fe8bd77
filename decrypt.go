package sm2

import "crypto/subtle"

// Decrypt recovers the plaintext from a ciphertext in either layout. The
// C1C3C2 layout is attempted first, then C1C2C3; the first attempt whose
// recomputed MAC matches wins. When both attempts fail the unified
// ErrDecryptionFailed is returned without saying which check failed.
func Decrypt(ciphertext []byte, privateKey Scalar) ([]byte, error) {
	if len(ciphertext) < minCiphertextSize {
		return nil, ErrInvalidCiphertextLength
	}

	for _, mode := range [...]Mode{ModeC1C3C2, ModeC1C2C3} {
		if plaintext, ok := tryDecrypt(ciphertext, privateKey, mode); ok {
			return plaintext, nil
		}
	}

	return nil, ErrDecryptionFailed
}

// tryDecrypt runs a single layout attempt. Any failure (C1 off-curve,
// shared point at infinity, degenerate keystream, MAC mismatch) is reported
// uniformly as !ok.
func tryDecrypt(ciphertext []byte, privateKey Scalar, mode Mode) ([]byte, bool) {
	var c2, c3 []byte
	switch mode {
	case ModeC1C2C3:
		c2 = ciphertext[encodedPointSize : len(ciphertext)-digestSize]
		c3 = ciphertext[len(ciphertext)-digestSize:]
	default:
		c3 = ciphertext[encodedPointSize : encodedPointSize+digestSize]
		c2 = ciphertext[encodedPointSize+digestSize:]
	}

	c1, err := curve.DecodeToPoint(ciphertext[:encodedPointSize])
	if err != nil {
		return nil, false
	}

	// d*(k*G) = k*(d*G) = k*Q, the encryptor's shared point.
	s := curve.ScalarMul(privateKey, c1)
	if s.IsZero() {
		return nil, false
	}

	z := s.Encode()[1:]
	t := kdf(z, len(c2))
	if allZero(t) {
		return nil, false
	}

	plaintext := make([]byte, len(c2))
	xorBytes(plaintext, c2, t)

	expected := tag(z[:coordinateSize], plaintext, z[coordinateSize:])
	if subtle.ConstantTimeCompare(expected, c3) != 1 {
		return nil, false
	}

	return plaintext, true
}
