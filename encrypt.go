package sm2

// Encrypt encrypts plaintext to the given public key and assembles the
// ciphertext in the given layout. A zero-length plaintext is valid and
// yields an empty C2 with a MAC over the empty message.
//
// Degenerate ephemeral draws (a shared point at infinity, an all-zero
// keystream) are retried with a fresh scalar up to a small bound; exhausting
// the bound returns ErrOperationFailed. An unreadable random source is
// reported immediately as ErrRngUnavailable and never retried.
func Encrypt(plaintext []byte, publicKey Point, mode Mode) ([]byte, error) {
	if publicKey == nil || curve.ValidatePoint(publicKey) != nil {
		return nil, ErrInvalidKey
	}

	for attempt := 0; attempt < maxEncryptAttempts; attempt++ {
		k, err := curve.NewRandomScalar()
		if err != nil {
			return nil, err
		}

		c1 := curve.ScalarBaseMul(k).Encode()

		s := curve.ScalarMul(k, publicKey)
		if s.IsZero() {
			continue
		}

		// z = x2 || y2
		z := s.Encode()[1:]
		t := kdf(z, len(plaintext))
		if allZero(t) {
			continue
		}

		c2 := make([]byte, len(plaintext))
		xorBytes(c2, plaintext, t)
		c3 := tag(z[:coordinateSize], plaintext, z[coordinateSize:])

		out := make([]byte, 0, len(c1)+len(c2)+len(c3))
		out = append(out, c1...)
		switch mode {
		case ModeC1C2C3:
			out = append(out, c2...)
			out = append(out, c3...)
		default:
			out = append(out, c3...)
			out = append(out, c2...)
		}

		return out, nil
	}

	return nil, ErrOperationFailed
}
