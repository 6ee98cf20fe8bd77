package sm2

import (
	"encoding/hex"
	"fmt"
)

const (
	privateKeyHexLen = 2 * digestSize       // 64 characters
	publicKeyHexLen  = 2 * encodedPointSize // 130 characters
)

// KeyPair holds a private scalar d and its public point Q = d*G.
type KeyPair struct {
	D Scalar
	Q Point
}

// GenerateKeyPair samples a fresh key pair from the secure random source.
func GenerateKeyPair() (*KeyPair, error) {
	d, err := curve.NewRandomScalar()
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		D: d,
		Q: curve.ScalarBaseMul(d),
	}, nil
}

// PrivateHex returns the private scalar as 64 lowercase hex characters,
// big-endian, left-zero-padded.
func (kp *KeyPair) PrivateHex() string {
	return hex.EncodeToString(kp.D.Encode())
}

// PublicHex returns the public point as 130 lowercase hex characters,
// always beginning with "04".
func (kp *KeyPair) PublicHex() string {
	return hex.EncodeToString(kp.Q.Encode())
}

// GenerateKeyPairHex generates a key pair and returns its external hex
// representation.
func GenerateKeyPairHex() (privateKeyHex, publicKeyHex string, err error) {
	kp, err := GenerateKeyPair()
	if err != nil {
		return "", "", err
	}
	return kp.PrivateHex(), kp.PublicHex(), nil
}

// DecodePublicKeyHex parses a 130-character uncompressed public key and
// validates it is on the curve.
func DecodePublicKeyHex(s string) (Point, error) {
	if len(s) != publicKeyHexLen {
		return nil, fmt.Errorf("%w: public key must be %d hex characters", ErrInvalidEncoding, publicKeyHexLen)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	return curve.DecodeToPoint(b)
}

// DecodePrivateKeyHex parses a 64-character private scalar and validates it
// is in [1, n-1].
func DecodePrivateKeyHex(s string) (Scalar, error) {
	if len(s) != privateKeyHexLen {
		return nil, fmt.Errorf("%w: private key must be %d hex characters", ErrInvalidEncoding, privateKeyHexLen)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	return curve.DecodeToScalar(b)
}
