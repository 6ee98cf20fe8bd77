package sm2

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// EncryptHex encrypts plaintext to a hex-encoded public key and returns the
// ciphertext as lowercase hex with no separators.
func EncryptHex(plaintext []byte, publicKeyHex string, mode Mode) (string, error) {
	pub, err := DecodePublicKeyHex(publicKeyHex)
	if err != nil {
		return "", err
	}

	ciphertext, err := Encrypt(plaintext, pub, mode)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(ciphertext), nil
}

// DecryptHex decrypts a hex-encoded ciphertext with a hex-encoded private
// key, accepting either ciphertext layout.
func DecryptHex(ciphertextHex, privateKeyHex string) ([]byte, error) {
	priv, err := DecodePrivateKeyHex(privateKeyHex)
	if err != nil {
		return nil, err
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	return Decrypt(ciphertext, priv)
}

// MarshalCipherASN1 converts a C1C3C2 ciphertext into the DER interchange
// form SEQUENCE { x INTEGER, y INTEGER, hash OCTET STRING,
// cipherText OCTET STRING }.
func MarshalCipherASN1(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < minCiphertextSize {
		return nil, ErrInvalidCiphertextLength
	}
	if ciphertext[0] != 0x04 {
		return nil, ErrInvalidEncoding
	}

	x := new(big.Int).SetBytes(ciphertext[1 : 1+coordinateSize])
	y := new(big.Int).SetBytes(ciphertext[1+coordinateSize : encodedPointSize])
	c3 := ciphertext[encodedPointSize:minCiphertextSize]
	c2 := ciphertext[minCiphertextSize:]

	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(x)
		b.AddASN1BigInt(y)
		b.AddASN1OctetString(c3)
		b.AddASN1OctetString(c2)
	})
	return b.Bytes()
}

// UnmarshalCipherASN1 converts the DER interchange form back into a C1C3C2
// ciphertext. The embedded point is validated against the curve.
func UnmarshalCipherASN1(der []byte) ([]byte, error) {
	var (
		inner  cryptobyte.String
		x, y   = new(big.Int), new(big.Int)
		c3, c2 []byte
	)

	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, cryptobyte_asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(x) ||
		!inner.ReadASN1Integer(y) ||
		!inner.ReadASN1Bytes(&c3, cryptobyte_asn1.OCTET_STRING) ||
		!inner.ReadASN1Bytes(&c2, cryptobyte_asn1.OCTET_STRING) ||
		!inner.Empty() {
		return nil, ErrInvalidEncoding
	}

	if x.Sign() < 0 || y.Sign() < 0 || x.BitLen() > 8*coordinateSize || y.BitLen() > 8*coordinateSize {
		return nil, ErrInvalidEncoding
	}
	if len(c3) != digestSize {
		return nil, ErrInvalidEncoding
	}

	out := make([]byte, encodedPointSize, minCiphertextSize+len(c2))
	out[0] = 0x04
	x.FillBytes(out[1 : 1+coordinateSize])
	y.FillBytes(out[1+coordinateSize:])

	if _, err := curve.DecodeToPoint(out); err != nil {
		return nil, err
	}

	out = append(out, c3...)
	out = append(out, c2...)
	return out, nil
}
