package sm2

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptHexDecryptHex_RoundTrip(t *testing.T) {
	priv, pub, err := GenerateKeyPairHex()
	require.NoError(t, err)

	plaintext := []byte("hex surface round trip")
	ciphertextHex, err := EncryptHex(plaintext, pub, ModeC1C3C2)
	require.NoError(t, err)

	require.Equal(t, strings.ToLower(ciphertextHex), ciphertextHex)
	require.GreaterOrEqual(t, len(ciphertextHex), 2*minCiphertextSize)

	decrypted, err := DecryptHex(ciphertextHex, priv)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestDecryptHex_InvalidInputs(t *testing.T) {
	priv, pub, err := GenerateKeyPairHex()
	require.NoError(t, err)

	ciphertextHex, err := EncryptHex([]byte("x"), pub, ModeC1C3C2)
	require.NoError(t, err)

	_, err = DecryptHex("not hex at all", priv)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = DecryptHex(ciphertextHex, "deadbeef")
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestCipherASN1_RoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	plaintext := []byte("asn1 interchange")
	ciphertext, err := Encrypt(plaintext, kp.Q, ModeC1C3C2)
	require.NoError(t, err)

	der, err := MarshalCipherASN1(ciphertext)
	require.NoError(t, err)

	restored, err := UnmarshalCipherASN1(der)
	require.NoError(t, err)
	require.True(t, bytes.Equal(ciphertext, restored))

	decrypted, err := Decrypt(restored, kp.D)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestCipherASN1_EmptyPlaintext(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	ciphertext, err := Encrypt(nil, kp.Q, ModeC1C3C2)
	require.NoError(t, err)

	der, err := MarshalCipherASN1(ciphertext)
	require.NoError(t, err)

	restored, err := UnmarshalCipherASN1(der)
	require.NoError(t, err)
	require.True(t, bytes.Equal(ciphertext, restored))
}

func TestMarshalCipherASN1_Invalid(t *testing.T) {
	_, err := MarshalCipherASN1(make([]byte, minCiphertextSize-1))
	require.ErrorIs(t, err, ErrInvalidCiphertextLength)

	bad := make([]byte, minCiphertextSize)
	bad[0] = 0x02
	_, err = MarshalCipherASN1(bad)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestUnmarshalCipherASN1_Invalid(t *testing.T) {
	_, err := UnmarshalCipherASN1([]byte("garbage"))
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = UnmarshalCipherASN1(nil)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}
