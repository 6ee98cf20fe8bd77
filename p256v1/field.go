package p256v1

import "math/big"

// Modular arithmetic over the sm2p256v1 prime field. Every helper returns a
// fresh big.Int already reduced into [0, p).

var three = big.NewInt(3)

func fieldAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, fieldPrime)
}

func fieldSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, fieldPrime)
}

func fieldMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, fieldPrime)
}

// fieldInv returns a^-1 mod p. a must not be zero mod p.
func fieldInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, fieldPrime)
}

// isOnCurve reports whether y^2 = x^3 + ax + b holds over the field.
func isOnCurve(x, y *big.Int) bool {
	lhs := fieldMul(y, y)
	rhs := fieldMul(fieldMul(x, x), x)
	rhs = fieldAdd(rhs, fieldMul(coeffA, x))
	rhs = fieldAdd(rhs, coeffB)
	return lhs.Cmp(rhs) == 0
}
