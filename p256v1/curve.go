// Package p256v1 implements the sm2p256v1 curve group (GB/T 32918.5)
// behind the shared types interfaces.
package p256v1

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-sm2/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var (
	ErrInvalidEncoding = errors.New("p256v1: invalid encoding")
	ErrPointNotOnCurve = errors.New("p256v1: point not on curve")
	ErrInvalidScalar   = errors.New("p256v1: scalar out of range")
	ErrRngUnavailable  = errors.New("p256v1: secure random source unavailable")
)

const (
	scalarSize = 32
	pointSize  = 1 + 2*scalarSize
)

// sm2p256v1 domain parameters. Initialized once, never mutated.
var (
	fieldPrime = mustHexInt("fffffffeffffffffffffffffffffffffffffffff00000000ffffffffffffffff")
	coeffA     = mustHexInt("fffffffeffffffffffffffffffffffffffffffff00000000fffffffffffffffc")
	coeffB     = mustHexInt("28e9fa9e9d9f5e344d5a9e4bcf6509a7f39789f515ab8f92ddbcbd414d940e93")
	groupOrder = mustHexInt("fffffffeffffffffffffffffffffffff7203df6b21c6052b53bbf40939d54123")
	baseX      = mustHexInt("32c4ae2c1f1981195f9904466a39c9948fe30bbff2660be1715a4589334c74c7")
	baseY      = mustHexInt("bc3736a2f4f6779c59bdcee36b692153d0a9877cc62a474002df32e52139f0a0")
)

func mustHexInt(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("p256v1: bad domain parameter constant")
	}
	return i
}

// CurveParams holds the fixed domain parameters. Callers must treat the
// returned values as read-only.
type CurveParams struct {
	P, A, B  *big.Int
	N        *big.Int
	Gx, Gy   *big.Int
	Cofactor int
}

// Params returns the sm2p256v1 domain parameters.
func Params() *CurveParams {
	return &CurveParams{
		P:        fieldPrime,
		A:        coeffA,
		B:        coeffB,
		N:        groupOrder,
		Gx:       baseX,
		Gy:       baseY,
		Cofactor: 1,
	}
}

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) PointSize() int {
	return pointSize
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		x: new(big.Int).Set(baseX),
		y: new(big.Int).Set(baseY),
	}
}

// NewRandomScalar draws a uniform scalar in [1, n-1]. Raw 256-bit draws
// outside [1, n-1] are rejected and redrawn rather than reduced, so the
// result carries no modulo bias.
func (c *CurveImpl) NewRandomScalar() (Scalar, error) {
	var buf [scalarSize]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRngUnavailable, err)
		}

		d := new(big.Int).SetBytes(buf[:])
		if d.Sign() != 0 && d.Cmp(groupOrder) < 0 {
			return &ScalarImpl{inner: d}, nil
		}
	}
}

// DecodeToPoint accepts only the 65-byte uncompressed form
// 0x04 || X(32B) || Y(32B) and validates the curve equation.
func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != pointSize || b[0] != 0x04 {
		return nil, ErrInvalidEncoding
	}

	x := new(big.Int).SetBytes(b[1 : 1+scalarSize])
	y := new(big.Int).SetBytes(b[1+scalarSize:])
	if x.Cmp(fieldPrime) >= 0 || y.Cmp(fieldPrime) >= 0 {
		return nil, ErrInvalidEncoding
	}

	if !isOnCurve(x, y) {
		return nil, ErrPointNotOnCurve
	}

	return &PointImpl{x: x, y: y}, nil
}

// DecodeToScalar accepts a 32-byte big-endian value in [1, n-1].
func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, ErrInvalidEncoding
	}

	d := new(big.Int).SetBytes(b)
	if d.Sign() == 0 || d.Cmp(groupOrder) >= 0 {
		return nil, ErrInvalidScalar
	}

	return &ScalarImpl{inner: d}, nil
}

func (c *CurveImpl) ValidatePoint(p Point) error {
	if p == nil {
		return ErrPointNotOnCurve
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256v1.PointImpl")
	}

	if pp.IsZero() {
		return ErrPointNotOnCurve
	}

	if !isOnCurve(pp.x, pp.y) {
		return ErrPointNotOnCurve
	}

	return nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	return c.ScalarMul(s, c.BasePoint())
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256v1.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256v1.PointImpl")
	}

	// Double-and-add over the scalar bits, most significant first.
	r := &PointImpl{}
	for i := ss.inner.BitLen() - 1; i >= 0; i-- {
		r = r.double()
		if ss.inner.Bit(i) == 1 {
			r = r.add(pp)
		}
	}

	return r
}

type ScalarImpl struct {
	inner *big.Int
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256v1.ScalarImpl")
	}

	r := new(big.Int).Add(s.inner, ss.inner)
	return &ScalarImpl{inner: r.Mod(r, groupOrder)}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256v1.ScalarImpl")
	}

	r := new(big.Int).Mul(s.inner, ss.inner)
	return &ScalarImpl{inner: r.Mod(r, groupOrder)}
}

func (s *ScalarImpl) Inverse() Scalar {
	return &ScalarImpl{inner: new(big.Int).ModInverse(s.inner, groupOrder)}
}

func (s *ScalarImpl) Encode() []byte {
	out := make([]byte, scalarSize)
	s.inner.FillBytes(out)
	return out
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256v1.ScalarImpl")
	}
	return s.inner.Cmp(ss.inner) == 0
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Sign() == 0
}

// PointImpl is an affine point. The zero value is the point at infinity.
type PointImpl struct {
	x, y *big.Int
}

func (p *PointImpl) Copy() Point {
	if p.IsZero() {
		return &PointImpl{}
	}

	return &PointImpl{
		x: new(big.Int).Set(p.x),
		y: new(big.Int).Set(p.y),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256v1.PointImpl")
	}

	return p.add(pp)
}

func (p *PointImpl) add(q *PointImpl) *PointImpl {
	if p.IsZero() {
		return q.Copy().(*PointImpl)
	}
	if q.IsZero() {
		return p.Copy().(*PointImpl)
	}

	if p.x.Cmp(q.x) == 0 {
		if p.y.Cmp(q.y) != 0 {
			// P + (-P) = O
			return &PointImpl{}
		}
		return p.double()
	}

	// lambda = (y2 - y1) / (x2 - x1)
	lambda := fieldMul(fieldSub(q.y, p.y), fieldInv(fieldSub(q.x, p.x)))
	x3 := fieldSub(fieldSub(fieldMul(lambda, lambda), p.x), q.x)
	y3 := fieldSub(fieldMul(lambda, fieldSub(p.x, x3)), p.y)
	return &PointImpl{x: x3, y: y3}
}

func (p *PointImpl) double() *PointImpl {
	if p.IsZero() || p.y.Sign() == 0 {
		return &PointImpl{}
	}

	// lambda = (3x^2 + a) / 2y
	num := fieldAdd(fieldMul(three, fieldMul(p.x, p.x)), coeffA)
	lambda := fieldMul(num, fieldInv(fieldAdd(p.y, p.y)))
	x3 := fieldSub(fieldSub(fieldMul(lambda, lambda), p.x), p.x)
	y3 := fieldSub(fieldMul(lambda, fieldSub(p.x, x3)), p.y)
	return &PointImpl{x: x3, y: y3}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	return (&CurveImpl{}).ScalarMul(s, p)
}

func (p *PointImpl) Encode() []byte {
	if p.IsZero() {
		panic("p256v1: cannot encode the point at infinity")
	}

	out := make([]byte, pointSize)
	out[0] = 0x04
	p.x.FillBytes(out[1 : 1+scalarSize])
	p.y.FillBytes(out[1+scalarSize:])
	return out
}

func (p *PointImpl) IsZero() bool {
	return p.x == nil
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256v1.PointImpl")
	}

	if p.IsZero() || pp.IsZero() {
		return p.IsZero() == pp.IsZero()
	}

	return p.x.Cmp(pp.x) == 0 && p.y.Cmp(pp.y) == 0
}
