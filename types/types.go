package types

// Curve is the group operation surface the SM2 engine runs on.
// Implementations hold only immutable domain parameters and are safe for
// concurrent use.
type Curve interface {
	// PointSize returns the length of an encoded point in bytes.
	PointSize() int
	BasePoint() Point
	// NewRandomScalar returns a uniform scalar in [1, n-1], drawn from a
	// cryptographically secure source with rejection sampling.
	NewRandomScalar() (Scalar, error)
	// DecodeToPoint decodes an uncompressed point and validates it against
	// the curve equation.
	DecodeToPoint([]byte) (Point, error)
	// DecodeToScalar decodes a big-endian scalar and validates it is in
	// [1, n-1].
	DecodeToScalar([]byte) (Scalar, error)
	// ValidatePoint reports whether the point is on the curve and is not
	// the point at infinity.
	ValidatePoint(Point) error
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
}

type Scalar interface {
	Add(Scalar) Scalar
	Mul(Scalar) Scalar
	Inverse() Scalar
	// Encode returns the 32-byte big-endian encoding.
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	ScalarMul(Scalar) Point
	// Encode returns the 65-byte uncompressed encoding 0x04 || X || Y.
	// Encoding the point at infinity panics; it has no uncompressed form.
	Encode() []byte
	// IsZero reports whether the point is the point at infinity.
	IsZero() bool
	Equals(other Point) bool
}
