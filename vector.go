package raymath

import (
	"github.com/solward/raymath/math32"
)

// VectorOps is the minimal operator contract shared by the vector types (and Quaternion).
// The dimension-independent behaviors below, like magnitude, distance, normalization and
// interpolation, are implemented exactly once against this interface instead of being
// duplicated per type.
type VectorOps[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float32) T
	Dot(T) float32
}

// Magnitude returns the length of the vector.
func Magnitude[T VectorOps[T]](v T) float32 {
	return math32.Sqrt(v.Dot(v))
}

// MagnitudeSqr returns the squared length of the vector; this is faster than Magnitude
// as it avoids the square root.
func MagnitudeSqr[T VectorOps[T]](v T) float32 {
	return v.Dot(v)
}

// Distance returns the distance between the two vectors.
func Distance[T VectorOps[T]](a, b T) float32 {
	return Magnitude(a.Sub(b))
}

// DistanceSqr returns the squared distance between the two vectors.
func DistanceSqr[T VectorOps[T]](a, b T) float32 {
	return MagnitudeSqr(a.Sub(b))
}

// Normalize returns the vector scaled to unit length. There is no zero guard: normalizing
// a zero vector divides by zero and yields NaN components, per IEEE-754.
func Normalize[T VectorOps[T]](v T) T {
	return v.Scale(1.0 / Magnitude(v))
}

// Lerp linearly interpolates from v towards target by the given amount, which is not
// clamped; amounts outside [0, 1] extrapolate.
func Lerp[T VectorOps[T]](v, target T, amount Percent) T {
	return v.Add(target.Sub(v).Scale(float32(amount)))
}

//////////////////////////////////////////////////
// Vector2
//////////////////////////////////////////////////

// Vector2 represents a 2D vector. Functions that modify the calling vector return
// modified copies, so operations chain comfortably.
type Vector2 struct {
	X float32
	Y float32
}

var (
	Vector2Zero  = Vector2{0, 0}
	Vector2One   = Vector2{1, 1}
	Vector2UnitX = Vector2{1, 0}
	Vector2UnitY = Vector2{0, 1}
)

// Direction2 is a Vector2 that is expected to be normalized. This is a documentation
// convention only; nothing enforces unit length.
type Direction2 = Vector2

// NewVector2 creates a new Vector2 with the given components.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of the two vectors.
func (v Vector2) Add(other Vector2) Vector2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

// Sub returns the difference of the two vectors.
func (v Vector2) Sub(other Vector2) Vector2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// Mult returns the componentwise product of the two vectors.
func (v Vector2) Mult(other Vector2) Vector2 {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// Div returns the componentwise quotient of the two vectors.
func (v Vector2) Div(other Vector2) Vector2 {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// AddScalar adds the scalar to every component.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	v.X += scalar
	v.Y += scalar
	return v
}

// SubScalar subtracts the scalar from every component.
func (v Vector2) SubScalar(scalar float32) Vector2 {
	v.X -= scalar
	v.Y -= scalar
	return v
}

// Scale scales the vector by the given scalar.
func (v Vector2) Scale(scalar float32) Vector2 {
	v.X *= scalar
	v.Y *= scalar
	return v
}

// Divide divides the vector by the given scalar. It multiplies by the reciprocal, which
// is faster than dividing each component but rounds slightly differently.
func (v Vector2) Divide(scalar float32) Vector2 {
	inv := 1.0 / scalar
	v.X *= inv
	v.Y *= inv
	return v
}

// Negate returns the vector with every component negated.
func (v Vector2) Negate() Vector2 {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

// Dot returns the dot product of the two vectors.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude returns the length of the vector.
func (v Vector2) Magnitude() float32 { return Magnitude(v) }

// MagnitudeSqr returns the squared length of the vector.
func (v Vector2) MagnitudeSqr() float32 { return MagnitudeSqr(v) }

// Distance returns the distance to the other vector.
func (v Vector2) Distance(other Vector2) float32 { return Distance(v, other) }

// DistanceSqr returns the squared distance to the other vector.
func (v Vector2) DistanceSqr(other Vector2) float32 { return DistanceSqr(v, other) }

// Normalize returns the vector scaled to unit length. Normalizing a zero vector yields
// NaN components; see Normalize.
func (v Vector2) Normalize() Vector2 { return Normalize(v) }

// Lerp linearly interpolates towards target by the given (unclamped) amount.
func (v Vector2) Lerp(target Vector2, amount Percent) Vector2 { return Lerp(v, target, amount) }

// NearEq reports whether the two vectors are componentwise almost equal.
func (v Vector2) NearEq(other Vector2) bool {
	return math32.NearEq(v.X, other.X) &&
		math32.NearEq(v.Y, other.Y)
}

// Transform applies the matrix to the vector, treating it as a point (implicit z=0 and
// w=1, so translation applies).
func (v Vector2) Transform(mat Matrix) Vector2 {
	return Vector2{
		X: mat[0][0]*v.X + mat[0][1]*v.Y + mat[0][3],
		Y: mat[1][0]*v.X + mat[1][1]*v.Y + mat[1][3],
	}
}

//////////////////////////////////////////////////
// Vector3
//////////////////////////////////////////////////

// Vector3 represents a 3D vector, usable for positions, directions, velocities, and so
// on. Functions that modify the calling vector return modified copies.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

var (
	Vector3Zero  = Vector3{0, 0, 0}
	Vector3One   = Vector3{1, 1, 1}
	Vector3UnitX = Vector3{1, 0, 0}
	Vector3UnitY = Vector3{0, 1, 0}
	Vector3UnitZ = Vector3{0, 0, 1}
)

// Direction3 is a Vector3 that is expected to be normalized. This is a documentation
// convention only; callers must call Normalize explicitly.
type Direction3 = Vector3

// NewVector3 creates a new Vector3 with the given components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of the two vectors.
func (v Vector3) Add(other Vector3) Vector3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// Sub returns the difference of the two vectors.
func (v Vector3) Sub(other Vector3) Vector3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// Mult returns the componentwise product of the two vectors.
func (v Vector3) Mult(other Vector3) Vector3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

// Div returns the componentwise quotient of the two vectors.
func (v Vector3) Div(other Vector3) Vector3 {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

// AddScalar adds the scalar to every component.
func (v Vector3) AddScalar(scalar float32) Vector3 {
	v.X += scalar
	v.Y += scalar
	v.Z += scalar
	return v
}

// SubScalar subtracts the scalar from every component.
func (v Vector3) SubScalar(scalar float32) Vector3 {
	v.X -= scalar
	v.Y -= scalar
	v.Z -= scalar
	return v
}

// Scale scales the vector by the given scalar.
func (v Vector3) Scale(scalar float32) Vector3 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

// Divide divides the vector by the given scalar by multiplying with the reciprocal; see
// Vector2.Divide for the rounding caveat.
func (v Vector3) Divide(scalar float32) Vector3 {
	inv := 1.0 / scalar
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	return v
}

// Negate returns the vector with every component negated.
func (v Vector3) Negate() Vector3 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

// Cross returns the cross product of the two vectors.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Dot returns the dot product of the two vectors.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float32 { return Magnitude(v) }

// MagnitudeSqr returns the squared length of the vector.
func (v Vector3) MagnitudeSqr() float32 { return MagnitudeSqr(v) }

// Distance returns the distance to the other vector.
func (v Vector3) Distance(other Vector3) float32 { return Distance(v, other) }

// DistanceSqr returns the squared distance to the other vector.
func (v Vector3) DistanceSqr(other Vector3) float32 { return DistanceSqr(v, other) }

// Normalize returns the vector scaled to unit length. Normalizing a zero vector yields
// NaN components; see Normalize.
func (v Vector3) Normalize() Vector3 { return Normalize(v) }

// Lerp linearly interpolates towards target by the given (unclamped) amount.
func (v Vector3) Lerp(target Vector3, amount Percent) Vector3 { return Lerp(v, target, amount) }

// NearEq reports whether the two vectors are componentwise almost equal.
func (v Vector3) NearEq(other Vector3) bool {
	return math32.NearEq(v.X, other.X) &&
		math32.NearEq(v.Y, other.Y) &&
		math32.NearEq(v.Z, other.Z)
}

// Angle returns the angle between the two vectors, in [0, pi]. Computed with atan2 of
// the cross magnitude over the dot product, which stays stable for near-parallel inputs.
func (v Vector3) Angle(other Vector3) Radians {
	cross := v.Cross(other)
	return Radians(math32.Atan2(cross.Magnitude(), v.Dot(other)))
}

// RotateByAxisAngle rotates the vector around the given axis by the given angle, using
// the Euler-Rodrigues formula. The axis does not need to be normalized.
func (v Vector3) RotateByAxisAngle(axis Vector3, angle Radians) Vector3 {
	axis = axis.Normalize()

	sin, cos := (angle * 0.5).SinCos()
	w := axis.Scale(sin)

	wv := w.Cross(v)
	wwv := w.Cross(wv)

	return v.Add(wv.Scale(2 * cos)).Add(wwv.Scale(2))
}

// Transform applies the matrix to the vector, treating it as a point (implicit w=1, so
// translation applies). Use Vector4 with w=0 to transform a direction instead.
func (v Vector3) Transform(mat Matrix) Vector3 {
	return Vector3{
		X: mat[0][0]*v.X + mat[0][1]*v.Y + mat[0][2]*v.Z + mat[0][3],
		Y: mat[1][0]*v.X + mat[1][1]*v.Y + mat[1][2]*v.Z + mat[1][3],
		Z: mat[2][0]*v.X + mat[2][1]*v.Y + mat[2][2]*v.Z + mat[2][3],
	}
}

//////////////////////////////////////////////////
// Vector4
//////////////////////////////////////////////////

// Vector4 represents a 4D vector, typically a homogeneous position (w=1) or direction
// (w=0). Functions that modify the calling vector return modified copies.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

var (
	Vector4Zero  = Vector4{0, 0, 0, 0}
	Vector4One   = Vector4{1, 1, 1, 1}
	Vector4UnitX = Vector4{1, 0, 0, 0}
	Vector4UnitY = Vector4{0, 1, 0, 0}
	Vector4UnitZ = Vector4{0, 0, 1, 0}
	Vector4UnitW = Vector4{0, 0, 0, 1}
)

// NewVector4 creates a new Vector4 with the given components.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// XYZ returns the first three components as a Vector3.
func (v Vector4) XYZ() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns the sum of the two vectors.
func (v Vector4) Add(other Vector4) Vector4 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

// Sub returns the difference of the two vectors.
func (v Vector4) Sub(other Vector4) Vector4 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

// Mult returns the componentwise product of the two vectors.
func (v Vector4) Mult(other Vector4) Vector4 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
	return v
}

// Div returns the componentwise quotient of the two vectors.
func (v Vector4) Div(other Vector4) Vector4 {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	v.W /= other.W
	return v
}

// AddScalar adds the scalar to every component.
func (v Vector4) AddScalar(scalar float32) Vector4 {
	v.X += scalar
	v.Y += scalar
	v.Z += scalar
	v.W += scalar
	return v
}

// SubScalar subtracts the scalar from every component.
func (v Vector4) SubScalar(scalar float32) Vector4 {
	v.X -= scalar
	v.Y -= scalar
	v.Z -= scalar
	v.W -= scalar
	return v
}

// Scale scales the vector by the given scalar.
func (v Vector4) Scale(scalar float32) Vector4 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	v.W *= scalar
	return v
}

// Divide divides the vector by the given scalar by multiplying with the reciprocal; see
// Vector2.Divide for the rounding caveat.
func (v Vector4) Divide(scalar float32) Vector4 {
	inv := 1.0 / scalar
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	v.W *= inv
	return v
}

// Negate returns the vector with every component negated.
func (v Vector4) Negate() Vector4 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	v.W = -v.W
	return v
}

// Dot returns the dot product of the two vectors.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Magnitude returns the length of the vector.
func (v Vector4) Magnitude() float32 { return Magnitude(v) }

// MagnitudeSqr returns the squared length of the vector.
func (v Vector4) MagnitudeSqr() float32 { return MagnitudeSqr(v) }

// Distance returns the distance to the other vector.
func (v Vector4) Distance(other Vector4) float32 { return Distance(v, other) }

// DistanceSqr returns the squared distance to the other vector.
func (v Vector4) DistanceSqr(other Vector4) float32 { return DistanceSqr(v, other) }

// Normalize returns the vector scaled to unit length. Normalizing a zero vector yields
// NaN components; see Normalize.
func (v Vector4) Normalize() Vector4 { return Normalize(v) }

// Lerp linearly interpolates towards target by the given (unclamped) amount.
func (v Vector4) Lerp(target Vector4, amount Percent) Vector4 { return Lerp(v, target, amount) }

// NearEq reports whether the two vectors are componentwise almost equal.
func (v Vector4) NearEq(other Vector4) bool {
	return math32.NearEq(v.X, other.X) &&
		math32.NearEq(v.Y, other.Y) &&
		math32.NearEq(v.Z, other.Z) &&
		math32.NearEq(v.W, other.W)
}

// Transform applies the matrix to the vector, using all four components.
func (v Vector4) Transform(mat Matrix) Vector4 {
	return Vector4{
		X: mat[0][0]*v.X + mat[0][1]*v.Y + mat[0][2]*v.Z + mat[0][3]*v.W,
		Y: mat[1][0]*v.X + mat[1][1]*v.Y + mat[1][2]*v.Z + mat[1][3]*v.W,
		Z: mat[2][0]*v.X + mat[2][1]*v.Y + mat[2][2]*v.Z + mat[2][3]*v.W,
		W: mat[3][0]*v.X + mat[3][1]*v.Y + mat[3][2]*v.Z + mat[3][3]*v.W,
	}
}
