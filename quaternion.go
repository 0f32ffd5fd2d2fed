package raymath

import (
	"github.com/solward/raymath/math32"
)

// Quaternion represents a rotation as a unit quaternion. Like the vector types it is a
// value type with copy-returning methods; the algebraic operations (Add, Scale, Lerp,
// ...) work on arbitrary quaternions since the interpolators need them, while the
// rotation-oriented ones assume unit input.
type Quaternion struct {
	X float32
	Y float32
	Z float32
	W float32
}

var (
	QuaternionZero     = Quaternion{0, 0, 0, 0}
	QuaternionIdentity = Quaternion{0, 0, 0, 1}
)

// NewQuaternion creates a new Quaternion with the given components.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionFromVector4 converts the vector's components into a quaternion, one field at
// a time.
func QuaternionFromVector4(v Vector4) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// ToVector4 converts the quaternion's components into a Vector4, one field at a time.
func (q Quaternion) ToVector4() Vector4 {
	return Vector4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// XYZ returns the vector part of the quaternion.
func (q Quaternion) XYZ() Vector3 {
	return Vector3{X: q.X, Y: q.Y, Z: q.Z}
}

// Add returns the componentwise sum of the two quaternions.
func (q Quaternion) Add(other Quaternion) Quaternion {
	q.X += other.X
	q.Y += other.Y
	q.Z += other.Z
	q.W += other.W
	return q
}

// Sub returns the componentwise difference of the two quaternions.
func (q Quaternion) Sub(other Quaternion) Quaternion {
	q.X -= other.X
	q.Y -= other.Y
	q.Z -= other.Z
	q.W -= other.W
	return q
}

// Scale scales every component by the given scalar.
func (q Quaternion) Scale(scalar float32) Quaternion {
	q.X *= scalar
	q.Y *= scalar
	q.Z *= scalar
	q.W *= scalar
	return q
}

// Divide divides every component by the given scalar, multiplying by the reciprocal; see
// Vector2.Divide for the rounding caveat.
func (q Quaternion) Divide(scalar float32) Quaternion {
	return q.Scale(1.0 / scalar)
}

// Negate returns the quaternion with every component negated. A unit quaternion and its
// negation represent the same rotation.
func (q Quaternion) Negate() Quaternion {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	q.W = -q.W
	return q
}

// Dot returns the dot product of the two quaternions.
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Magnitude returns the length of the quaternion.
func (q Quaternion) Magnitude() float32 { return Magnitude(q) }

// Normalize returns the quaternion scaled to unit length. Normalizing a zero quaternion
// yields NaN components; see Normalize.
func (q Quaternion) Normalize() Quaternion { return Normalize(q) }

// Invert returns the inverse rotation: the conjugate scaled by the reciprocal magnitude.
// Exact for unit quaternions, which is what the rotation API produces.
func (q Quaternion) Invert() Quaternion {
	invMagnitude := 1.0 / q.Magnitude()
	return Quaternion{
		X: q.X * -invMagnitude,
		Y: q.Y * -invMagnitude,
		Z: q.Z * -invMagnitude,
		W: q.W * invMagnitude,
	}
}

// Mul returns the Hamilton product q*other. The rotation of the right-hand operand
// applies first: q.Mul(other) rotates by other, then by q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Lerp linearly interpolates towards target by the given (unclamped) amount. The result
// is not normalized; see Nlerp.
func (q Quaternion) Lerp(target Quaternion, amount Percent) Quaternion {
	return Lerp(q, target, amount)
}

// Nlerp interpolates towards target linearly, then renormalizes. Faster than Slerp but
// not constant in angular velocity.
func (q Quaternion) Nlerp(target Quaternion, amount Percent) Quaternion {
	return q.Lerp(target, amount).Normalize()
}

// Slerp spherically interpolates towards target by the given amount. The target is
// negated first if that gives the shorter arc. Nearly-parallel inputs fall back to
// Nlerp, and nearly-opposite ones (where the arc is ambiguous) return the 50/50 blend
// regardless of amount.
func (q Quaternion) Slerp(target Quaternion, amount Percent) Quaternion {
	cosHalfTheta := q.Dot(target)
	if cosHalfTheta < 0 {
		target = target.Negate()
		cosHalfTheta = -cosHalfTheta
	}

	if cosHalfTheta >= 1 {
		return q
	} else if cosHalfTheta > 0.95 {
		return q.Nlerp(target, amount)
	}

	halfTheta := math32.Acos(cosHalfTheta)
	sinHalfTheta := math32.Sqrt(1 - cosHalfTheta*cosHalfTheta)

	if math32.Abs(sinHalfTheta) < math32.Epsilon {
		return q.Scale(0.5).Add(target.Scale(0.5))
	}

	ratioA := math32.Sin((1-float32(amount))*halfTheta) / sinHalfTheta
	ratioB := math32.Sin(float32(amount)*halfTheta) / sinHalfTheta

	return q.Scale(ratioA).Add(target.Scale(ratioB))
}

// CubicHermiteSpline interpolates between q and next with the given tangents, using the
// cubic Hermite basis from the glTF 2.0 animation spec, and renormalizes the result.
func (q Quaternion) CubicHermiteSpline(outTangent, next, inTangent Quaternion, t float32) Quaternion {
	t2 := t * t
	t3 := t2 * t

	p0 := q.Scale(2*t3 - 3*t2 + 1)
	m0 := outTangent.Scale(t3 - 2*t2 + t)
	p1 := next.Scale(-2*t3 + 3*t2)
	m1 := inTangent.Scale(t3 - t2)

	return p0.Add(m0).Add(p1).Add(m1).Normalize()
}

// QuaternionFromVector3ToVector3 returns the rotation that takes the from direction to
// the to direction. Antiparallel inputs are degenerate: the cross product vanishes and
// 1+dot is zero, so the result normalizes a zero quaternion and comes back NaN.
func QuaternionFromVector3ToVector3(from, to Vector3) Quaternion {
	cross := from.Cross(to)

	return Quaternion{
		X: cross.X,
		Y: cross.Y,
		Z: cross.Z,
		W: 1 + from.Dot(to),
	}.Normalize()
}

// QuaternionFromAxisAngle returns the rotation of the given angle around the given axis.
// The axis does not need to be normalized.
func QuaternionFromAxisAngle(axis Vector3, angle Radians) Quaternion {
	axis = axis.Normalize()

	sin, cos := (angle * 0.5).SinCos()

	return Quaternion{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: cos,
	}.Normalize()
}

// ToAxisAngle returns the rotation axis and angle of the quaternion. A rotation of angle
// zero has no meaningful axis and reports UnitX.
func (q Quaternion) ToAxisAngle() (Vector3, Radians) {
	if math32.Abs(q.W) > 1 {
		q = q.Normalize()
	}

	angle := Radians(math32.Acos(q.W) * 2)
	den := math32.Sqrt(1 - q.W*q.W)

	axis := Vector3UnitX
	if den > math32.Epsilon {
		axis = q.XYZ().Divide(den)
	}

	return axis, angle
}

// QuaternionFromEuler returns the rotation described by the given Euler angles, composed
// in ZYX order (roll, then yaw, then pitch).
func QuaternionFromEuler(pitch, yaw, roll Radians) Quaternion {
	x1, x0 := (pitch * 0.5).SinCos()
	y1, y0 := (yaw * 0.5).SinCos()
	z1, z0 := (roll * 0.5).SinCos()

	return Quaternion{
		X: x1*y0*z0 - x0*y1*z1,
		Y: x0*y1*z0 + x1*y0*z1,
		Z: x0*y0*z1 - x1*y1*z0,
		W: x0*y0*z0 + x1*y1*z1,
	}
}

// ToEuler returns the roll (X), pitch (Y) and yaw (Z) angles of the quaternion. The
// pitch term is clamped to [-1, 1] before the asin, so accumulated rounding near the
// poles cannot produce NaN.
func (q Quaternion) ToEuler() (roll, pitch, yaw Radians) {
	x0 := 2 * (q.W*q.X + q.Y*q.Z)
	x1 := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll = Radians(math32.Atan2(x0, x1))

	y0 := math32.Clamp(2*(q.W*q.Y-q.Z*q.X), -1, 1)
	pitch = Radians(math32.Asin(y0))

	z0 := 2 * (q.W*q.Z + q.X*q.Y)
	z1 := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw = Radians(math32.Atan2(z0, z1))

	return roll, pitch, yaw
}

// QuaternionFromMatrix extracts the rotation of the matrix. It keys the conversion off
// the largest of the four diagonal terms, which keeps the divisor well away from zero
// for every input rotation.
func QuaternionFromMatrix(mat Matrix) Quaternion {
	candidates := [4]float32{
		mat[0][0] + mat[1][1] + mat[2][2],
		mat[0][0] - mat[1][1] - mat[2][2],
		mat[1][1] - mat[0][0] - mat[2][2],
		mat[2][2] - mat[0][0] - mat[1][1],
	}

	biggestIndex := 0
	fourBiggestSquaredMinus1 := candidates[0]
	for i, c := range candidates {
		if c > fourBiggestSquaredMinus1 {
			biggestIndex = i
			fourBiggestSquaredMinus1 = c
		}
	}

	biggestVal := math32.Sqrt(fourBiggestSquaredMinus1+1) * 0.5
	mult := 0.25 / biggestVal

	switch biggestIndex {
	case 0:
		return Quaternion{
			W: biggestVal,
			X: (mat[2][1] - mat[1][2]) * mult,
			Y: (mat[0][2] - mat[2][0]) * mult,
			Z: (mat[1][0] - mat[0][1]) * mult,
		}
	case 1:
		return Quaternion{
			X: biggestVal,
			W: (mat[2][1] - mat[1][2]) * mult,
			Y: (mat[1][0] + mat[0][1]) * mult,
			Z: (mat[0][2] + mat[2][0]) * mult,
		}
	case 2:
		return Quaternion{
			Y: biggestVal,
			W: (mat[0][2] - mat[2][0]) * mult,
			X: (mat[1][0] + mat[0][1]) * mult,
			Z: (mat[2][1] + mat[1][2]) * mult,
		}
	default:
		return Quaternion{
			Z: biggestVal,
			W: (mat[1][0] - mat[0][1]) * mult,
			X: (mat[0][2] + mat[2][0]) * mult,
			Y: (mat[2][1] + mat[1][2]) * mult,
		}
	}
}

// ToMatrix returns the rotation matrix of the quaternion, which must be unit length.
func (q Quaternion) ToMatrix() Matrix {
	a2 := q.X * q.X
	b2 := q.Y * q.Y
	c2 := q.Z * q.Z

	ac := q.X * q.Z
	ab := q.X * q.Y
	bc := q.Y * q.Z
	ad := q.W * q.X
	bd := q.W * q.Y
	cd := q.W * q.Z

	return Matrix{
		{1 - 2*(b2+c2), 2 * (ab - cd), 2 * (ac + bd), 0},
		{2 * (ab + cd), 1 - 2*(a2+c2), 2 * (bc - ad), 0},
		{2 * (ac - bd), 2 * (bc + ad), 1 - 2*(a2+b2), 0},
		{0, 0, 0, 1},
	}
}

// Transform applies the matrix to the quaternion's components, as if it were a Vector4.
func (q Quaternion) Transform(mat Matrix) Quaternion {
	return QuaternionFromVector4(q.ToVector4().Transform(mat))
}

// NearEq reports whether the two quaternions are almost equal up to sign; q and -q
// describe the same rotation.
func (q Quaternion) NearEq(other Quaternion) bool {
	return q.ToVector4().NearEq(other.ToVector4()) ||
		q.ToVector4().NearEq(other.Negate().ToVector4())
}
