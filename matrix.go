package raymath

import (
	"math"
	"strconv"
	"strings"

	"github.com/solward/raymath/math32"
)

// Matrix represents a 4x4 transform matrix, column major, OpenGL style, right-handed.
// Storage is an array of rows, so Matrix[row][col] addresses the element at that
// mathematical row and column; the flat OpenGL element mN lives at [N%4][N/4].
// Translation therefore sits in the last column ([0][3], [1][3], [2][3]).
type Matrix [4][4]float32

// NewMatrix returns a new identity Matrix.
func NewMatrix() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MatrixTranslate returns a matrix translating by the given offsets.
func MatrixTranslate(x, y, z float32) Matrix {
	return Matrix{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// MatrixScale returns a matrix scaling by the given factors.
func MatrixScale(x, y, z float32) Matrix {
	return Matrix{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// MatrixRotate returns a matrix rotating around the given axis by the given angle,
// using the Rodrigues rotation formula. The axis does not need to be normalized.
func MatrixRotate(axis Vector3, angle Radians) Matrix {
	axis = axis.Normalize()
	x, y, z := axis.X, axis.Y, axis.Z

	sin, cos := angle.SinCos()
	t := 1 - cos

	return Matrix{
		{x*x*t + cos, x*y*t - z*sin, x*z*t + y*sin, 0},
		{y*x*t + z*sin, y*y*t + cos, y*z*t - x*sin, 0},
		{z*x*t - y*sin, z*y*t + x*sin, z*z*t + cos, 0},
		{0, 0, 0, 1},
	}
}

// MatrixRotateX returns a matrix rotating around the X axis by the given angle.
func MatrixRotateX(angle Radians) Matrix {
	sin, cos := angle.SinCos()
	return Matrix{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// MatrixRotateY returns a matrix rotating around the Y axis by the given angle.
func MatrixRotateY(angle Radians) Matrix {
	sin, cos := angle.SinCos()
	return Matrix{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// MatrixRotateZ returns a matrix rotating around the Z axis by the given angle.
func MatrixRotateZ(angle Radians) Matrix {
	sin, cos := angle.SinCos()
	return Matrix{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MatrixRotateXYZ returns a matrix composing rotations around the X, Y and Z axes, in
// that application order.
func MatrixRotateXYZ(x, y, z Radians) Matrix {
	sinX, cosX := x.SinCos()
	sinY, cosY := y.SinCos()
	sinZ, cosZ := z.SinCos()

	return Matrix{
		{cosZ * cosY, sinZ * cosY, -sinY, 0},
		{cosZ*sinY*sinX - sinZ*cosX, sinZ*sinY*sinX + cosZ*cosX, cosY * sinX, 0},
		{cosZ*sinY*cosX + sinZ*sinX, sinZ*sinY*cosX - cosZ*sinX, cosY * cosX, 0},
		{0, 0, 0, 1},
	}
}

// MatrixFrustum returns a perspective projection matrix for the given frustum planes.
// The parameters are float64 so the plane arithmetic keeps full precision before
// narrowing to float32.
func MatrixFrustum(left, right, bottom, top, nearPlane, farPlane float64) Matrix {
	width := float32(right - left)
	height := float32(top - bottom)
	depth := float32(farPlane - nearPlane)

	l := float32(left)
	r := float32(right)
	b := float32(bottom)
	t := float32(top)
	n := float32(nearPlane)
	f := float32(farPlane)

	return Matrix{
		{n * 2 / width, 0, (r + l) / width, 0},
		{0, n * 2 / height, (t + b) / height, 0},
		{0, 0, -(f + n) / depth, -(f * n * 2) / depth},
		{0, 0, -1, 0},
	}
}

// MatrixPerspective returns a perspective projection matrix. The field of view is
// vertical and in radians.
func MatrixPerspective(fovY, aspect, nearPlane, farPlane float64) Matrix {
	top := nearPlane * math.Tan(fovY*0.5)
	right := top * aspect

	return MatrixFrustum(-right, right, -top, top, nearPlane, farPlane)
}

// MatrixOrtho returns an orthographic projection matrix for the given clipping box.
func MatrixOrtho(left, right, bottom, top, nearPlane, farPlane float64) Matrix {
	width := float32(right - left)
	height := float32(top - bottom)
	depth := float32(farPlane - nearPlane)

	l := float32(left)
	r := float32(right)
	b := float32(bottom)
	t := float32(top)
	n := float32(nearPlane)
	f := float32(farPlane)

	return Matrix{
		{2 / width, 0, 0, -(r + l) / width},
		{0, 2 / height, 0, -(t + b) / height},
		{0, 0, -2 / depth, -(f + n) / depth},
		{0, 0, 0, 1},
	}
}

// MatrixLookAt returns a view matrix for a camera at eye looking at target, with the
// given up direction.
func MatrixLookAt(eye, target, up Vector3) Matrix {
	vz := eye.Sub(target).Normalize()
	vx := up.Cross(vz).Normalize()
	vy := vz.Cross(vx)

	return Matrix{
		{vx.X, vx.Y, vx.Z, -vx.Dot(eye)},
		{vy.X, vy.Y, vy.Z, -vy.Dot(eye)},
		{vz.X, vz.Y, vz.Z, -vz.Dot(eye)},
		{0, 0, 0, 1},
	}
}

// Add returns the componentwise sum of the two matrices.
func (mat Matrix) Add(other Matrix) Matrix {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			mat[r][c] += other[r][c]
		}
	}
	return mat
}

// Sub returns the componentwise difference of the two matrices.
func (mat Matrix) Sub(other Matrix) Matrix {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			mat[r][c] -= other[r][c]
		}
	}
	return mat
}

// ScaleBy scales every element by the given scalar.
func (mat Matrix) ScaleBy(scalar float32) Matrix {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			mat[r][c] *= scalar
		}
	}
	return mat
}

// Mult multiplies the two matrices. The order matters: for column vectors,
// a.Mult(b) applies a's transform first and b's second, so a translate-rotate-scale
// chain reads left to right.
func (mat Matrix) Mult(other Matrix) Matrix {
	a, b := mat, other
	return Matrix{
		{
			a[0][0]*b[0][0] + a[1][0]*b[0][1] + a[2][0]*b[0][2] + a[3][0]*b[0][3],
			a[0][0]*b[1][0] + a[1][0]*b[1][1] + a[2][0]*b[1][2] + a[3][0]*b[1][3],
			a[0][0]*b[2][0] + a[1][0]*b[2][1] + a[2][0]*b[2][2] + a[3][0]*b[2][3],
			a[0][0]*b[3][0] + a[1][0]*b[3][1] + a[2][0]*b[3][2] + a[3][0]*b[3][3],
		},
		{
			a[0][1]*b[0][0] + a[1][1]*b[0][1] + a[2][1]*b[0][2] + a[3][1]*b[0][3],
			a[0][1]*b[1][0] + a[1][1]*b[1][1] + a[2][1]*b[1][2] + a[3][1]*b[1][3],
			a[0][1]*b[2][0] + a[1][1]*b[2][1] + a[2][1]*b[2][2] + a[3][1]*b[2][3],
			a[0][1]*b[3][0] + a[1][1]*b[3][1] + a[2][1]*b[3][2] + a[3][1]*b[3][3],
		},
		{
			a[0][2]*b[0][0] + a[1][2]*b[0][1] + a[2][2]*b[0][2] + a[3][2]*b[0][3],
			a[0][2]*b[1][0] + a[1][2]*b[1][1] + a[2][2]*b[1][2] + a[3][2]*b[1][3],
			a[0][2]*b[2][0] + a[1][2]*b[2][1] + a[2][2]*b[2][2] + a[3][2]*b[2][3],
			a[0][2]*b[3][0] + a[1][2]*b[3][1] + a[2][2]*b[3][2] + a[3][2]*b[3][3],
		},
		{
			a[0][3]*b[0][0] + a[1][3]*b[0][1] + a[2][3]*b[0][2] + a[3][3]*b[0][3],
			a[0][3]*b[1][0] + a[1][3]*b[1][1] + a[2][3]*b[1][2] + a[3][3]*b[1][3],
			a[0][3]*b[2][0] + a[1][3]*b[2][1] + a[2][3]*b[2][2] + a[3][3]*b[2][3],
			a[0][3]*b[3][0] + a[1][3]*b[3][1] + a[2][3]*b[3][2] + a[3][3]*b[3][3],
		},
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (mat Matrix) Transpose() Matrix {
	var out Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = mat[r][c]
		}
	}
	return out
}

// Trace returns the sum of the diagonal elements.
func (mat Matrix) Trace() float32 {
	return mat[0][0] + mat[1][1] + mat[2][2] + mat[3][3]
}

// Determinant returns the determinant of the matrix, by closed-form cofactor expansion.
func (mat Matrix) Determinant() float32 {
	a00, a01, a02, a03 := mat[0][0], mat[1][0], mat[2][0], mat[3][0]
	a10, a11, a12, a13 := mat[0][1], mat[1][1], mat[2][1], mat[3][1]
	a20, a21, a22, a23 := mat[0][2], mat[1][2], mat[2][2], mat[3][2]
	a30, a31, a32, a33 := mat[0][3], mat[1][3], mat[2][3], mat[3][3]

	return a30*a21*a12*a03 - a20*a31*a12*a03 - a30*a11*a22*a03 + a10*a31*a22*a03 +
		a20*a11*a32*a03 - a10*a21*a32*a03 - a30*a21*a02*a13 + a20*a31*a02*a13 +
		a30*a01*a22*a13 - a00*a31*a22*a13 - a20*a01*a32*a13 + a00*a21*a32*a13 +
		a30*a11*a02*a23 - a10*a31*a02*a23 - a30*a01*a12*a23 + a00*a31*a12*a23 +
		a10*a01*a32*a23 - a00*a11*a32*a23 - a20*a11*a02*a33 + a10*a21*a02*a33 +
		a20*a01*a12*a33 - a00*a21*a12*a33 - a10*a01*a22*a33 + a00*a11*a22*a33
}

// Invert returns the inverse of the matrix, computed from 2x2 sub-determinants. There
// is no singularity guard: a non-invertible input divides by a zero determinant and the
// result carries Inf or NaN elements.
func (mat Matrix) Invert() Matrix {
	a00, a01, a02, a03 := mat[0][0], mat[1][0], mat[2][0], mat[3][0]
	a10, a11, a12, a13 := mat[0][1], mat[1][1], mat[2][1], mat[3][1]
	a20, a21, a22, a23 := mat[0][2], mat[1][2], mat[2][2], mat[3][2]
	a30, a31, a32, a33 := mat[0][3], mat[1][3], mat[2][3], mat[3][3]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	invDet := 1.0 / (b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06)

	var out Matrix
	out[0][0] = (a11*b11 - a12*b10 + a13*b09) * invDet
	out[1][0] = (-a01*b11 + a02*b10 - a03*b09) * invDet
	out[2][0] = (a31*b05 - a32*b04 + a33*b03) * invDet
	out[3][0] = (-a21*b05 + a22*b04 - a23*b03) * invDet
	out[0][1] = (-a10*b11 + a12*b08 - a13*b07) * invDet
	out[1][1] = (a00*b11 - a02*b08 + a03*b07) * invDet
	out[2][1] = (-a30*b05 + a32*b02 - a33*b01) * invDet
	out[3][1] = (a20*b05 - a22*b02 + a23*b01) * invDet
	out[0][2] = (a10*b10 - a11*b08 + a13*b06) * invDet
	out[1][2] = (-a00*b10 + a01*b08 - a03*b06) * invDet
	out[2][2] = (a30*b04 - a31*b02 + a33*b00) * invDet
	out[3][2] = (-a20*b04 + a21*b02 - a23*b00) * invDet
	out[0][3] = (-a10*b09 + a11*b07 - a12*b06) * invDet
	out[1][3] = (a00*b09 - a01*b07 + a02*b06) * invDet
	out[2][3] = (-a30*b03 + a31*b01 - a32*b00) * invDet
	out[3][3] = (a20*b03 - a21*b01 + a22*b00) * invDet
	return out
}

// Decompose splits the matrix into its translation, rotation and scale components.
// The scale magnitudes take the sign of the determinant; a near-zero determinant means
// the rotation cannot be recovered and comes back as the identity.
func (mat Matrix) Decompose() (translation Vector3, rotation Quaternion, scale Vector3) {
	translation = Vector3{X: mat[0][3], Y: mat[1][3], Z: mat[2][3]}

	det := mat.Determinant()

	scale = Vector3{
		X: Vector3{X: mat[0][0], Y: mat[1][0], Z: mat[2][0]}.Magnitude(),
		Y: Vector3{X: mat[0][1], Y: mat[1][1], Z: mat[2][1]}.Magnitude(),
		Z: Vector3{X: mat[0][2], Y: mat[1][2], Z: mat[2][2]}.Magnitude(),
	}
	if det < 0 {
		scale = scale.Negate()
	}

	rotation = QuaternionIdentity
	if !math32.NearEq(det, 0) {
		clone := mat
		for r := 0; r < 3; r++ {
			clone[r][0] /= scale.X
			clone[r][1] /= scale.Y
			clone[r][2] /= scale.Z
		}
		rotation = QuaternionFromMatrix(clone)
	}

	return translation, rotation, scale
}

// ToFloats returns the matrix flattened into the column-major element order GPU APIs
// expect, so element N of the result is the OpenGL mN.
func (mat Matrix) ToFloats() [16]float32 {
	return [16]float32{
		mat[0][0], mat[1][0], mat[2][0], mat[3][0],
		mat[0][1], mat[1][1], mat[2][1], mat[3][1],
		mat[0][2], mat[1][2], mat[2][2], mat[3][2],
		mat[0][3], mat[1][3], mat[2][3], mat[3][3],
	}
}

// Equals reports whether the two matrices are exactly equal.
func (mat Matrix) Equals(other Matrix) bool {
	return mat == other
}

// NearEq reports whether the two matrices are elementwise almost equal.
func (mat Matrix) NearEq(other Matrix) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !math32.NearEq(mat[r][c], other[r][c]) {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether the matrix is exactly the identity.
func (mat Matrix) IsIdentity() bool {
	return mat == NewMatrix()
}

// String returns a human-readable representation of the matrix, one row per line.
func (mat Matrix) String() string {
	var b strings.Builder
	b.WriteString("{")
	for r := 0; r < 4; r++ {
		b.WriteString(" [ ")
		for c := 0; c < 4; c++ {
			b.WriteString(strconv.FormatFloat(float64(mat[r][c]), 'f', -1, 32))
			if c < 3 {
				b.WriteString(", ")
			}
		}
		b.WriteString(" ]")
	}
	b.WriteString(" }")
	return b.String()
}
