package raymath

import (
	"github.com/solward/raymath/math32"
)

// This file defines the unit wrapper types used across the library. Each unit is a
// distinct named float32 type, so mixing kinds (adding Degrees to Radians, or treating
// a Percent as a Seconds) is a compile-time error; only same-kind arithmetic and
// conversion through the explicit helpers below are possible.

// Radians represents an angle in radians, nominally within [-2pi, 2pi].
type Radians float32

// Degrees represents an angle in degrees, nominally within [-360, 360].
type Degrees float32

// Percent represents a normalized amount, nominally within [0, 1].
// Interpolation amounts are Percents; values outside [0, 1] extrapolate.
type Percent float32

// Seconds represents a duration of time in seconds.
type Seconds float32

// Units represents a distance in world units.
type Units float32

// Pixels represents a distance in screen pixels.
type Pixels float32

// Named fractions of a full turn for each angular kind.
const (
	RadiansZero          Radians = 0
	RadiansSixteenthTurn Radians = Radians(math32.Pi) / 8
	RadiansTwelfthTurn   Radians = Radians(math32.Pi) / 6
	RadiansEighthTurn    Radians = Radians(math32.Pi) / 4
	RadiansQuarterTurn   Radians = Radians(math32.Pi) / 2
	RadiansHalfTurn      Radians = Radians(math32.Pi)
	RadiansFullTurn      Radians = Radians(math32.Pi) * 2
)

const (
	DegreesZero          Degrees = 0
	DegreesSixteenthTurn Degrees = 22.5
	DegreesTwelfthTurn   Degrees = 30
	DegreesEighthTurn    Degrees = 45
	DegreesQuarterTurn   Degrees = 90
	DegreesHalfTurn      Degrees = 180
	DegreesFullTurn      Degrees = 360
)

// ToDegrees converts the angle to degrees.
func (r Radians) ToDegrees() Degrees {
	return Degrees(math32.ToDegrees(float32(r)))
}

// ToRadians converts the angle to radians.
func (d Degrees) ToRadians() Radians {
	return Radians(math32.ToRadians(float32(d)))
}

// Sin returns the sine of the angle.
func (r Radians) Sin() float32 { return math32.Sin(float32(r)) }

// Cos returns the cosine of the angle.
func (r Radians) Cos() float32 { return math32.Cos(float32(r)) }

// Tan returns the tangent of the angle.
func (r Radians) Tan() float32 { return math32.Tan(float32(r)) }

// SinCos returns both the sine and the cosine of the angle.
func (r Radians) SinCos() (sin, cos float32) {
	return r.Sin(), r.Cos()
}

// wrappingAdd adds two angles and wraps the sum back into [-full, full].
func wrappingAdd[T ~float32](a, b, full T) T {
	return math32.Wrap(a+b, -full, full)
}

// WrappingAdd adds the two angles while keeping the sum within [-2pi, 2pi].
func (r Radians) WrappingAdd(other Radians) Radians {
	return wrappingAdd(r, other, RadiansFullTurn)
}

// WrappingAdd adds the two angles while keeping the sum within [-360, 360].
func (d Degrees) WrappingAdd(other Degrees) Degrees {
	return wrappingAdd(d, other, DegreesFullTurn)
}

// IsPositiveNormal reports whether the angle lies within [0, 2pi].
func (r Radians) IsPositiveNormal() bool { return r >= RadiansZero && r <= RadiansFullTurn }

// IsNegativeNormal reports whether the angle lies within [-2pi, 0].
func (r Radians) IsNegativeNormal() bool { return r >= -RadiansFullTurn && r <= RadiansZero }

// IsSignedNormal reports whether the angle lies within [-pi, pi].
func (r Radians) IsSignedNormal() bool { return r >= -RadiansHalfTurn && r <= RadiansHalfTurn }

// IsPositiveNormal reports whether the angle lies within [0, 360].
func (d Degrees) IsPositiveNormal() bool { return d >= DegreesZero && d <= DegreesFullTurn }

// IsNegativeNormal reports whether the angle lies within [-360, 0].
func (d Degrees) IsNegativeNormal() bool { return d >= -DegreesFullTurn && d <= DegreesZero }

// IsSignedNormal reports whether the angle lies within [-180, 180].
func (d Degrees) IsSignedNormal() bool { return d >= -DegreesHalfTurn && d <= DegreesHalfTurn }

// Ratio pairs a quantity of one unit with the span of another unit it applies over,
// making rates explicit in the type: a Ratio[Units, Seconds] is "world units per
// so-many seconds". The camera's tunable speeds are declared this way so frame-time
// scaling is visible at every call site (speed.Over(dt)).
type Ratio[T ~float32, U ~float32] struct {
	Quantity T
	Span     U
}

// Per pairs a quantity with the unit span it applies over.
func Per[T ~float32, U ~float32](quantity T, span U) Ratio[T, U] {
	return Ratio[T, U]{Quantity: quantity, Span: span}
}

// PerUnit returns the rate as a quantity per single unit of U.
func (r Ratio[T, U]) PerUnit() T {
	return T(float32(r.Quantity) / float32(r.Span))
}

// Over scales the rate across the given span, e.g. moveSpeed.Over(deltaTime).
func (r Ratio[T, U]) Over(span U) T {
	return T(float32(r.PerUnit()) * float32(span))
}
