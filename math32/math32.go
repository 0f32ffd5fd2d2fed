// math32 is a stand-in for the built-in math package, but the functions take float32s
// (or any comparable numbers, for the generic helpers) instead of float64s.
// The library's vectors, quaternions and matrices are float32-based, so routing every
// trig call through here keeps the conversions in one place.
package math32

import (
	"math"
)

const Pi = float32(math.Pi)

const MaxFloat32 = float32(math.MaxFloat32)

// Epsilon is the difference between 1 and the smallest float32 greater than 1.
// It doubles as the library's "minimum meaningful distance" for guards such as
// the camera's position/target separation clamp.
const Epsilon = float32(1.1920929e-07)

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in raymath use).
func ToRadians(degrees float32) float32 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / math.Pi * 180
}

// Min returns the minimum value out of two provided values.
func Min[number ~float32 | ~float64 | ~int | ~int32 | ~int64](x, y number) number {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[number ~float32 | ~float64 | ~int | ~int32 | ~int64](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number ~float32 | ~float64 | ~int | ~int32 | ~int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Sign returns the sign of the value given. If it's greater than 0, it returns 1. If less than 0, it returns -1. Otherwise, it returns 0.
func Sign(f float32) float32 {
	if f > 0 {
		return 1
	} else if f < 0 {
		return -1
	}
	return 0
}

// Lerp linearly interpolates from start towards target by the given amount.
// The amount is not clamped; values outside [0, 1] extrapolate.
func Lerp[number ~float32 | ~float64](start, target, amount number) number {
	return start + amount*(target-start)
}

// NormalizeBetween normalizes the input value within the input range, yielding 0 at start and 1 at end.
func NormalizeBetween(value, start, end float32) float32 {
	return (value - start) / (end - start)
}

// Remap remaps the input value from the input range to the output range.
func Remap(value, inputStart, inputEnd, outputStart, outputEnd float32) float32 {
	return outputStart + (outputEnd-outputStart)*(value-inputStart)/(inputEnd-inputStart)
}

// Wrap wraps the input value into the range [min, max].
func Wrap[number ~float32 | ~float64](value, min, max number) number {
	return value - (max-min)*number(math.Floor(float64((value-min)/(max-min))))
}

// NearEq reports whether two floats are almost equal, using a relative epsilon
// (absolute for values at or below 1).
func NearEq(a, b float32) bool {
	return Abs(a-b) <= Epsilon*Max(Max(Abs(a), Abs(b)), 1)
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return math.IsNaN(float64(x))
}

// IsInf returns if the provided float32 (x) is Inf in the direction of the sign provided.
func IsInf(x float32, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
func Acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// Asin returns the arcsine, in radians, of x.
func Asin(x float32) float32 {
	return float32(math.Asin(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// Mod returns the floating-point remainder of x/y, with the sign and magnitude behavior of math.Mod.
func Mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Copysign returns a value with the magnitude of f and the sign of sign.
func Copysign(f, sign float32) float32 {
	return float32(math.Copysign(float64(f), float64(sign)))
}
