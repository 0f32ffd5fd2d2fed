package raymath

import (
	"testing"

	"github.com/solward/raymath/math32"
)

func TestWrappingAdd(t *testing.T) {

	// Wrapping folds sums back into [-FULL, FULL]; overshooting the positive bound
	// lands on the negative side.
	if got := Degrees(350).WrappingAdd(20); got != -350 {
		t.Fatal("350 + 20 should wrap to -350 degrees, got", got)
	}

	if got := Degrees(-350).WrappingAdd(-20); got != 350 {
		t.Fatal("-350 + -20 should wrap to 350 degrees, got", got)
	}

	if got := Degrees(90).WrappingAdd(45); got != 135 {
		t.Fatal("an in-range sum should pass through unchanged, got", got)
	}

	if got := RadiansHalfTurn.WrappingAdd(RadiansFullTurn); !approx(float32(got), -math32.Pi) {
		t.Fatal("pi + 2pi should wrap to -pi, got", got)
	}

}

func TestAngleConversion(t *testing.T) {

	if got := Degrees(180).ToRadians(); !approx(float32(got), math32.Pi) {
		t.Fatal("180 degrees should be pi radians, got", got)
	}

	if got := RadiansQuarterTurn.ToDegrees(); !approx(float32(got), 90) {
		t.Fatal("a quarter turn should be 90 degrees, got", got)
	}

	roundTrip := Degrees(123.4).ToRadians().ToDegrees()
	if !approx(float32(roundTrip), 123.4) {
		t.Fatal("degree round-trip drifted to", roundTrip)
	}

}

func TestTurnConstantsAgree(t *testing.T) {

	radians := []Radians{
		RadiansZero, RadiansSixteenthTurn, RadiansTwelfthTurn,
		RadiansEighthTurn, RadiansQuarterTurn, RadiansHalfTurn, RadiansFullTurn,
	}
	degrees := []Degrees{
		DegreesZero, DegreesSixteenthTurn, DegreesTwelfthTurn,
		DegreesEighthTurn, DegreesQuarterTurn, DegreesHalfTurn, DegreesFullTurn,
	}

	for i := range radians {
		if got := radians[i].ToDegrees(); !approx(float32(got), float32(degrees[i])) {
			t.Fatal("turn constant #", i, "disagrees between kinds:", radians[i], "vs", degrees[i])
		}
	}

}

func TestNormalPredicates(t *testing.T) {

	if !Degrees(360).IsPositiveNormal() || Degrees(361).IsPositiveNormal() {
		t.Fatal("positive normal bound check failed")
	}

	if !Degrees(-360).IsNegativeNormal() || Degrees(1).IsNegativeNormal() {
		t.Fatal("negative normal bound check failed")
	}

	if !Radians(-math32.Pi).IsSignedNormal() || Radians(4).IsSignedNormal() {
		t.Fatal("signed normal bound check failed")
	}

}

func TestRatio(t *testing.T) {

	speed := Per(Units(5.4), Seconds(1))

	if got := speed.Over(Seconds(2)); !approx(float32(got), 10.8) {
		t.Fatal("5.4 units per second over 2 seconds should be 10.8, got", got)
	}

	sensitivity := Per(Radians(0.003), Pixels(1))

	if got := sensitivity.Over(Pixels(100)); !approx(float32(got), 0.3) {
		t.Fatal("sensitivity over 100 pixels came back wrong:", got)
	}

	perFrame := Per(Radians(1.8), Seconds(60))
	if got := perFrame.PerUnit(); !approx(float32(got), 0.03) {
		t.Fatal("per-unit rate came back wrong:", got)
	}

}

func TestSinCos(t *testing.T) {

	sin, cos := RadiansQuarterTurn.SinCos()

	if !approx(sin, 1) || !approx(cos, 0) {
		t.Fatal("quarter-turn sin/cos came back wrong:", sin, cos)
	}

}
