package raymath

import (
	"testing"
)

func BenchmarkMatrixInversion(b *testing.B) {

	b.ReportAllocs()

	mat := MatrixRotate(NewVector3(0, 1, 0.2), 0.24).Mult(MatrixTranslate(1, 4, -12))

	for i := 0; i < b.N; i++ {
		mat.Invert()
	}

}

func BenchmarkMatrixMultiply(b *testing.B) {

	b.ReportAllocs()

	m1 := MatrixRotateXYZ(0.1, 0.2, 0.3)
	m2 := MatrixTranslate(1, 4, -12)

	for i := 0; i < b.N; i++ {
		m1 = m1.Mult(m2)
	}

}

func TestMatrixInversion(t *testing.T) {

	matrices := []Matrix{
		MatrixRotate(NewVector3(0, 1, 0), 0.1),
		MatrixTranslate(-10, 0.1, 3232.1976),
		MatrixScale(10, 0.1, -0.45),
		MatrixScale(10, 1, 0.5).Mult(MatrixRotate(NewVector3(1, 0, 0.1), 0.334)).Mult(MatrixTranslate(-1, -1, -1)),
	}

	for i, mat := range matrices {

		if !mat.Mult(mat.Invert()).NearEq(NewMatrix()) {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.Invert() is not identity")
		}

	}

}

func TestSingularInversionPropagatesNonFinite(t *testing.T) {

	inv := MatrixScale(1, 1, 0).Invert()

	finite := true
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if inv[r][c] != inv[r][c] || inv[r][c] > 1e38 || inv[r][c] < -1e38 {
				finite = false
			}
		}
	}

	if finite {
		t.Fatal("inverting a singular matrix should produce Inf or NaN elements, got", inv)
	}

}

func TestMultOrder(t *testing.T) {

	rotate := MatrixRotateY(RadiansQuarterTurn)
	translate := MatrixTranslate(10, 0, 0)

	// a.Mult(b) applies a first: rotate, then translate.
	p := Vector3UnitX.Transform(rotate.Mult(translate))
	if !vec3Approx(p, NewVector3(10, 0, -1)) {
		t.Fatal("rotate-then-translate came back wrong:", p)
	}

	// The other order translates first, so the offset gets rotated too.
	p = Vector3UnitX.Transform(translate.Mult(rotate))
	if !vec3Approx(p, NewVector3(0, 0, -11)) {
		t.Fatal("translate-then-rotate came back wrong:", p)
	}

}

func TestDeterminant(t *testing.T) {

	if det := MatrixRotate(NewVector3(0.3, 1, -0.2), 1.234).Determinant(); !approx(det, 1) {
		t.Fatal("a pure rotation should have determinant 1, got", det)
	}

	if det := MatrixScale(2, 3, 4).Determinant(); !approx(det, 24) {
		t.Fatal("a scale matrix's determinant should be the product of its factors, got", det)
	}

	if det := MatrixScale(1, 1, 0).Determinant(); det != 0 {
		t.Fatal("a flattening matrix should have determinant 0, got", det)
	}

}

func TestTransposeAndTrace(t *testing.T) {

	mat := MatrixTranslate(1, 2, 3)

	tr := mat.Transpose()
	if tr[3][0] != 1 || tr[3][1] != 2 || tr[3][2] != 3 {
		t.Fatal("transpose should move translation into the bottom row")
	}

	if mat.Trace() != 4 {
		t.Fatal("trace of a translation matrix should be 4, got", mat.Trace())
	}

	if !mat.Transpose().Transpose().Equals(mat) {
		t.Fatal("double transposition should round-trip exactly")
	}

}

func TestToFloats(t *testing.T) {

	mat := MatrixTranslate(1, 2, 3)
	floats := mat.ToFloats()

	// Column-major flattening puts translation at elements 12..14.
	if floats[12] != 1 || floats[13] != 2 || floats[14] != 3 || floats[15] != 1 {
		t.Fatal("translation landed at the wrong flat indices:", floats)
	}

	// Element N is storage [N%4][N/4].
	rot := MatrixRotateXYZ(0.3, -0.7, 1.1)
	floats = rot.ToFloats()
	for n := 0; n < 16; n++ {
		if floats[n] != rot[n%4][n/4] {
			t.Fatal("flat element", n, "does not match [N%4][N/4]")
		}
	}

}

func TestLookAt(t *testing.T) {

	view := MatrixLookAt(NewVector3(0, 0, 5), Vector3Zero, Vector3UnitY)

	// The eye maps to the origin and the target ends up straight ahead on -Z.
	if eye := NewVector3(0, 0, 5).Transform(view); !vec3Approx(eye, Vector3Zero) {
		t.Fatal("eye position should map to the origin, got", eye)
	}

	if target := Vector3Zero.Transform(view); !vec3Approx(target, NewVector3(0, 0, -5)) {
		t.Fatal("target should map to (0, 0, -5), got", target)
	}

}

func TestDecompose(t *testing.T) {

	rotation := QuaternionFromAxisAngle(NewVector3(0, 1, 0.5), 0.8)

	trs := MatrixScale(2, 3, 4).
		Mult(rotation.ToMatrix()).
		Mult(MatrixTranslate(5, -6, 7))

	translation, rot, scale := trs.Decompose()

	if !vec3Approx(translation, NewVector3(5, -6, 7)) {
		t.Fatal("translation came back wrong:", translation)
	}

	if !vec3Approx(scale, NewVector3(2, 3, 4)) {
		t.Fatal("scale came back wrong:", scale)
	}

	if !quatApprox(rot, rotation) {
		t.Fatal("rotation came back wrong:", rot)
	}

}

func TestDecomposeNegativeDeterminant(t *testing.T) {

	_, _, scale := MatrixScale(-2, 3, 4).Decompose()

	if scale.X >= 0 && scale.Y >= 0 && scale.Z >= 0 {
		t.Fatal("a mirroring matrix should decompose with negated scale, got", scale)
	}

}

func TestDecomposeDegenerate(t *testing.T) {

	_, rot, _ := MatrixScale(0, 0, 0).Decompose()

	if rot != QuaternionIdentity {
		t.Fatal("a degenerate matrix should decompose with identity rotation, got", rot)
	}

}

func TestProjectionConventions(t *testing.T) {

	persp := MatrixPerspective(float64(Degrees(60).ToRadians()), 16.0/9.0, 0.01, 1000)

	if persp[3][2] != -1 || persp[3][3] != 0 {
		t.Fatal("perspective projection should have the -1/0 bottom row of OpenGL clip space")
	}

	ortho := MatrixOrtho(-8, 8, -4.5, 4.5, 0.01, 1000)

	if ortho[3][3] != 1 {
		t.Fatal("orthographic projection should keep w at 1")
	}

	// The center of the ortho box projects to the center of clip space in X and Y.
	center := NewVector3(0, 0, -1).Transform(ortho)
	if !approx(center.X, 0) || !approx(center.Y, 0) {
		t.Fatal("ortho center should project to clip center, got", center)
	}

}

func TestMatrixIdentity(t *testing.T) {

	if !NewMatrix().IsIdentity() {
		t.Fatal("NewMatrix should be the identity")
	}

	if MatrixTranslate(1, 0, 0).IsIdentity() {
		t.Fatal("a translation is not the identity")
	}

}
