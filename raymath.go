package raymath

// raymath is a 3D transform math and camera library: float32 vectors, quaternions and
// 4x4 matrices on a right-handed, OpenGL-style coordinate system, unit-typed angles and
// rates, and a raylib-flavored Camera3D built on top of them.

// World axis directions on the right-handed coordinate system: X points right, Y points
// up, Z points towards the viewer.
var (
	WorldRight    = Vector3UnitX
	WorldUp       = Vector3UnitY
	WorldBackward = Vector3UnitZ
	WorldLeft     = Vector3UnitX.Negate()
	WorldDown     = Vector3UnitY.Negate()
	WorldForward  = Vector3UnitZ.Negate()
)
