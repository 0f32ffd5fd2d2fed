package raymath

import (
	"testing"

	"github.com/solward/raymath/math32"
)

func testCamera() Camera3D {
	return NewCamera3D(NewVector3(0, 0, 5), Vector3Zero, 60)
}

func TestCameraDirections(t *testing.T) {

	cam := testCamera()

	if f := cam.Forward(); !vec3Approx(f, NewVector3(0, 0, -1)) {
		t.Fatal("forward came back wrong:", f)
	}

	if r := cam.Right(); !vec3Approx(r, Vector3UnitX) {
		t.Fatal("right came back wrong:", r)
	}

	cam.Up = NewVector3(0, 10, 0)
	if u := cam.UpNormalized(); u != Vector3UnitY {
		t.Fatal("up should come back normalized, got", u)
	}

}

func TestYawAroundTarget(t *testing.T) {

	cam := testCamera()

	cam.Yaw(RadiansQuarterTurn, true)

	if !vec3Approx(cam.Position, NewVector3(5, 0, 0)) {
		t.Fatal("a positive quarter-turn yaw around the target should orbit to +X, got", cam.Position)
	}

	if cam.Target != Vector3Zero {
		t.Fatal("orbiting must not move the target, got", cam.Target)
	}

}

func TestYawAroundPosition(t *testing.T) {

	cam := testCamera()

	cam.Yaw(RadiansQuarterTurn, false)

	if cam.Position != (Vector3{0, 0, 5}) {
		t.Fatal("yawing in place must not move the position, got", cam.Position)
	}

	if !vec3Approx(cam.Target, NewVector3(-5, 0, 5)) {
		t.Fatal("target came back wrong after in-place yaw:", cam.Target)
	}

}

func TestPitchLockView(t *testing.T) {

	cam := testCamera()

	// Far more than a quarter turn up; the lock clamps just short of vertical.
	cam.Pitch(3, true, false, false)

	angleToUp := cam.UpNormalized().Angle(cam.Target.Sub(cam.Position))

	if float32(angleToUp) < 0.0009 {
		t.Fatal("lockView let the view reach the up axis, angle:", angleToUp)
	}

	if float32(angleToUp) > 0.002 {
		t.Fatal("lockView should clamp close to the guard band, angle:", angleToUp)
	}

}

func TestPitchWithoutLock(t *testing.T) {

	cam := testCamera()

	cam.Pitch(RadiansHalfTurn, false, false, false)

	// A half-turn pitch flips the view vector entirely.
	if !vec3Approx(cam.Target, NewVector3(0, 0, 10)) {
		t.Fatal("unlocked pitch should somersault, got target", cam.Target)
	}

}

func TestRoll(t *testing.T) {

	cam := testCamera()

	cam.Roll(RadiansQuarterTurn)

	// Rolling a quarter turn around forward (-Z) tips up onto an X axis.
	if !approx(math32.Abs(cam.Up.X), 1) || !approx(cam.Up.Y, 0) {
		t.Fatal("roll came back wrong:", cam.Up)
	}

}

func TestMoveForwardInWorldPlane(t *testing.T) {

	cam := Camera3D{
		Position:   NewVector3(0, 1, 0),
		Target:     NewVector3(0, 0, -1),
		Up:         Vector3UnitY,
		FovY:       60,
		Projection: CameraPerspective,
	}

	cam.MoveForward(1, true)

	// The world-plane move flattens the direction, so height never changes and the
	// full distance is covered horizontally.
	if !approx(cam.Position.Y, 1) {
		t.Fatal("world-plane move changed the camera height:", cam.Position)
	}

	if !vec3Approx(cam.Position, NewVector3(0, 1, -1)) {
		t.Fatal("world-plane move came back wrong:", cam.Position)
	}

}

func TestMoveRightAndUp(t *testing.T) {

	cam := testCamera()

	cam.MoveRight(2, false)
	if !vec3Approx(cam.Position, NewVector3(2, 0, 5)) || !vec3Approx(cam.Target, NewVector3(2, 0, 0)) {
		t.Fatal("strafe should move position and target together, got", cam.Position, cam.Target)
	}

	cam.MoveUp(3)
	if !vec3Approx(cam.Position, NewVector3(2, 3, 5)) {
		t.Fatal("vertical move came back wrong:", cam.Position)
	}

}

func TestMoveToTarget(t *testing.T) {

	cam := testCamera()

	cam.MoveToTarget(-2)
	if d := cam.Position.Distance(cam.Target); !approx(d, 3) {
		t.Fatal("dolly towards the target came back wrong, distance:", d)
	}

	// Overshooting clamps to a minimal distance instead of crossing the target.
	cam.MoveToTarget(-100)
	d := cam.Position.Distance(cam.Target)
	if d <= 0 || d > 1e-5 {
		t.Fatal("overshooting dolly should clamp just short of the target, distance:", d)
	}

	if f := cam.Forward(); !vec3Approx(f, NewVector3(0, 0, -1)) {
		t.Fatal("forward should survive the clamp, got", f)
	}

}

func TestViewMatrix(t *testing.T) {

	cam := testCamera()
	view := cam.ViewMatrix()

	if got := cam.Target.Transform(view); !vec3Approx(got, NewVector3(0, 0, -5)) {
		t.Fatal("target should land straight ahead in view space, got", got)
	}

	if got := cam.Position.Transform(view); !vec3Approx(got, Vector3Zero) {
		t.Fatal("camera position should land at the view-space origin, got", got)
	}

}

func TestProjectionMatrixDispatch(t *testing.T) {

	cam := testCamera()

	persp := cam.ProjectionMatrix(16.0 / 9.0)
	if persp[3][2] != -1 {
		t.Fatal("perspective projection should carry the -1 w row")
	}

	cam.Projection = CameraOrthographic
	cam.FovY = 10

	ortho := cam.ProjectionMatrix(2)
	if ortho[3][3] != 1 {
		t.Fatal("orthographic projection should keep w at 1")
	}

	// The ortho box is sized from FovY: top is half the aperture, right is top
	// times the aspect ratio, so (10, 5) sits on the clip-space corner.
	corner := NewVector3(10, 5, -1).Transform(ortho)
	if !approx(corner.X, 1) || !approx(corner.Y, 1) {
		t.Fatal("ortho corner should project onto the clip boundary, got", corner)
	}

}

func TestUpdateCustomDoesNothing(t *testing.T) {

	cam := testCamera()
	before := cam

	cam.Update(CameraCustom, CameraInput{
		Movement:   Vector3One,
		Rotation:   Vector3One,
		MouseDelta: NewVector2(100, 100),
		Zoom:       3,
	}, 1)

	if cam != before {
		t.Fatal("custom mode must leave the camera untouched")
	}

}

func TestUpdateOrbital(t *testing.T) {

	cam := testCamera()

	cam.Update(CameraOrbital, CameraInput{}, 1)

	if d := cam.Position.Distance(cam.Target); !approx(d, 5) {
		t.Fatal("orbiting should preserve the distance to the target, got", d)
	}

	if !approx(cam.Position.Y, 0) {
		t.Fatal("orbiting around Y should stay in the horizontal plane, got", cam.Position)
	}

	if vec3Approx(cam.Position, NewVector3(0, 0, 5)) {
		t.Fatal("the orbital camera did not move")
	}

}

func TestUpdateFirstPersonMovement(t *testing.T) {

	cam := testCamera()

	cam.Update(CameraFirstPerson, CameraInput{Movement: NewVector3(0, 0, 1)}, 1)

	// One second of full forward input covers the move speed's per-second quantity.
	if !vec3Approx(cam.Position, NewVector3(0, 0, 5-5.4)) {
		t.Fatal("first-person forward movement came back wrong:", cam.Position)
	}

}

func TestUpdateFreeZoom(t *testing.T) {

	cam := testCamera()

	cam.Update(CameraFree, CameraInput{Zoom: 1}, 1)

	if d := cam.Position.Distance(cam.Target); !approx(d, 4) {
		t.Fatal("one wheel step should dolly one unit towards the target, got", d)
	}

}

func TestUpdateMouseLook(t *testing.T) {

	cam := testCamera()

	cam.Update(CameraFirstPerson, CameraInput{MouseDelta: NewVector2(100, 0)}, 1)

	// Moving the mouse right yaws the view right (negative angle around up).
	expected := testCamera()
	expected.Yaw(-CameraMouseSensitivity.Over(100), false)

	if !vec3Approx(cam.Target, expected.Target) {
		t.Fatal("mouse look came back wrong:", cam.Target, "expected", expected.Target)
	}

}
