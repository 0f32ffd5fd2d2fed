package raymath

import (
	"github.com/solward/raymath/math32"
)

// CameraProjection selects how a Camera3D projects the scene onto the screen.
type CameraProjection int

const (
	CameraPerspective CameraProjection = iota
	CameraOrthographic
)

// CameraMode selects the control scheme Update applies.
type CameraMode int

const (
	// CameraCustom leaves the camera entirely to the caller; Update does nothing.
	CameraCustom CameraMode = iota
	CameraFree
	// CameraOrbital circles around the target on its own; zoom is still supported.
	CameraOrbital
	CameraFirstPerson
	CameraThirdPerson
)

// Camera3D defines a camera position and orientation in 3D space, plus how it projects.
type Camera3D struct {
	Position Vector3
	// Target is the point the camera looks at.
	Target Vector3
	// Up is the camera's up vector (rotation over its axis).
	Up Vector3
	// FovY is the field-of-view aperture in Y in perspective projection; in
	// orthographic projection it is used as the near-plane width.
	FovY       Degrees
	Projection CameraProjection
}

// NewCamera3D returns a perspective camera at the given position looking at the given
// target, with Y up.
func NewCamera3D(position, target Vector3, fovY Degrees) Camera3D {
	return Camera3D{
		Position:   position,
		Target:     target,
		Up:         Vector3UnitY,
		FovY:       fovY,
		Projection: CameraPerspective,
	}
}

// Default control rates, tuned to raylib's camera feel. Declared as Ratios so every
// call site scales them explicitly: CameraMoveSpeed.Over(dt),
// CameraMouseSensitivity.Over(mouseDelta.X), and so on.
var (
	CameraMoveSpeed        = Per(Units(5.4), Seconds(1))
	CameraRotationSpeed    = Per(Radians(1.8), Seconds(1))
	CameraPanSpeed         = Per(Units(0.2), Pixels(1))
	CameraMouseSensitivity = Per(Radians(0.003), Pixels(1))
	CameraOrbitalSpeed     = Per(Radians(0.5), Seconds(1))
)

// View culling planes used by ProjectionMatrix.
const (
	cameraCullDistanceNear = 0.01
	cameraCullDistanceFar  = 1000.0
)

// Forward returns the normalized direction the camera looks towards.
func (cam *Camera3D) Forward() Direction3 {
	return cam.Target.Sub(cam.Position).Normalize()
}

// UpNormalized returns the camera's up vector, normalized.
func (cam *Camera3D) UpNormalized() Direction3 {
	return cam.Up.Normalize()
}

// Right returns the normalized direction to the camera's right.
func (cam *Camera3D) Right() Direction3 {
	return cam.Forward().Cross(cam.UpNormalized()).Normalize()
}

// MoveForward moves the camera along its forward direction. With moveInWorldPlane the
// direction's Y component is zeroed and renormalized first, so walking while looking
// down does not push the camera into the ground.
func (cam *Camera3D) MoveForward(distance Units, moveInWorldPlane bool) {
	forward := cam.Forward()

	if moveInWorldPlane {
		forward.Y = 0
		forward = forward.Normalize()
	}

	forward = forward.Scale(float32(distance))

	cam.Position = cam.Position.Add(forward)
	cam.Target = cam.Target.Add(forward)
}

// MoveUp moves the camera along its up direction.
func (cam *Camera3D) MoveUp(distance Units) {
	up := cam.UpNormalized().Scale(float32(distance))

	cam.Position = cam.Position.Add(up)
	cam.Target = cam.Target.Add(up)
}

// MoveRight moves the camera along its right direction; moveInWorldPlane behaves as in
// MoveForward.
func (cam *Camera3D) MoveRight(distance Units, moveInWorldPlane bool) {
	right := cam.Right()

	if moveInWorldPlane {
		right.Y = 0
		right = right.Normalize()
	}

	right = right.Scale(float32(distance))

	cam.Position = cam.Position.Add(right)
	cam.Target = cam.Target.Add(right)
}

// MoveToTarget moves the camera towards (negative delta) or away from its target along
// the view direction. The position never reaches the target: the distance is clamped to
// a minimum of math32.Epsilon so Forward stays well defined.
func (cam *Camera3D) MoveToTarget(delta Units) {
	distance := math32.Max(cam.Position.Distance(cam.Target)+float32(delta), math32.Epsilon)
	cam.Position = cam.Target.Add(cam.Forward().Scale(-distance))
}

// Yaw rotates the camera around its up vector; yaw is "looking left and right".
// With rotateAroundTarget the position orbits the target; otherwise the target swings
// around the position.
func (cam *Camera3D) Yaw(angle Radians, rotateAroundTarget bool) {
	view := cam.Target.Sub(cam.Position).RotateByAxisAngle(cam.UpNormalized(), angle)

	if rotateAroundTarget {
		cam.Position = cam.Target.Sub(view)
	} else {
		cam.Target = cam.Position.Add(view)
	}
}

// Pitch rotates the camera around its right vector; pitch is "looking up and down".
//   - lockView clamps the angle so the view stops just short of straight up or down,
//     preventing somersaults
//   - rotateAroundTarget orbits the position around the target instead of swinging the
//     target around the position
//   - rotateUp also rotates the up direction, typically wanted only in free mode
func (cam *Camera3D) Pitch(angle Radians, lockView, rotateAroundTarget, rotateUp bool) {
	up := cam.UpNormalized()
	view := cam.Target.Sub(cam.Position)

	if lockView {
		// Leave a guard band of a milliradian on either side so the view vector
		// never becomes collinear with up.
		maxAngleUp := up.Angle(view) - 0.001
		maxAngleDown := -up.Negate().Angle(view) + 0.001

		angle = math32.Clamp(angle, maxAngleDown, maxAngleUp)
	}

	right := cam.Right()
	view = view.RotateByAxisAngle(right, angle)

	if rotateAroundTarget {
		cam.Position = cam.Target.Sub(view)
	} else {
		cam.Target = cam.Position.Add(view)
	}

	if rotateUp {
		cam.Up = cam.Up.RotateByAxisAngle(right, angle)
	}
}

// Roll rotates the camera around its forward vector; roll is "tilting your head
// sideways".
func (cam *Camera3D) Roll(angle Radians) {
	cam.Up = cam.Up.RotateByAxisAngle(cam.Forward(), angle)
}

// ViewMatrix returns the camera's look-at view matrix.
func (cam *Camera3D) ViewMatrix() Matrix {
	return MatrixLookAt(cam.Position, cam.Target, cam.UpNormalized())
}

// ProjectionMatrix returns the camera's projection matrix for the given aspect ratio.
// Orthographic projection sizes the clipping box from FovY: top is half the aperture,
// right is top scaled by the aspect ratio.
func (cam *Camera3D) ProjectionMatrix(aspect float64) Matrix {
	if cam.Projection == CameraOrthographic {
		top := float64(cam.FovY) / 2
		right := top * aspect
		return MatrixOrtho(-right, right, -top, top, cameraCullDistanceNear, cameraCullDistanceFar)
	}

	return MatrixPerspective(float64(cam.FovY.ToRadians()), aspect, cameraCullDistanceNear, cameraCullDistanceFar)
}

// CameraInput carries one frame's worth of raw control deltas for Update. Movement and
// Rotation are unscaled axis values, typically -1, 0 or 1 from key state; MouseDelta is
// the mouse motion in pixels; Zoom is in wheel steps.
type CameraInput struct {
	// Movement axes: X strafes right, Y moves up, Z moves forward.
	Movement Vector3
	// Rotation axes: X pitches up, Y yaws left, Z rolls clockwise.
	Rotation Vector3
	MouseDelta Vector2
	Zoom       float32
}

// Update advances the camera one frame under the given mode. Custom mode leaves the
// camera untouched; orbital mode circles the target at CameraOrbitalSpeed; the other
// modes apply the input's rotation and movement axes scaled by the default rates and
// the elapsed time.
func (cam *Camera3D) Update(mode CameraMode, input CameraInput, dt Seconds) {
	if mode == CameraCustom {
		return
	}

	moveInWorldPlane := mode == CameraFirstPerson || mode == CameraThirdPerson
	rotateAroundTarget := mode == CameraThirdPerson || mode == CameraOrbital
	lockView := true
	rotateUp := false

	if mode == CameraOrbital {
		rotation := MatrixRotate(cam.UpNormalized(), CameraOrbitalSpeed.Over(dt))
		view := cam.Position.Sub(cam.Target).Transform(rotation)
		cam.Position = cam.Target.Add(view)
	} else {
		rotationStep := CameraRotationSpeed.Over(dt)
		if input.Rotation.X != 0 {
			cam.Pitch(rotationStep*Radians(input.Rotation.X), lockView, rotateAroundTarget, rotateUp)
		}
		if input.Rotation.Y != 0 {
			cam.Yaw(rotationStep*Radians(input.Rotation.Y), rotateAroundTarget)
		}
		if input.Rotation.Z != 0 {
			cam.Roll(rotationStep * Radians(input.Rotation.Z))
		}

		cam.Yaw(-CameraMouseSensitivity.Over(Pixels(input.MouseDelta.X)), rotateAroundTarget)
		cam.Pitch(-CameraMouseSensitivity.Over(Pixels(input.MouseDelta.Y)), lockView, rotateAroundTarget, rotateUp)

		moveStep := CameraMoveSpeed.Over(dt)
		if input.Movement.Z != 0 {
			cam.MoveForward(moveStep*Units(input.Movement.Z), moveInWorldPlane)
		}
		if input.Movement.X != 0 {
			cam.MoveRight(moveStep*Units(input.Movement.X), moveInWorldPlane)
		}
		if input.Movement.Y != 0 && mode == CameraFree {
			cam.MoveUp(moveStep * Units(input.Movement.Y))
		}
	}

	if mode == CameraFree || mode == CameraThirdPerson || mode == CameraOrbital {
		cam.MoveToTarget(Units(-input.Zoom))
	}
}
