package raymath

// Ray represents a ray cast from a position in a direction. The direction is a
// Direction3 and should be normalized so distances along the ray are in world units.
type Ray struct {
	Position  Vector3
	Direction Direction3
}

// NewRay creates a new Ray from the given position towards the given direction, which
// is normalized.
func NewRay(position, direction Vector3) Ray {
	return Ray{Position: position, Direction: direction.Normalize()}
}

// At returns the point on the ray at the given distance from its origin.
func (r Ray) At(distance Units) Vector3 {
	return r.Position.Add(r.Direction.Scale(float32(distance)))
}

// RayCollision describes the result of a ray intersection test. When Hit is false the
// remaining fields are meaningless.
type RayCollision struct {
	Hit      bool
	Distance Units
	Point    Vector3
	Normal   Direction3
}
