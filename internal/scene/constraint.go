package scene

// Constraint filters deltas before a frame applies them. A constraint
// may reduce or reject a requested change; callers must act on the
// delta the frame reports back, not the one they requested.
type Constraint interface {
	FilterTranslation(t Vec, f *Frame) Vec
	FilterRotation(r Rotation, f *Frame) Rotation
}

// AxisConstraint restricts translation to a line and rotation to an
// axis. A zero axis leaves the corresponding motion free.
type AxisConstraint struct {
	TransAxis Vec
	RotAxis   Vec
}

// FilterTranslation projects t onto the translation axis.
func (c *AxisConstraint) FilterTranslation(t Vec, _ *Frame) Vec {
	if c.TransAxis.IsZero() {
		return t
	}
	return t.ProjectOn(c.TransAxis)
}

// FilterRotation forces r onto the rotation axis, keeping its angle.
func (c *AxisConstraint) FilterRotation(r Rotation, _ *Frame) Rotation {
	if c.RotAxis.IsZero() {
		return r
	}
	return NewAxisAngle(c.RotAxis, r.Angle())
}

// FixedConstraint rejects every translation and rotation.
type FixedConstraint struct{}

// FilterTranslation always returns the zero vector.
func (FixedConstraint) FilterTranslation(Vec, *Frame) Vec { return Vec{} }

// FilterRotation always returns the identity.
func (FixedConstraint) FilterRotation(Rotation, *Frame) Rotation {
	return IdentityRotation()
}
