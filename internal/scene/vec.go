package scene

import (
	"fmt"
	"math"
)

// Vec is a 3-component vector. 2D scenes leave Z at zero.
type Vec struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by k.
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of v and o.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the vector's length.
func (v Vec) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns a unit vector in v's direction, or the zero vector
// when v has no length.
func (v Vec) Normalize() Vec {
	n := v.Norm()
	if n == 0 {
		return Vec{}
	}
	return v.Scale(1 / n)
}

// IsZero reports whether every component is zero.
func (v Vec) IsZero() bool { return v == Vec{} }

// ProjectOn returns the projection of v onto axis.
func (v Vec) ProjectOn(axis Vec) Vec {
	u := axis.Normalize()
	return u.Scale(v.Dot(u))
}

// String returns "(x, y, z)".
func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Rotation is a unit quaternion. 2D scenes rotate about the Z axis.
type Rotation struct {
	X, Y, Z, W float64
}

// IdentityRotation returns the no-op rotation.
func IdentityRotation() Rotation { return Rotation{W: 1} }

// NewAxisAngle builds a rotation of angle radians about axis.
func NewAxisAngle(axis Vec, angle float64) Rotation {
	u := axis.Normalize()
	if u.IsZero() {
		return IdentityRotation()
	}
	s := math.Sin(angle / 2)
	return Rotation{u.X * s, u.Y * s, u.Z * s, math.Cos(angle / 2)}
}

// Compose returns the rotation applying o first, then r.
func (r Rotation) Compose(o Rotation) Rotation {
	return Rotation{
		r.W*o.X + r.X*o.W + r.Y*o.Z - r.Z*o.Y,
		r.W*o.Y + r.Y*o.W + r.Z*o.X - r.X*o.Z,
		r.W*o.Z + r.Z*o.W + r.X*o.Y - r.Y*o.X,
		r.W*o.W - r.X*o.X - r.Y*o.Y - r.Z*o.Z,
	}
}

// Inverse returns the opposite rotation.
func (r Rotation) Inverse() Rotation {
	return Rotation{-r.X, -r.Y, -r.Z, r.W}
}

// Rotate applies r to v.
func (r Rotation) Rotate(v Vec) Vec {
	q := Vec{r.X, r.Y, r.Z}
	t := q.Cross(v).Scale(2)
	return v.Add(t.Scale(r.W)).Add(q.Cross(t))
}

// Angle returns the rotation angle in radians, in [0, 2π).
func (r Rotation) Angle() float64 {
	w := math.Max(-1, math.Min(1, r.W))
	return 2 * math.Acos(w)
}

// Axis returns the rotation axis, or the zero vector for the identity.
func (r Rotation) Axis() Vec {
	return Vec{r.X, r.Y, r.Z}.Normalize()
}

// ScaleAngle returns the rotation about the same axis with the angle
// multiplied by k. Used by inertial decay.
func (r Rotation) ScaleAngle(k float64) Rotation {
	return NewAxisAngle(r.Axis(), r.Angle()*k)
}

// IsIdentity reports whether r rotates by (approximately) nothing.
func (r Rotation) IsIdentity() bool {
	return math.Abs(r.Angle()) < 1e-9 || math.Abs(r.Angle()-2*math.Pi) < 1e-9
}
