package scene

import (
	"math"

	"github.com/dshills/interact/internal/input/event"
	"github.com/dshills/interact/internal/input/profile"
)

// Env is the read-only scene context a Body interacts against, plus
// the host's visual-hint sinks.
type Env interface {
	Is3D() bool
	Radius() float64
	UpVector() Vec
	RotateHint(on bool)
	ZoomHint(on bool)
}

// Machine consumes events on a Body's behalf. It is satisfied by the
// gesture controller; injecting it keeps this package free of a
// dependency on the machine's package.
type Machine interface {
	Handle(ev event.Event) bool
	Active() bool
}

// Interaction sensitivities, in radians or scene units per pixel.
const (
	rotateSensitivity    = 0.01
	translateSensitivity = 1.0
	scaleSensitivity     = 0.01
	nudgeStep            = 2.0
	nudgeAngle           = math.Pi / 36
)

// Body is an interactive scene element: a constrained frame plus the
// binding profile and per-action behavior that make it a grab target.
// The eye flag marks the viewpoint; some actions (region zoom, flight)
// are eye-specific.
type Body struct {
	*Frame

	// PixelTest answers "does this screen position land on me". The
	// host supplies it from its picking buffer; without one the body
	// is invisible to position-based hit-testing.
	PixelTest func(x, y float64) bool

	env      Env
	eye      bool
	prof     *profile.Profile
	machine  Machine
	flySpeed float64
	damping  float64
	lastSpin Rotation
}

// NewBody creates a body in env. Eye bodies treat region zoom and
// flight specially.
func NewBody(env Env, eye bool) *Body {
	return &Body{
		Frame:    NewFrame(),
		env:      env,
		eye:      eye,
		prof:     profile.New(),
		flySpeed: env.Radius() * 0.01,
		lastSpin: IdentityRotation(),
	}
}

// Profile returns the body's binding table.
func (b *Body) Profile() *profile.Profile { return b.prof }

// SetMachine injects the gesture machine that sequences this body's
// motion events.
func (b *Body) SetMachine(m Machine) { b.machine = m }

// IsEye reports whether the body is the viewpoint.
func (b *Body) IsEye() bool { return b.eye }

// Damping returns the continuous damping factor in [0, 1).
func (b *Body) Damping() float64 { return b.damping }

// SetDamping sets the continuous damping factor. Zero re-enables
// explicit inertial spin.
func (b *Body) SetDamping(d float64) { b.damping = d }

// FlySpeed returns the forward speed used by flight gestures.
func (b *Body) FlySpeed() float64 { return b.flySpeed }

// SetFlySpeed sets the forward speed.
func (b *Body) SetFlySpeed(v float64) { b.flySpeed = v }

// Radius returns the scene scale.
func (b *Body) Radius() float64 { return b.env.Radius() }

// SetRotateHint forwards the screen-rotate affordance to the host.
func (b *Body) SetRotateHint(on bool) { b.env.RotateHint(on) }

// SetZoomHint forwards the region-zoom affordance to the host.
func (b *Body) SetZoomHint(on bool) { b.env.ZoomHint(on) }

// SpinRotation returns the rotation increment of the most recent
// rotation-family action.
func (b *Body) SpinRotation() Rotation { return b.lastSpin }

// ApplyRotation applies one inertial rotation increment through the
// frame's constraint.
func (b *Body) ApplyRotation(r Rotation) { b.Rotate(r) }

// FlightStep advances the body along its forward axis by the given
// amount.
func (b *Body) FlightStep(forward float64) {
	dir := b.Orientation().Rotate(Vec{Z: -1})
	b.Translate(dir.Scale(forward))
}

// UpdateUpVector re-levels the body so its local Y axis matches the
// scene up vector.
func (b *Body) UpdateUpVector() {
	up := b.env.UpVector()
	if up.IsZero() {
		return
	}
	// Rotate composes in local coordinates, so express the scene up
	// vector locally first.
	localUp := b.Orientation().Inverse().Rotate(up)
	b.Rotate(rotationBetween(Vec{Y: 1}, localUp))
}

// HitTest reports whether the event's screen position lands on the
// body. Relative motion hits through the cursor position its source
// recorded; without one it never hits.
func (b *Body) HitTest(ev event.Event) bool {
	if b.PixelTest == nil {
		return false
	}
	switch e := ev.(type) {
	case event.Click:
		return b.PixelTest(e.X, e.Y)
	case *event.Motion:
		if e.Absolute() {
			if m, ok := e.DOF2(); ok {
				return b.PixelTest(m.X(), m.Y())
			}
			return false
		}
		if x, y, ok := e.At(); ok {
			return b.PixelTest(x, y)
		}
	}
	return false
}

// PerformInteraction consumes one event: the gesture machine first,
// then a direct profile lookup for single-phase events it declines.
func (b *Body) PerformInteraction(ev event.Event) {
	if b.machine != nil {
		b.machine.Handle(ev)
		return
	}
	if bind, ok := b.prof.Lookup(ev); ok {
		if p, ok := bind.Performer(); ok {
			p.Perform(bind.Action, ev)
			return
		}
		b.Perform(bind.Action, ev)
	}
}

// GestureActive reports whether a motion gesture is in progress,
// which makes an agent grab sticky.
func (b *Body) GestureActive() bool {
	return b.machine != nil && b.machine.Active()
}

// ZoomOnRegion fits the body's view to the rectangle spanned by the
// first and last event of a region drag.
func (b *Body) ZoomOnRegion(init, end *event.Motion) {
	if init == nil || end == nil {
		return
	}
	w, h := regionExtent(init, end)
	span := math.Max(math.Abs(w), math.Abs(h))
	if span == 0 {
		return
	}
	cx, cy := regionCenter(init, end)
	b.Translate(Vec{X: cx * translateSensitivity, Y: cy * translateSensitivity})
	b.Scale(b.env.Radius() / span)
}

// Perform executes one bound action against the event. Motion-family
// actions need a motion event and ignore anything else.
func (b *Body) Perform(act profile.Action, ev event.Event) {
	m, _ := ev.(*event.Motion)

	switch act {
	case profile.Rotate, profile.RotateXYZ, profile.RotateCAD:
		if m == nil {
			return
		}
		b.lastSpin = b.Rotate(b.trackballRotation(m))

	case profile.ScreenRotate:
		if m == nil {
			return
		}
		b.lastSpin = b.Rotate(NewAxisAngle(Vec{Z: 1}, m.X()*rotateSensitivity))

	case profile.TranslateRotate:
		if m == nil {
			return
		}
		b.Translate(Vec{X: m.X() * translateSensitivity})
		b.lastSpin = b.Rotate(NewAxisAngle(Vec{Z: 1}, m.Y()*rotateSensitivity))

	case profile.Translate, profile.ScreenTranslate:
		if m == nil {
			return
		}
		b.Translate(Vec{X: m.X() * translateSensitivity, Y: m.Y() * translateSensitivity})

	case profile.TranslateZ:
		if m == nil {
			return
		}
		b.Translate(Vec{Z: m.Y() * translateSensitivity})

	case profile.Scale, profile.Zoom:
		if m == nil {
			return
		}
		// Wheel events are 1-DOF; their delta widens onto the x axis.
		d := m.Y()
		if d == 0 {
			d = m.X()
		}
		b.Scale(scaleFactor(d))

	case profile.ZoomOnRegion:
		// Non-eye targets get no deferred treatment; zoom directly
		// over the event's own window.
		if m != nil {
			b.ZoomOnRegion(m.Prev(), m)
		}

	case profile.MoveForward, profile.MoveBackward, profile.Drive, profile.LookAround:
		// Flight translation comes from the per-tick task; the drag
		// itself steers.
		if m == nil {
			return
		}
		b.Rotate(b.steerRotation(m))

	case profile.RotateZ:
		if m == nil {
			return
		}
		b.lastSpin = b.Rotate(NewAxisAngle(Vec{Z: 1}, m.Y()*rotateSensitivity))

	case profile.Align:
		b.SetRotation(IdentityRotation())

	case profile.Center:
		b.SetTranslation(Vec{})

	case profile.TranslateXNeg:
		b.Translate(Vec{X: -nudgeStep})
	case profile.TranslateXPos:
		b.Translate(Vec{X: nudgeStep})
	case profile.TranslateYNeg:
		b.Translate(Vec{Y: -nudgeStep})
	case profile.TranslateYPos:
		b.Translate(Vec{Y: nudgeStep})

	case profile.RotateXNeg:
		b.Rotate(NewAxisAngle(Vec{X: 1}, -nudgeAngle))
	case profile.RotateXPos:
		b.Rotate(NewAxisAngle(Vec{X: 1}, nudgeAngle))
	case profile.RotateYNeg:
		b.Rotate(NewAxisAngle(Vec{Y: 1}, -nudgeAngle))
	case profile.RotateYPos:
		b.Rotate(NewAxisAngle(Vec{Y: 1}, nudgeAngle))
	case profile.RotateZNeg:
		b.Rotate(NewAxisAngle(Vec{Z: 1}, -nudgeAngle))
	case profile.RotateZPos:
		b.Rotate(NewAxisAngle(Vec{Z: 1}, nudgeAngle))
	}
}

// trackballRotation maps a 2-DOF drag to a rotation: about the screen
// axes in 3D, about the view axis in 2D.
func (b *Body) trackballRotation(m *event.Motion) Rotation {
	if !b.env.Is3D() {
		return NewAxisAngle(Vec{Z: 1}, m.X()*rotateSensitivity)
	}
	ry := NewAxisAngle(Vec{Y: 1}, m.X()*rotateSensitivity)
	rx := NewAxisAngle(Vec{X: 1}, m.Y()*rotateSensitivity)
	return ry.Compose(rx)
}

// steerRotation turns a flying body from the drag's horizontal (and,
// in 3D, vertical) deltas.
func (b *Body) steerRotation(m *event.Motion) Rotation {
	yaw := NewAxisAngle(Vec{Y: 1}, -m.X()*rotateSensitivity)
	if !b.env.Is3D() {
		return NewAxisAngle(Vec{Z: 1}, -m.X()*rotateSensitivity)
	}
	pitch := NewAxisAngle(Vec{X: 1}, -m.Y()*rotateSensitivity)
	return yaw.Compose(pitch)
}

func scaleFactor(dy float64) float64 {
	k := 1 + dy*scaleSensitivity
	if k <= 0 {
		k = 0.01
	}
	return k
}

// regionExtent returns the rectangle size between two events:
// positional difference for absolute streams, deltas accumulated over
// the whole init..end window otherwise. The init event's deltas count;
// they are the drag's first step.
func regionExtent(init, end *event.Motion) (w, h float64) {
	if init.Absolute() && end.Absolute() {
		return end.X() - init.X(), end.Y() - init.Y()
	}
	w, h = end.X(), end.Y()
	for p := end.Prev(); p != nil; p = p.Prev() {
		w += p.X()
		h += p.Y()
		if p == init {
			break
		}
	}
	return w, h
}

func regionCenter(init, end *event.Motion) (x, y float64) {
	if init.Absolute() && end.Absolute() {
		return (init.X() + end.X()) / 2, (init.Y() + end.Y()) / 2
	}
	w, h := regionExtent(init, end)
	return w / 2, h / 2
}

// rotationBetween returns the rotation taking from onto to.
func rotationBetween(from, to Vec) Rotation {
	f, t := from.Normalize(), to.Normalize()
	if f.IsZero() || t.IsZero() {
		return IdentityRotation()
	}
	d := math.Max(-1, math.Min(1, f.Dot(t)))
	axis := f.Cross(t)
	if axis.IsZero() {
		if d > 0 {
			return IdentityRotation()
		}
		// Opposite vectors: any perpendicular axis works.
		axis = f.Cross(Vec{X: 1})
		if axis.IsZero() {
			axis = f.Cross(Vec{Y: 1})
		}
	}
	return NewAxisAngle(axis, math.Acos(d))
}
