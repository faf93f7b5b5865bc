package gesture

import (
	"github.com/dshills/interact/internal/input/event"
	"github.com/dshills/interact/internal/input/profile"
	"github.com/dshills/interact/internal/scene"
)

// Target is the interactive object a Controller drives. The controller
// sequences phases and inertia; the target owns the geometry.
type Target interface {
	// IsEye reports whether the target is the viewpoint rather than a
	// scene object. Region zoom is deferred-to-End only for eyes.
	IsEye() bool

	// Damping is the continuous per-tick damping factor; zero means
	// none, making explicit inertial spin worthwhile.
	Damping() float64

	// FlySpeed and SetFlySpeed expose the forward speed used by
	// flight gestures. Drive caches and restores it around the drag.
	FlySpeed() float64
	SetFlySpeed(speed float64)

	// Radius is the scene scale, used to normalize drive speed.
	Radius() float64

	// Perform executes one bound action against the carried event.
	Perform(act profile.Action, ev event.Event)

	// ZoomOnRegion fits the view to the rectangle spanned by the two
	// events of a finished region-zoom drag.
	ZoomOnRegion(init, end *event.Motion)

	// SpinRotation is the rotation increment of the drag that just
	// ended; ApplyRotation applies one inertial increment.
	SpinRotation() scene.Rotation
	ApplyRotation(r scene.Rotation)

	// FlightStep advances the target along its forward direction.
	FlightStep(forward float64)

	// UpdateUpVector re-levels the target after a flight step.
	UpdateUpVector()

	// Visual affordance hooks.
	SetRotateHint(on bool)
	SetZoomHint(on bool)
}
