package gesture

import (
	"github.com/dshills/interact/internal/input/event"
	"github.com/dshills/interact/internal/input/profile"
)

// driveSpeedScale converts accumulated vertical drag distance into a
// fly speed, normalized by scene radius.
const driveSpeedScale = 0.0001

// Controller is the per-target gesture state machine.
type Controller struct {
	target Target
	prof   *profile.Profile

	active  bool
	current profile.Action

	initEvent    *event.Motion
	currentEvent *event.Motion

	// pendingRegion is set while a region-zoom drag is in progress;
	// the zoom itself runs at End over initEvent..pendingRegion.
	pendingRegion *event.Motion

	needsSpin  bool
	driveMode  bool
	needsFlight bool
	rotateHint bool

	cachedFlySpeed float64
	driveDelta     float64

	spin     *spinTask
	flight   *flightTask
	lastTick uint64
	ticked   bool
}

// NewController binds a target to its profile.
func NewController(t Target, p *profile.Profile) *Controller {
	return &Controller{target: t, prof: p}
}

// Profile returns the controller's binding table.
func (c *Controller) Profile() *profile.Profile { return c.prof }

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.active }

// Current returns the action of the gesture in progress, or
// profile.ActionNone while Idle.
func (c *Controller) Current() profile.Action {
	if !c.active {
		return profile.ActionNone
	}
	return c.current
}

// SpinActive reports whether an inertial spin is running.
func (c *Controller) SpinActive() bool { return c.spin != nil }

// FlightActive reports whether a flight task is running.
func (c *Controller) FlightActive() bool { return c.flight != nil }

// Handle processes one event and reports whether the controller
// consumed it. Keyboard and click events execute their bound action
// directly; motion events drive the three-phase machine. Unbound or
// unprojectable events are not handled, never errors.
func (c *Controller) Handle(ev event.Event) bool {
	switch e := ev.(type) {
	case event.Key, event.Click:
		b, ok := c.prof.Lookup(e)
		if !ok {
			return false
		}
		c.perform(b, e)
		return true
	case *event.Motion:
		return c.handleMotion(e)
	}
	return false
}

func (c *Controller) handleMotion(m *event.Motion) bool {
	m2, ok := m.DOF2()
	if !ok {
		return false
	}

	switch {
	case !c.active && !m2.Flushed():
		return c.begin(m2)

	case c.active && !m2.Flushed():
		// A running region zoom swallows the rest of the drag; no
		// modifier change may hijack it. Each swallowed event chains
		// onto the last so End sees the whole rectangle.
		if c.pendingRegion != nil {
			c.pendingRegion = m2.WithPrev(c.pendingRegion)
			c.currentEvent = m2
			return true
		}
		b, bound := c.prof.Lookup(m2)
		if bound && b.Action == c.current {
			return c.cont(b, m2)
		}
		// Region zoom may only be entered via Begin; modifier chatter
		// mid-drag must not trigger it.
		if bound && b.Action == profile.ZoomOnRegion && c.target.IsEye() {
			return true
		}
		// Abrupt action change: End the old gesture, Begin the new
		// one with the same event.
		c.end(m2)
		c.reset()
		return c.begin(m2)

	case c.active: // flushed
		c.end(m2)
		c.reset()
		return true

	default:
		// Trailing flush with no matching begin: acknowledged, no
		// transition.
		return true
	}
}

func (c *Controller) begin(m *event.Motion) bool {
	b, ok := c.prof.Lookup(m)
	if !ok {
		return false
	}
	act := b.Action

	// A new physical gesture owns the target exclusively.
	c.spin = nil
	c.flight = nil

	c.active = true
	c.current = act
	c.initEvent = m
	c.currentEvent = m

	c.needsSpin = act.IsRotation() && c.target.Damping() == 0
	c.driveMode = act == profile.Drive
	c.needsFlight = act.IsFlight()
	c.rotateHint = act == profile.ScreenRotate
	c.driveDelta = 0

	if c.driveMode {
		c.cachedFlySpeed = c.target.FlySpeed()
	}
	if c.rotateHint {
		c.target.SetRotateHint(true)
	}

	if c.target.IsEye() && act == profile.ZoomOnRegion {
		c.pendingRegion = m
		c.target.SetZoomHint(true)
		return true
	}

	if c.needsFlight {
		dir := 1.0
		if act == profile.MoveBackward {
			dir = -1
		}
		c.flight = &flightTask{direction: dir}
	}

	c.perform(b, m)
	return true
}

func (c *Controller) cont(b profile.Binding, m *event.Motion) bool {
	prev := c.currentEvent
	c.currentEvent = m

	if c.driveMode {
		// Vertical drag distance steers the drive speed. Absolute
		// streams diff positions; relative streams carry per-event
		// deltas already.
		if m.Absolute() && prev != nil {
			c.driveDelta += m.Y() - prev.Y()
		} else {
			c.driveDelta += m.Y()
		}
		c.target.SetFlySpeed(driveSpeedScale * c.target.Radius() * c.driveDelta)
	}

	c.perform(b, m)
	return true
}

// perform routes a bound action: to the binding's owner when the owner
// can receive it, to the controller's own target otherwise.
func (c *Controller) perform(b profile.Binding, ev event.Event) {
	if p, ok := b.Performer(); ok {
		p.Perform(b.Action, ev)
		return
	}
	c.target.Perform(b.Action, ev)
}

func (c *Controller) end(m *event.Motion) {
	if c.rotateHint {
		c.target.SetRotateHint(false)
	}

	if c.needsSpin && c.currentEvent != nil {
		if decay := spinDecay(m.Speed(), m.Delay()); decay > 0 {
			rot := c.target.SpinRotation()
			if !rot.IsIdentity() {
				c.spin = &spinTask{increment: rot, decay: decay}
			}
		}
	}

	if c.pendingRegion != nil {
		c.target.SetZoomHint(false)
		c.target.ZoomOnRegion(c.initEvent, c.pendingRegion)
		c.pendingRegion = nil
	}

	if c.needsFlight {
		if c.driveMode {
			c.target.SetFlySpeed(c.cachedFlySpeed)
		}
		c.flight = nil
	}
}

func (c *Controller) reset() {
	c.active = false
	c.current = profile.ActionNone
	c.initEvent = nil
	c.currentEvent = nil
	c.needsSpin = false
	c.driveMode = false
	c.needsFlight = false
	c.rotateHint = false
	c.driveDelta = 0
}

// Advance progresses inertial tasks by one render tick. The tick
// counter is monotonic; repeated calls with the same value are no-ops
// so multiple owners can share one counter.
func (c *Controller) Advance(tick uint64) {
	if c.ticked && tick == c.lastTick {
		return
	}
	c.lastTick = tick
	c.ticked = true

	if c.spin != nil {
		if !c.spin.step(c.target) {
			c.spin = nil
		}
	}
	if c.flight != nil {
		c.flight.step(c.target)
	}
}
