package agent

import (
	"github.com/google/uuid"

	"github.com/dshills/interact/internal/input/event"
)

// Grabber is anything that can receive input events. HitTest reports
// whether the event falls on the grabber (for pointer events, whether
// the cursor is over it); PerformInteraction consumes the event.
type Grabber interface {
	HitTest(ev event.Event) bool
	PerformInteraction(ev event.Event)
}

// GestureHolder is an optional Grabber refinement. A grabber reporting
// an active gesture keeps the grab for the rest of the motion stream
// even when the cursor drifts off it.
type GestureHolder interface {
	GestureActive() bool
}

// FeedFunc synthesizes one event per frame. Returning nil means the
// agent has nothing to feed this frame.
type FeedFunc func() event.Event

// Agent routes events from one input device to interactive targets.
type Agent struct {
	id       uuid.UUID
	name     string
	pool     []Grabber
	grabbed  Grabber
	fallback Grabber
	feed     FeedFunc
}

// New creates an agent with the given human-readable name.
func New(name string) *Agent {
	return &Agent{id: uuid.New(), name: name}
}

// ID returns the agent's unique identity.
func (a *Agent) ID() uuid.UUID { return a.id }

// Name returns the agent's name.
func (a *Agent) Name() string { return a.name }

// AddGrabber appends g to the candidate pool. Registration order is
// resolution order. Adding the same grabber twice is a no-op.
func (a *Agent) AddGrabber(g Grabber) {
	if g == nil {
		return
	}
	for _, have := range a.pool {
		if have == g {
			return
		}
	}
	a.pool = append(a.pool, g)
}

// RemoveGrabber removes g from the candidate pool. A grab held by g is
// cleared on the next Handle.
func (a *Agent) RemoveGrabber(g Grabber) {
	for i, have := range a.pool {
		if have == g {
			a.pool = append(a.pool[:i], a.pool[i+1:]...)
			return
		}
	}
}

// Grabbers returns the candidate pool in registration order.
func (a *Agent) Grabbers() []Grabber { return a.pool }

// Grabbed returns the currently grabbed target, or nil.
func (a *Agent) Grabbed() Grabber { return a.grabbed }

// SetDefaultGrabber sets the target that receives events no candidate
// claims. Typically the scene's eye.
func (a *Agent) SetDefaultGrabber(g Grabber) { a.fallback = g }

// DefaultGrabber returns the fallback target, or nil.
func (a *Agent) DefaultGrabber() Grabber { return a.fallback }

// SetFeed installs a per-frame event synthesizer.
func (a *Agent) SetFeed(f FeedFunc) { a.feed = f }

// Feed returns the synthesized event for this frame, or nil.
func (a *Agent) Feed() event.Event {
	if a.feed == nil {
		return nil
	}
	return a.feed()
}

// ResetGrabbed drops the current grab without touching the pool.
func (a *Agent) ResetGrabbed() { a.grabbed = nil }

// Handle resolves ev to a target and delivers it. Resolution order:
// the grabbed target if it is still valid, then the first candidate
// whose HitTest passes, then the default grabber. Unresolvable events
// are dropped.
func (a *Agent) Handle(ev event.Event) {
	if ev == nil {
		return
	}

	if a.grabbed != nil && !a.inPool(a.grabbed) {
		a.grabbed = nil
	}

	if a.grabbed != nil {
		if a.keepGrab(ev) {
			a.grabbed.PerformInteraction(ev)
			return
		}
		a.grabbed = nil
	}

	if canGrab(ev) {
		for _, g := range a.pool {
			if g.HitTest(ev) {
				a.grabbed = g
				g.PerformInteraction(ev)
				return
			}
		}
	}

	if a.fallback != nil {
		a.fallback.PerformInteraction(ev)
	}
}

func (a *Agent) inPool(g Grabber) bool {
	for _, have := range a.pool {
		if have == g {
			return true
		}
	}
	return false
}

// keepGrab reports whether the grabbed target keeps the event. A
// target mid-gesture holds on to the whole motion stream, flush
// included, regardless of position; otherwise the grab survives only
// while it still hit-tests.
func (a *Agent) keepGrab(ev event.Event) bool {
	if _, ok := ev.(*event.Motion); ok {
		if h, ok := a.grabbed.(GestureHolder); ok && h.GestureActive() {
			return true
		}
	}
	return a.grabbed.HitTest(ev)
}

// canGrab reports whether ev may establish a new grab. Clicks and
// relative motion that projects to two degrees of freedom qualify;
// keyboard events and absolute motion do not.
func canGrab(ev event.Event) bool {
	switch e := ev.(type) {
	case event.Click:
		return true
	case *event.Motion:
		if e.Absolute() {
			return false
		}
		_, ok := e.DOF2()
		return ok
	}
	return false
}
