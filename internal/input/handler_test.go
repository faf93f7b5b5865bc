package input

import (
	"testing"

	"github.com/dshills/interact/internal/input/agent"
	"github.com/dshills/interact/internal/input/event"
	"github.com/dshills/interact/internal/input/profile"
	"github.com/dshills/interact/internal/scene"
)

type countingTicker struct {
	ticks []uint64
}

func (c *countingTicker) Advance(tick uint64) { c.ticks = append(c.ticks, tick) }

type sink struct {
	received []event.Event
}

func (s *sink) HitTest(event.Event) bool        { return true }
func (s *sink) PerformInteraction(ev event.Event) { s.received = append(s.received, ev) }

func TestHandlerRoutesEvents(t *testing.T) {
	h := NewHandler()
	a := agent.New("mouse")
	target := &sink{}
	a.SetDefaultGrabber(target)
	h.AddAgent(a)

	h.HandleEvent("mouse", event.NewKeyRune('x'))
	if len(target.received) != 1 {
		t.Errorf("received %d events, want 1", len(target.received))
	}

	// Unknown agent names drop the event instead of failing.
	h.HandleEvent("pen", event.NewKeyRune('x'))
}

func TestHandlerFramePollsFeedsAndTicks(t *testing.T) {
	h := NewHandler()
	a := agent.New("joystick")
	target := &sink{}
	a.SetDefaultGrabber(target)
	fed := event.NewMotion3(event.ModNone, event.NoButton, 1, 0, 0)
	a.SetFeed(func() event.Event { return fed })
	h.AddAgent(a)

	tk := &countingTicker{}
	h.AddTicker(tk)

	h.Frame(1)
	h.Frame(2)

	if len(target.received) != 2 {
		t.Errorf("fed %d events, want 2", len(target.received))
	}
	if len(tk.ticks) != 2 || tk.ticks[0] != 1 || tk.ticks[1] != 2 {
		t.Errorf("ticks = %v, want [1 2]", tk.ticks)
	}
}

func TestHandlerAgentRegistry(t *testing.T) {
	h := NewHandler()
	a1 := agent.New("mouse")
	h.AddAgent(a1)

	if h.Agent("mouse") != a1 {
		t.Error("lookup by name failed")
	}
	if h.Agent("missing") != nil {
		t.Error("unknown name should return nil")
	}

	a2 := agent.New("mouse")
	h.AddAgent(a2)
	if h.Agent("mouse") != a2 {
		t.Error("re-registering a name should replace")
	}

	h.RemoveAgent("mouse")
	if h.Agent("mouse") != nil {
		t.Error("removed agent still registered")
	}
}

type stubEnv struct{}

func (stubEnv) Is3D() bool            { return true }
func (stubEnv) Radius() float64       { return 100 }
func (stubEnv) UpVector() scene.Vec   { return scene.Vec{Y: 1} }
func (stubEnv) RotateHint(bool)       {}
func (stubEnv) ZoomHint(bool)         {}

func TestInteractiveEndToEnd(t *testing.T) {
	// Full pipeline: agent -> body -> controller -> frame mutation,
	// then an inertial spin advanced by Frame ticks.
	h := NewHandler()
	a := agent.New("mouse")
	h.AddAgent(a)

	eye := NewInteractive(stubEnv{}, true)
	eye.Body.Profile().BindMotion(
		event.MotionShortcut{ID: event.LeftButton}, eye.Body, profile.Rotate)
	a.SetDefaultGrabber(eye.Body)
	h.AddTicker(eye.Controller)

	h.HandleEvent("mouse", event.NewMotion2(event.ModNone, event.LeftButton, 0, 0))
	h.HandleEvent("mouse", event.NewMotion2(event.ModNone, event.LeftButton, 10, 0))
	if eye.Body.Rotation().IsIdentity() {
		t.Fatal("drag did not rotate the eye")
	}
	if !eye.Controller.Active() {
		t.Fatal("gesture should be active mid-drag")
	}

	h.HandleEvent("mouse", event.NewMotion2(event.ModNone, event.LeftButton, 10, 0).Flush())
	if !eye.Controller.SpinActive() {
		t.Fatal("undamped rotate drag should leave a spin")
	}

	before := eye.Body.Rotation().Angle()
	h.Frame(1)
	if eye.Body.Rotation().Angle() == before {
		t.Error("frame tick did not advance the spin")
	}
}

func TestObjectBodyOwnsDragThroughAgent(t *testing.T) {
	// A drag whose cursor positions land on an object body must grab
	// and rotate that body, not fall through to the default eye, and
	// must stay with it when the cursor drifts off mid-gesture.
	h := NewHandler()
	a := agent.New("mouse")
	h.AddAgent(a)

	eye := NewInteractive(stubEnv{}, true)
	obj := NewInteractive(stubEnv{}, false)
	profile.ApplyPreset(profile.Arcball, eye.Body.Profile(), obj.Body.Profile(), true)
	obj.Body.PixelTest = func(x, y float64) bool {
		return x >= 10 && x <= 20 && y >= 10 && y <= 20
	}
	a.AddGrabber(obj.Body)
	a.SetDefaultGrabber(eye.Body)

	drag := func(dx, dy, atX, atY float64) *event.Motion {
		return event.NewMotion2(event.ModNone, event.LeftButton, dx, dy).
			WithPosition(atX, atY)
	}

	h.HandleEvent("mouse", drag(2, 0, 12, 15))
	if a.Grabbed() != obj.Body {
		t.Fatal("drag over the object did not grab it")
	}
	if !obj.Controller.Active() {
		t.Fatal("object gesture should be active")
	}

	h.HandleEvent("mouse", drag(3, 0, 15, 15))
	h.HandleEvent("mouse", drag(40, 0, 55, 15)) // off the object mid-gesture
	if a.Grabbed() != obj.Body {
		t.Error("grab released while the gesture was in progress")
	}

	h.HandleEvent("mouse", drag(0, 0, 55, 15).Flush())
	if obj.Controller.Active() {
		t.Error("flush should end the object's gesture")
	}
	if obj.Body.Rotation().IsIdentity() {
		t.Error("drag did not rotate the object")
	}
	if !eye.Body.Rotation().IsIdentity() {
		t.Error("eye rotated during an object drag")
	}
}
