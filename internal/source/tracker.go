package source

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/interact/internal/input/event"
)

// DefaultDoubleClickTime is the maximum time between releases for a
// double click.
const DefaultDoubleClickTime = 400 * time.Millisecond

// Tracker turns a terminal's stateless mouse reports into the event
// model's clicks, drags and wheel gestures. It is pure translation
// state; the screen stays outside.
type Tracker struct {
	// DoubleClickTime is the maximum time between releases for a
	// double click. Zero means DefaultDoubleClickTime.
	DoubleClickTime time.Duration

	button   event.DeviceID
	pressed  bool
	dragging bool
	lastX    int
	lastY    int
	prev     *event.Motion

	lastRelease    time.Time
	lastReleaseBtn event.DeviceID
}

// NewTracker returns a tracker with default settings.
func NewTracker() *Tracker {
	return &Tracker{DoubleClickTime: DefaultDoubleClickTime}
}

// TranslateKey converts a tcell key event.
func (t *Tracker) TranslateKey(e *tcell.EventKey) event.Key {
	if e.Key() == tcell.KeyRune {
		return event.NewKeyRune(e.Rune())
	}
	return event.NewKey(translateMods(e.Modifiers()), translateKeyCode(e.Key()))
}

// TranslateMouse converts one tcell mouse report into zero or more
// events. A press arms a stream, movement while pressed emits
// relative motion chaining its predecessor, and release emits either
// a click (no movement) or the stream's flush event. Drag motion
// carries the cursor position alongside its deltas so position-based
// targets can hit-test it. Wheel notches
// come out as a motion plus its flush so each notch is a complete
// gesture.
func (t *Tracker) TranslateMouse(e *tcell.EventMouse) []event.Event {
	mods := translateMods(e.Modifiers())
	x, y := e.Position()

	if wheel := wheelDelta(e.Buttons()); wheel != 0 {
		m := event.NewMotion1(mods, event.Wheel, wheel)
		return []event.Event{m, m.Flush()}
	}

	btn := buttonID(e.Buttons())

	switch {
	case !t.pressed && btn != event.NoButton:
		// Press: arm a stream, emit nothing yet.
		t.pressed = true
		t.dragging = false
		t.button = btn
		t.lastX, t.lastY = x, y
		t.prev = nil
		return nil

	case t.pressed && btn != event.NoButton:
		dx, dy := float64(x-t.lastX), float64(y-t.lastY)
		if dx == 0 && dy == 0 {
			return nil
		}
		t.lastX, t.lastY = x, y
		t.dragging = true
		m := event.NewMotion2(mods, t.button, dx, dy).WithPosition(float64(x), float64(y))
		if t.prev != nil {
			m = m.WithPrev(t.prev)
		}
		t.prev = m
		return []event.Event{m}

	case t.pressed: // release
		t.pressed = false
		released := t.button
		t.button = event.NoButton

		if t.dragging {
			t.dragging = false
			m := event.NewMotion2(mods, released, 0, 0).WithPosition(float64(x), float64(y))
			if t.prev != nil {
				m = m.WithPrev(t.prev)
			}
			t.prev = nil
			return []event.Event{m.Flush()}
		}

		count := 1
		window := t.DoubleClickTime
		if window == 0 {
			window = DefaultDoubleClickTime
		}
		if released == t.lastReleaseBtn && e.When().Sub(t.lastRelease) <= window {
			count = 2
		}
		t.lastRelease = e.When()
		t.lastReleaseBtn = released
		return []event.Event{event.NewClick(mods, released, count, float64(x), float64(y))}

	default:
		// Bare cursor movement: absolute position for hover
		// hit-testing.
		if x == t.lastX && y == t.lastY {
			return nil
		}
		t.lastX, t.lastY = x, y
		return []event.Event{event.NewAbsolute2(mods, event.NoButton, float64(x), float64(y))}
	}
}

func translateMods(m tcell.ModMask) event.Modifier {
	var mods event.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(event.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(event.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(event.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(event.ModMeta)
	}
	return mods
}

func translateKeyCode(k tcell.Key) int {
	switch k {
	case tcell.KeyLeft:
		return event.KeyCodeLeft
	case tcell.KeyUp:
		return event.KeyCodeUp
	case tcell.KeyRight:
		return event.KeyCodeRight
	case tcell.KeyDown:
		return event.KeyCodeDown
	default:
		return int(k)
	}
}

func buttonID(b tcell.ButtonMask) event.DeviceID {
	switch {
	case b&tcell.Button1 != 0:
		return event.LeftButton
	case b&tcell.Button2 != 0:
		return event.CenterButton
	case b&tcell.Button3 != 0:
		return event.RightButton
	default:
		return event.NoButton
	}
}

func wheelDelta(b tcell.ButtonMask) float64 {
	switch {
	case b&tcell.WheelUp != 0:
		return 1
	case b&tcell.WheelDown != 0:
		return -1
	default:
		return 0
	}
}
