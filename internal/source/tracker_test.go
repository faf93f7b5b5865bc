package source

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/interact/internal/input/event"
)

func mouse(x, y int, b tcell.ButtonMask, m tcell.ModMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, m)
}

func TestTranslateKey(t *testing.T) {
	tr := NewTracker()

	k := tr.TranslateKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !k.IsRune() || k.Rune != 'n' {
		t.Errorf("rune key = %v", k)
	}

	k = tr.TranslateKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift))
	if k.IsRune() || k.Code != event.KeyCodeLeft {
		t.Errorf("arrow key = %v", k)
	}
	if !k.Modifiers().HasShift() {
		t.Error("shift modifier dropped")
	}
}

func TestClickWithoutMovement(t *testing.T) {
	tr := NewTracker()

	if evs := tr.TranslateMouse(mouse(10, 20, tcell.Button1, tcell.ModNone)); len(evs) != 0 {
		t.Fatalf("press emitted %d events, want 0", len(evs))
	}
	evs := tr.TranslateMouse(mouse(10, 20, tcell.ButtonNone, tcell.ModNone))
	if len(evs) != 1 {
		t.Fatalf("release emitted %d events, want 1", len(evs))
	}
	c, ok := evs[0].(event.Click)
	if !ok {
		t.Fatalf("release emitted %T, want Click", evs[0])
	}
	if c.ID != event.LeftButton || c.Count != 1 || c.X != 10 || c.Y != 20 {
		t.Errorf("click = %v", c)
	}
}

func TestDoubleClick(t *testing.T) {
	tr := NewTracker()

	press := func() {
		tr.TranslateMouse(mouse(5, 5, tcell.Button3, tcell.ModNone))
	}
	release := func() []event.Event {
		return tr.TranslateMouse(mouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	}

	press()
	first := release()
	press()
	second := release()

	if first[0].(event.Click).Count != 1 {
		t.Error("first click should have count 1")
	}
	if second[0].(event.Click).Count != 2 {
		t.Error("rapid second click should have count 2")
	}

	// Past the window the count resets.
	tr.lastRelease = time.Now().Add(-time.Second)
	press()
	third := release()
	if third[0].(event.Click).Count != 1 {
		t.Error("slow click should have count 1")
	}
}

func TestDragStream(t *testing.T) {
	tr := NewTracker()

	tr.TranslateMouse(mouse(10, 10, tcell.Button1, tcell.ModNone))

	evs := tr.TranslateMouse(mouse(15, 12, tcell.Button1, tcell.ModNone))
	if len(evs) != 1 {
		t.Fatalf("drag emitted %d events, want 1", len(evs))
	}
	m1 := evs[0].(*event.Motion)
	if m1.X() != 5 || m1.Y() != 2 {
		t.Errorf("delta = (%g, %g), want (5, 2)", m1.X(), m1.Y())
	}
	if m1.Absolute() {
		t.Error("drag motion should be relative")
	}
	if x, y, ok := m1.At(); !ok || x != 15 || y != 12 {
		t.Errorf("drag position = (%g, %g, %v), want (15, 12)", x, y, ok)
	}
	if m1.Prev() != nil {
		t.Error("first motion has no predecessor")
	}

	evs = tr.TranslateMouse(mouse(18, 12, tcell.Button1, tcell.ModNone))
	m2 := evs[0].(*event.Motion)
	if m2.X() != 3 {
		t.Errorf("second delta x = %g, want 3", m2.X())
	}
	if m2.Prev() == nil || !m2.Prev().Equals(m1) {
		t.Error("second motion should chain the first")
	}

	// Motionless reports mid-drag are swallowed.
	if evs := tr.TranslateMouse(mouse(18, 12, tcell.Button1, tcell.ModNone)); len(evs) != 0 {
		t.Errorf("no-movement report emitted %d events", len(evs))
	}

	// Release flushes the stream instead of clicking.
	evs = tr.TranslateMouse(mouse(18, 12, tcell.ButtonNone, tcell.ModNone))
	if len(evs) != 1 {
		t.Fatalf("release emitted %d events, want 1", len(evs))
	}
	flush, ok := evs[0].(*event.Motion)
	if !ok || !flush.Flushed() {
		t.Fatalf("release emitted %v, want flushed motion", evs[0])
	}
	if flush.ID != event.LeftButton {
		t.Errorf("flush channel = %v", flush.ID)
	}
	if flush.Prev() == nil {
		t.Error("flush should carry the stream window")
	}
	if x, y, ok := flush.At(); !ok || x != 18 || y != 12 {
		t.Errorf("flush position = (%g, %g, %v), want (18, 12)", x, y, ok)
	}
}

func TestDragCarriesModifiers(t *testing.T) {
	tr := NewTracker()
	tr.TranslateMouse(mouse(0, 0, tcell.Button1, tcell.ModShift))
	evs := tr.TranslateMouse(mouse(4, 0, tcell.Button1, tcell.ModShift))
	if !evs[0].Modifiers().HasShift() {
		t.Error("modifier dropped from drag motion")
	}
}

func TestWheelNotchIsCompleteGesture(t *testing.T) {
	tr := NewTracker()

	evs := tr.TranslateMouse(mouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if len(evs) != 2 {
		t.Fatalf("wheel emitted %d events, want motion+flush", len(evs))
	}
	m := evs[0].(*event.Motion)
	if m.DOF() != 1 || m.ID != event.Wheel || m.X() != 1 {
		t.Errorf("wheel motion = %v", m)
	}
	f := evs[1].(*event.Motion)
	if !f.Flushed() {
		t.Error("second wheel event must be the flush")
	}

	down := tr.TranslateMouse(mouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if down[0].(*event.Motion).X() != -1 {
		t.Error("wheel down should have negative delta")
	}
}

func TestHoverIsAbsolute(t *testing.T) {
	tr := NewTracker()
	evs := tr.TranslateMouse(mouse(30, 40, tcell.ButtonNone, tcell.ModNone))
	if len(evs) != 1 {
		t.Fatalf("hover emitted %d events, want 1", len(evs))
	}
	m := evs[0].(*event.Motion)
	if !m.Absolute() || m.ID != event.NoButton {
		t.Errorf("hover = %v, want absolute no-button motion", m)
	}
	if m.X() != 30 || m.Y() != 40 {
		t.Errorf("hover position = (%g, %g)", m.X(), m.Y())
	}
}
