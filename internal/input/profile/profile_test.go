package profile

import (
	"testing"

	"github.com/dshills/interact/internal/input/event"
)

func TestBindReplaces(t *testing.T) {
	p := New()
	s := event.MotionShortcut{Mods: event.ModNone, ID: event.LeftButton}

	p.BindMotion(s, nil, Rotate)
	p.BindMotion(s, nil, Translate)

	b, ok := p.Motion(s)
	if !ok {
		t.Fatal("binding missing after rebind")
	}
	if b.Action != Translate {
		t.Errorf("Action = %v, want %v (rebind must replace, not merge)", b.Action, Translate)
	}
	if p.Len() != 1 {
		t.Errorf("Len = %d, want 1", p.Len())
	}
}

func TestBindIsolation(t *testing.T) {
	p := New()
	s1 := event.MotionShortcut{Mods: event.ModNone, ID: event.LeftButton}
	s2 := event.MotionShortcut{Mods: event.ModShift, ID: event.LeftButton}

	p.BindMotion(s2, nil, ZoomOnRegion)
	p.BindMotion(s1, nil, Rotate)

	if b, _ := p.Motion(s2); b.Action != ZoomOnRegion {
		t.Errorf("binding s1 affected lookup(s2): got %v", b.Action)
	}
	p.UnbindMotion(s1)
	if _, ok := p.Motion(s2); !ok {
		t.Error("unbinding s1 removed s2")
	}
}

func TestLookupByCategory(t *testing.T) {
	p := New()
	p.BindKey(event.KeyShortcut{Rune: 'n'}, nil, Align)
	p.BindClick(event.ClickShortcut{ID: event.RightButton, Count: 2}, nil, Center)
	p.BindMotion(event.MotionShortcut{ID: event.LeftButton}, nil, Rotate)

	tests := []struct {
		name string
		ev   event.Event
		want Action
	}{
		{"key", event.NewKeyRune('n'), Align},
		{"click", event.NewClick(event.ModNone, event.RightButton, 2, 0, 0), Center},
		{"motion", event.NewMotion2(event.ModNone, event.LeftButton, 1, 1), Rotate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := p.Lookup(tt.ev)
			if !ok {
				t.Fatal("Lookup failed")
			}
			if b.Action != tt.want {
				t.Errorf("Action = %v, want %v", b.Action, tt.want)
			}
		})
	}

	if _, ok := p.Lookup(event.NewKeyRune('q')); ok {
		t.Error("unbound shortcut resolved")
	}
}

func TestUnbindMotionIDs(t *testing.T) {
	p := New()
	p.BindMotion(event.MotionShortcut{ID: event.LeftButton}, nil, Rotate)
	p.BindMotion(event.MotionShortcut{Mods: event.ModShift, ID: event.LeftButton}, nil, ZoomOnRegion)
	p.BindMotion(event.MotionShortcut{ID: event.Wheel}, nil, Scale)
	p.BindKey(event.KeyShortcut{Rune: 'n'}, nil, Align)

	p.UnbindMotionIDs(event.LeftButton, event.CenterButton, event.RightButton)

	if _, ok := p.Motion(event.MotionShortcut{ID: event.LeftButton}); ok {
		t.Error("left-button binding survived")
	}
	if _, ok := p.Motion(event.MotionShortcut{Mods: event.ModShift, ID: event.LeftButton}); ok {
		t.Error("shifted left-button binding survived")
	}
	if _, ok := p.Motion(event.MotionShortcut{ID: event.Wheel}); !ok {
		t.Error("wheel binding removed")
	}
	if _, ok := p.Key(event.KeyShortcut{Rune: 'n'}); !ok {
		t.Error("keyboard binding removed")
	}
}

func TestIsActionBound(t *testing.T) {
	p := New()
	p.BindMotion(event.MotionShortcut{ID: event.LeftButton}, nil, Rotate)

	if !p.IsActionBound(Rotate) {
		t.Error("Rotate should be bound")
	}
	if p.IsActionBound(Drive) {
		t.Error("Drive should not be bound")
	}
}

func TestFromCopies(t *testing.T) {
	src := New()
	src.BindMotion(event.MotionShortcut{ID: event.LeftButton}, nil, Rotate)
	src.BindKey(event.KeyShortcut{Rune: 'c'}, nil, Center)

	dst := New()
	dst.BindMotion(event.MotionShortcut{ID: event.Wheel}, nil, Scale)
	dst.From(src)

	if dst.Len() != src.Len() {
		t.Errorf("Len = %d, want %d", dst.Len(), src.Len())
	}
	if _, ok := dst.Motion(event.MotionShortcut{ID: event.Wheel}); ok {
		t.Error("From must replace, not merge")
	}

	// Later changes to the source must not leak into the copy.
	src.BindKey(event.KeyShortcut{Rune: 'x'}, nil, Align)
	if _, ok := dst.Key(event.KeyShortcut{Rune: 'x'}); ok {
		t.Error("copy shares state with source")
	}
}

func TestActionRoundTrip(t *testing.T) {
	for a, name := range actionNames {
		got, ok := ParseAction(name)
		if !ok {
			t.Errorf("ParseAction(%q) failed", name)
			continue
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %v, want %v", name, got, a)
		}
	}
	if _, ok := ParseAction("levitate"); ok {
		t.Error("unknown action accepted")
	}
}

func TestActionFamilies(t *testing.T) {
	rotations := []Action{Rotate, RotateXYZ, RotateCAD, ScreenRotate, TranslateRotate}
	for _, a := range rotations {
		if !a.IsRotation() {
			t.Errorf("%v should be a rotation", a)
		}
	}
	if Translate.IsRotation() || RotateZ.IsRotation() {
		t.Error("rotation family too wide")
	}

	flights := []Action{MoveForward, MoveBackward, Drive}
	for _, a := range flights {
		if !a.IsFlight() {
			t.Errorf("%v should be a flight action", a)
		}
	}
	if LookAround.IsFlight() {
		t.Error("flight family too wide")
	}
}
