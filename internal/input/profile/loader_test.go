package profile

import (
	"errors"
	"testing"

	"github.com/dshills/interact/internal/input/event"
)

func TestLoad(t *testing.T) {
	doc := `{
		"name": "custom",
		"bindings": {
			"motion": [
				{"id": "left", "action": "rotate"},
				{"mods": "shift|ctrl", "id": "right", "action": "screenRotate"}
			],
			"click": [
				{"id": "right", "count": 2, "action": "center"},
				{"id": "left", "action": "align"}
			],
			"key": [
				{"rune": "z", "action": "rotateZNeg"},
				{"mods": "shift", "code": 38, "action": "rotateYPos"}
			]
		}
	}`

	p := New()
	if err := Load([]byte(doc), p); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if b, _ := p.Motion(event.MotionShortcut{ID: event.LeftButton}); b.Action != Rotate {
		t.Errorf("left motion = %v, want Rotate", b.Action)
	}
	s := event.MotionShortcut{Mods: event.ModShift | event.ModCtrl, ID: event.RightButton}
	if b, _ := p.Motion(s); b.Action != ScreenRotate {
		t.Errorf("shift|ctrl right motion = %v, want ScreenRotate", b.Action)
	}
	if b, _ := p.Click(event.ClickShortcut{ID: event.RightButton, Count: 2}); b.Action != Center {
		t.Errorf("double right click = %v, want Center", b.Action)
	}
	// Missing count defaults to a single click.
	if b, _ := p.Click(event.ClickShortcut{ID: event.LeftButton, Count: 1}); b.Action != Align {
		t.Errorf("single left click = %v, want Align", b.Action)
	}
	if b, _ := p.Key(event.KeyShortcut{Rune: 'z'}); b.Action != RotateZNeg {
		t.Errorf("'z' = %v, want RotateZNeg", b.Action)
	}
	if b, _ := p.Key(event.KeyShortcut{Mods: event.ModShift, Code: 38}); b.Action != RotateYPos {
		t.Errorf("shift+38 = %v, want RotateYPos", b.Action)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			"unknown action",
			`{"bindings":{"motion":[{"id":"left","action":"levitate"}]}}`,
			ErrUnknownAction,
		},
		{
			"unknown channel",
			`{"bindings":{"motion":[{"id":"trackball","action":"rotate"}]}}`,
			ErrUnknownChannel,
		},
		{
			"unknown modifier",
			`{"bindings":{"motion":[{"mods":"hyper","id":"left","action":"rotate"}]}}`,
			ErrUnknownModifier,
		},
		{
			"key without rune or code",
			`{"bindings":{"key":[{"action":"align"}]}}`,
			ErrBadShortcut,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load([]byte(tt.doc), New())
			if !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}

	if err := Load([]byte("{not json"), New()); err == nil {
		t.Error("invalid JSON accepted")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := New()
	src.BindMotion(event.MotionShortcut{ID: event.LeftButton}, nil, Rotate)
	src.BindMotion(event.MotionShortcut{Mods: event.ModShift, ID: event.LeftButton}, nil, ZoomOnRegion)
	src.BindMotion(event.MotionShortcut{ID: event.Wheel}, nil, Scale)
	src.BindClick(event.ClickShortcut{ID: event.RightButton, Count: 2}, nil, Center)
	src.BindKey(event.KeyShortcut{Rune: 'n'}, nil, Align)
	src.BindKey(event.KeyShortcut{Mods: event.ModShift, Code: event.KeyCodeUp}, nil, RotateXPos)

	data, err := Save("round-trip", src)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := New()
	if err := Load(data, dst); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dst.Len() != src.Len() {
		t.Fatalf("Len = %d, want %d", dst.Len(), src.Len())
	}

	checks := []struct {
		ev   event.Event
		want Action
	}{
		{event.NewMotion2(event.ModNone, event.LeftButton, 1, 0), Rotate},
		{event.NewMotion2(event.ModShift, event.LeftButton, 1, 0), ZoomOnRegion},
		{event.NewMotion1(event.ModNone, event.Wheel, 1), Scale},
		{event.NewClick(event.ModNone, event.RightButton, 2, 0, 0), Center},
		{event.NewKeyRune('n'), Align},
		{event.NewKey(event.ModShift, event.KeyCodeUp), RotateXPos},
	}
	for _, c := range checks {
		b, ok := dst.Lookup(c.ev)
		if !ok {
			t.Errorf("no binding after round trip for %v", c.ev)
			continue
		}
		if b.Action != c.want {
			t.Errorf("round trip binding = %v, want %v", b.Action, c.want)
		}
	}
}

func TestSaveStable(t *testing.T) {
	p := New()
	p.BindMotion(event.MotionShortcut{ID: event.RightButton}, nil, Translate)
	p.BindMotion(event.MotionShortcut{ID: event.LeftButton}, nil, Rotate)
	p.BindKey(event.KeyShortcut{Rune: 'c'}, nil, Center)

	a, err := Save("stable", p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := Save("stable", p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if string(a) != string(b) {
		t.Error("Save output differs between calls")
	}
}
