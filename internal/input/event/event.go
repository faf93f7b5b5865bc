package event

import (
	"strings"
	"time"
)

// Kind identifies the concrete type of an event.
type Kind uint8

const (
	// KindKey is a keyboard event.
	KindKey Kind = iota + 1
	// KindClick is a button click event.
	KindClick
	// KindMotion is a motion event with 1, 2, 3 or 6 degrees of freedom.
	KindMotion
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindClick:
		return "click"
	case KindMotion:
		return "motion"
	default:
		return "unknown"
	}
}

// Modifier represents keyboard modifier keys held during an event.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns a canonical representation such as "C-S".
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "C")
	}
	if m.HasAlt() {
		parts = append(parts, "A")
	}
	if m.HasMeta() {
		parts = append(parts, "M")
	}
	if m.HasShift() {
		parts = append(parts, "S")
	}
	return strings.Join(parts, "-")
}

// DeviceID identifies an input channel: a mouse button, the wheel, or no
// button at all (bare cursor movement).
type DeviceID int

// Standard mouse channels.
const (
	NoButton     DeviceID = 0
	LeftButton   DeviceID = 1
	CenterButton DeviceID = 2
	RightButton  DeviceID = 3
	Wheel        DeviceID = 4
)

// String returns the channel name.
func (id DeviceID) String() string {
	switch id {
	case LeftButton:
		return "left"
	case CenterButton:
		return "center"
	case RightButton:
		return "right"
	case Wheel:
		return "wheel"
	default:
		return "none"
	}
}

// Event is the interface shared by all input events.
type Event interface {
	// Kind identifies the concrete event type.
	Kind() Kind

	// Modifiers reports the modifier keys held during the event.
	Modifiers() Modifier

	// Time is when the event occurred.
	Time() time.Time

	// Flushed is true for the terminal event of a physical gesture,
	// such as a button release or key-up.
	Flushed() bool
}

// attrs carries the fields common to every event type.
type attrs struct {
	mods    Modifier
	time    time.Time
	flushed bool
}

func newAttrs(mods Modifier) attrs {
	return attrs{mods: mods, time: time.Now()}
}

// Modifiers reports the modifier keys held during the event.
func (a attrs) Modifiers() Modifier { return a.mods }

// Time is when the event occurred.
func (a attrs) Time() time.Time { return a.time }

// Flushed is true for the terminal event of a physical gesture.
func (a attrs) Flushed() bool { return a.flushed }
