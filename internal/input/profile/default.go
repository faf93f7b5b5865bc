package profile

import (
	"github.com/dshills/interact/internal/input/event"
)

// Preset names a baseline mouse binding table for an eye/body profile
// pair. Applying a preset clears all motion and click bindings for both
// targets before setting the new ones, so presets never partially combine.
type Preset int

const (
	// Arcball: left rotates, center scales (or translates along the view
	// axis in 3D), right translates; shifted buttons give region zoom,
	// screen translate and screen rotate.
	Arcball Preset = iota + 1

	// FirstPerson: left and right buttons fly the eye forward and
	// backward, the center button looks around, shifted center drives.
	FirstPerson

	// ThirdPerson: like first-person but the bindings steer the body
	// instead of the eye.
	ThirdPerson
)

// String returns the preset name, as used by the profile loaders.
func (p Preset) String() string {
	switch p {
	case Arcball:
		return "arcball"
	case FirstPerson:
		return "firstPerson"
	case ThirdPerson:
		return "thirdPerson"
	default:
		return "unknown"
	}
}

// ParsePreset resolves a preset name.
func ParsePreset(name string) (Preset, bool) {
	switch name {
	case "arcball":
		return Arcball, true
	case "firstPerson":
		return FirstPerson, true
	case "thirdPerson":
		return ThirdPerson, true
	}
	return 0, false
}

func motion(mods event.Modifier, id event.DeviceID) event.MotionShortcut {
	return event.MotionShortcut{Mods: mods, ID: id}
}

func click(id event.DeviceID, count int) event.ClickShortcut {
	return event.ClickShortcut{ID: id, Count: count}
}

// ApplyPreset installs the named preset into the eye and body profiles.
// three selects the 3D binding variants. All prior motion and click
// bindings of both profiles are removed first.
func ApplyPreset(p Preset, eye, body *Profile, three bool) {
	eye.UnbindAllMotions()
	eye.UnbindAllClicks()
	body.UnbindAllMotions()
	body.UnbindAllClicks()

	switch p {
	case Arcball:
		eye.BindMotion(motion(event.ModNone, event.LeftButton), nil, Rotate)
		if three {
			eye.BindMotion(motion(event.ModNone, event.CenterButton), nil, TranslateZ)
		} else {
			eye.BindMotion(motion(event.ModNone, event.CenterButton), nil, Scale)
		}
		eye.BindMotion(motion(event.ModNone, event.RightButton), nil, Translate)
		eye.BindMotion(motion(event.ModShift, event.LeftButton), nil, ZoomOnRegion)
		eye.BindMotion(motion(event.ModShift, event.CenterButton), nil, ScreenTranslate)
		eye.BindMotion(motion(event.ModShift, event.RightButton), nil, ScreenRotate)

		body.BindMotion(motion(event.ModNone, event.LeftButton), nil, Rotate)
		body.BindMotion(motion(event.ModNone, event.CenterButton), nil, Scale)
		body.BindMotion(motion(event.ModNone, event.RightButton), nil, Translate)
		body.BindMotion(motion(event.ModShift, event.CenterButton), nil, ScreenTranslate)
		body.BindMotion(motion(event.ModShift, event.RightButton), nil, ScreenRotate)

	case FirstPerson:
		eye.BindMotion(motion(event.ModNone, event.LeftButton), nil, MoveForward)
		eye.BindMotion(motion(event.ModNone, event.RightButton), nil, MoveBackward)
		eye.BindMotion(motion(event.ModShift, event.LeftButton), nil, RotateZ)
		eye.BindMotion(motion(event.ModCtrl, event.Wheel), nil, RotateZ)
		if three {
			eye.BindMotion(motion(event.ModNone, event.CenterButton), nil, LookAround)
			eye.BindMotion(motion(event.ModShift, event.CenterButton), nil, Drive)
		}

		body.BindMotion(motion(event.ModNone, event.LeftButton), nil, Rotate)
		body.BindMotion(motion(event.ModNone, event.CenterButton), nil, Scale)
		body.BindMotion(motion(event.ModNone, event.RightButton), nil, Translate)
		body.BindMotion(motion(event.ModShift, event.CenterButton), nil, ScreenTranslate)
		body.BindMotion(motion(event.ModShift, event.RightButton), nil, ScreenRotate)

	case ThirdPerson:
		body.BindMotion(motion(event.ModNone, event.LeftButton), nil, MoveForward)
		body.BindMotion(motion(event.ModNone, event.RightButton), nil, MoveBackward)
		body.BindMotion(motion(event.ModShift, event.LeftButton), nil, RotateZ)
		if three {
			body.BindMotion(motion(event.ModNone, event.CenterButton), nil, LookAround)
			body.BindMotion(motion(event.ModShift, event.CenterButton), nil, Drive)
		}
	}

	bindCommon(eye, body, three)
}

// bindCommon sets the bindings shared by every preset: double clicks to
// align and center, wheel to scale (or translate along the view axis for
// a 3D eye).
func bindCommon(eye, body *Profile, three bool) {
	eye.BindClick(click(event.LeftButton, 2), nil, Align)
	eye.BindClick(click(event.RightButton, 2), nil, Center)
	body.BindClick(click(event.LeftButton, 2), nil, Align)
	body.BindClick(click(event.RightButton, 2), nil, Center)

	if three {
		eye.BindMotion(motion(event.ModNone, event.Wheel), nil, TranslateZ)
	} else {
		eye.BindMotion(motion(event.ModNone, event.Wheel), nil, Scale)
	}
	body.BindMotion(motion(event.ModNone, event.Wheel), nil, Scale)
}

// DefaultKeyBindings installs the baseline keyboard nudge set.
func DefaultKeyBindings(p *Profile) {
	p.UnbindAllKeys()
	p.BindKey(event.KeyShortcut{Rune: 'n'}, nil, Align)
	p.BindKey(event.KeyShortcut{Rune: 'c'}, nil, Center)
	p.BindKey(event.KeyShortcut{Code: event.KeyCodeLeft}, nil, TranslateXNeg)
	p.BindKey(event.KeyShortcut{Code: event.KeyCodeRight}, nil, TranslateXPos)
	p.BindKey(event.KeyShortcut{Code: event.KeyCodeDown}, nil, TranslateYNeg)
	p.BindKey(event.KeyShortcut{Code: event.KeyCodeUp}, nil, TranslateYPos)
	p.BindKey(event.KeyShortcut{Mods: event.ModShift, Code: event.KeyCodeLeft}, nil, RotateXNeg)
	p.BindKey(event.KeyShortcut{Mods: event.ModShift, Code: event.KeyCodeRight}, nil, RotateXPos)
	p.BindKey(event.KeyShortcut{Mods: event.ModShift, Code: event.KeyCodeDown}, nil, RotateYNeg)
	p.BindKey(event.KeyShortcut{Mods: event.ModShift, Code: event.KeyCodeUp}, nil, RotateYPos)
	p.BindKey(event.KeyShortcut{Rune: 'z'}, nil, RotateZNeg)
	// Terminals report shifted letters as uppercase runes, not as a
	// shift-modified code.
	p.BindKey(event.KeyShortcut{Rune: 'Z'}, nil, RotateZPos)
}
