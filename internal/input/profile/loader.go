package profile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/interact/internal/input/event"
)

// The profile file format is JSON:
//
//	{
//	  "name": "my-bindings",
//	  "bindings": {
//	    "motion": [{"mods": "shift", "id": "left", "action": "zoomOnRegion"}],
//	    "click":  [{"id": "right", "count": 2, "action": "center"}],
//	    "key":    [{"rune": "n", "action": "align"},
//	               {"mods": "shift", "code": 38, "action": "rotateYPos"}]
//	  }
//	}
//
// Unknown extra fields are ignored; unknown action, channel or modifier
// names are errors.

// LoadFile reads a profile file and installs its bindings into p.
// Existing bindings for other shortcuts are kept.
func LoadFile(path string, p *Profile) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading profile file: %w", err)
	}
	return Load(data, p)
}

// Load installs the bindings described by a JSON document into p.
func Load(data []byte, p *Profile) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("profile: invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	var loadErr error
	doc.Get("bindings.motion").ForEach(func(_, v gjson.Result) bool {
		mods, err := ParseModifiers(v.Get("mods").String())
		if err != nil {
			loadErr = err
			return false
		}
		id, err := ParseChannel(v.Get("id").String())
		if err != nil {
			loadErr = err
			return false
		}
		act, ok := ParseAction(v.Get("action").String())
		if !ok {
			loadErr = fmt.Errorf("%w: %q", ErrUnknownAction, v.Get("action").String())
			return false
		}
		p.BindMotion(event.MotionShortcut{Mods: mods, ID: id}, nil, act)
		return true
	})
	if loadErr != nil {
		return loadErr
	}

	doc.Get("bindings.click").ForEach(func(_, v gjson.Result) bool {
		id, err := ParseChannel(v.Get("id").String())
		if err != nil {
			loadErr = err
			return false
		}
		count := int(v.Get("count").Int())
		if count == 0 {
			count = 1
		}
		act, ok := ParseAction(v.Get("action").String())
		if !ok {
			loadErr = fmt.Errorf("%w: %q", ErrUnknownAction, v.Get("action").String())
			return false
		}
		p.BindClick(event.ClickShortcut{ID: id, Count: count}, nil, act)
		return true
	})
	if loadErr != nil {
		return loadErr
	}

	doc.Get("bindings.key").ForEach(func(_, v gjson.Result) bool {
		act, ok := ParseAction(v.Get("action").String())
		if !ok {
			loadErr = fmt.Errorf("%w: %q", ErrUnknownAction, v.Get("action").String())
			return false
		}
		var s event.KeyShortcut
		if r := v.Get("rune").String(); r != "" {
			if len([]rune(r)) != 1 {
				loadErr = fmt.Errorf("%w: rune %q", ErrBadShortcut, r)
				return false
			}
			s = event.KeyShortcut{Rune: []rune(r)[0]}
		} else if code := v.Get("code"); code.Exists() {
			mods, err := ParseModifiers(v.Get("mods").String())
			if err != nil {
				loadErr = err
				return false
			}
			s = event.KeyShortcut{Mods: mods, Code: int(code.Int())}
		} else {
			loadErr = fmt.Errorf("%w: key binding needs rune or code", ErrBadShortcut)
			return false
		}
		p.BindKey(s, nil, act)
		return true
	})
	return loadErr
}

// Save serializes the profile's bindings to the JSON file format.
// Entries are sorted for stable output.
func Save(name string, p *Profile) ([]byte, error) {
	out := "{}"
	var err error
	if out, err = sjson.Set(out, "name", name); err != nil {
		return nil, err
	}

	motions := make([]event.MotionShortcut, 0, len(p.motions))
	for s := range p.motions {
		motions = append(motions, s)
	}
	sort.Slice(motions, func(i, j int) bool {
		if motions[i].ID != motions[j].ID {
			return motions[i].ID < motions[j].ID
		}
		return motions[i].Mods < motions[j].Mods
	})
	for i, s := range motions {
		b := p.motions[s]
		prefix := fmt.Sprintf("bindings.motion.%d", i)
		if out, err = sjson.Set(out, prefix+".mods", ModifiersName(s.Mods)); err != nil {
			return nil, err
		}
		if out, err = sjson.Set(out, prefix+".id", s.ID.String()); err != nil {
			return nil, err
		}
		if out, err = sjson.Set(out, prefix+".action", b.Action.String()); err != nil {
			return nil, err
		}
	}

	clicks := make([]event.ClickShortcut, 0, len(p.clicks))
	for s := range p.clicks {
		clicks = append(clicks, s)
	}
	sort.Slice(clicks, func(i, j int) bool {
		if clicks[i].ID != clicks[j].ID {
			return clicks[i].ID < clicks[j].ID
		}
		return clicks[i].Count < clicks[j].Count
	})
	for i, s := range clicks {
		b := p.clicks[s]
		prefix := fmt.Sprintf("bindings.click.%d", i)
		if out, err = sjson.Set(out, prefix+".id", s.ID.String()); err != nil {
			return nil, err
		}
		if out, err = sjson.Set(out, prefix+".count", s.Count); err != nil {
			return nil, err
		}
		if out, err = sjson.Set(out, prefix+".action", b.Action.String()); err != nil {
			return nil, err
		}
	}

	keys := make([]event.KeyShortcut, 0, len(p.keys))
	for s := range p.keys {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Rune != keys[j].Rune {
			return keys[i].Rune < keys[j].Rune
		}
		if keys[i].Code != keys[j].Code {
			return keys[i].Code < keys[j].Code
		}
		return keys[i].Mods < keys[j].Mods
	})
	for i, s := range keys {
		b := p.keys[s]
		prefix := fmt.Sprintf("bindings.key.%d", i)
		if s.Rune != 0 {
			if out, err = sjson.Set(out, prefix+".rune", string(s.Rune)); err != nil {
				return nil, err
			}
		} else {
			if out, err = sjson.Set(out, prefix+".mods", ModifiersName(s.Mods)); err != nil {
				return nil, err
			}
			if out, err = sjson.Set(out, prefix+".code", s.Code); err != nil {
				return nil, err
			}
		}
		if out, err = sjson.Set(out, prefix+".action", b.Action.String()); err != nil {
			return nil, err
		}
	}

	return []byte(out), nil
}

// SaveFile writes the profile's bindings to path.
func SaveFile(path, name string, p *Profile) error {
	data, err := Save(name, p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ParseModifiers parses a "shift|ctrl|alt|meta" specification. The
// empty string and "none" mean no modifiers.
func ParseModifiers(spec string) (event.Modifier, error) {
	if spec == "" || spec == "none" {
		return event.ModNone, nil
	}
	var mods event.Modifier
	for _, part := range strings.Split(spec, "|") {
		switch strings.TrimSpace(part) {
		case "shift":
			mods = mods.With(event.ModShift)
		case "ctrl":
			mods = mods.With(event.ModCtrl)
		case "alt":
			mods = mods.With(event.ModAlt)
		case "meta":
			mods = mods.With(event.ModMeta)
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownModifier, part)
		}
	}
	return mods, nil
}

// ModifiersName is the inverse of ParseModifiers.
func ModifiersName(m event.Modifier) string {
	if m == event.ModNone {
		return "none"
	}
	var parts []string
	if m.HasShift() {
		parts = append(parts, "shift")
	}
	if m.HasCtrl() {
		parts = append(parts, "ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "alt")
	}
	if m.HasMeta() {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "|")
}

// ParseChannel maps a channel name ("left", "center", "right",
// "wheel", "none") to its DeviceID.
func ParseChannel(name string) (event.DeviceID, error) {
	switch name {
	case "", "none":
		return event.NoButton, nil
	case "left":
		return event.LeftButton, nil
	case "center":
		return event.CenterButton, nil
	case "right":
		return event.RightButton, nil
	case "wheel":
		return event.Wheel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}
