package profile

import (
	"github.com/dshills/interact/internal/input/event"
)

// Binding pairs the object that owns an action with the action itself.
// An Owner implementing Performer receives the action in place of the
// profile's target; a nil or non-Performer owner leaves dispatch with
// the target.
type Binding struct {
	Owner  any
	Action Action
}

// Performer executes a bound action against the event that triggered
// it.
type Performer interface {
	Perform(a Action, ev event.Event)
}

// Performer returns the bound owner when it can receive actions.
func (b Binding) Performer() (Performer, bool) {
	p, ok := b.Owner.(Performer)
	return p, ok
}

// Profile holds the shortcut-to-action tables for one target, segmented
// by event category. Binding a shortcut replaces any existing binding for
// that exact shortcut.
type Profile struct {
	keys    map[event.KeyShortcut]Binding
	clicks  map[event.ClickShortcut]Binding
	motions map[event.MotionShortcut]Binding
}

// New creates an empty profile.
func New() *Profile {
	return &Profile{
		keys:    make(map[event.KeyShortcut]Binding),
		clicks:  make(map[event.ClickShortcut]Binding),
		motions: make(map[event.MotionShortcut]Binding),
	}
}

// BindKey binds a keyboard shortcut, replacing any prior binding.
func (p *Profile) BindKey(s event.KeyShortcut, owner any, a Action) {
	p.keys[s] = Binding{Owner: owner, Action: a}
}

// BindClick binds a click shortcut, replacing any prior binding.
func (p *Profile) BindClick(s event.ClickShortcut, owner any, a Action) {
	p.clicks[s] = Binding{Owner: owner, Action: a}
}

// BindMotion binds a motion shortcut, replacing any prior binding.
func (p *Profile) BindMotion(s event.MotionShortcut, owner any, a Action) {
	p.motions[s] = Binding{Owner: owner, Action: a}
}

// Key returns the binding for a keyboard shortcut.
func (p *Profile) Key(s event.KeyShortcut) (Binding, bool) {
	b, ok := p.keys[s]
	return b, ok
}

// Click returns the binding for a click shortcut.
func (p *Profile) Click(s event.ClickShortcut) (Binding, bool) {
	b, ok := p.clicks[s]
	return b, ok
}

// Motion returns the binding for a motion shortcut.
func (p *Profile) Motion(s event.MotionShortcut) (Binding, bool) {
	b, ok := p.motions[s]
	return b, ok
}

// Lookup resolves the binding for an arbitrary event.
func (p *Profile) Lookup(ev event.Event) (Binding, bool) {
	switch e := ev.(type) {
	case event.Key:
		return p.Key(e.Shortcut())
	case event.Click:
		return p.Click(e.Shortcut())
	case *event.Motion:
		return p.Motion(e.Shortcut())
	}
	return Binding{}, false
}

// UnbindKey removes a keyboard binding.
func (p *Profile) UnbindKey(s event.KeyShortcut) { delete(p.keys, s) }

// UnbindClick removes a click binding.
func (p *Profile) UnbindClick(s event.ClickShortcut) { delete(p.clicks, s) }

// UnbindMotion removes a motion binding.
func (p *Profile) UnbindMotion(s event.MotionShortcut) { delete(p.motions, s) }

// UnbindAll removes every binding in every category.
func (p *Profile) UnbindAll() {
	clear(p.keys)
	clear(p.clicks)
	clear(p.motions)
}

// UnbindAllKeys removes every keyboard binding.
func (p *Profile) UnbindAllKeys() { clear(p.keys) }

// UnbindAllClicks removes every click binding.
func (p *Profile) UnbindAllClicks() { clear(p.clicks) }

// UnbindAllMotions removes every motion binding.
func (p *Profile) UnbindAllMotions() { clear(p.motions) }

// UnbindMotionIDs removes motion bindings whose channel is in ids,
// leaving other channels (e.g. the wheel) intact.
func (p *Profile) UnbindMotionIDs(ids ...event.DeviceID) {
	for s := range p.motions {
		for _, id := range ids {
			if s.ID == id {
				delete(p.motions, s)
				break
			}
		}
	}
}

// UnbindClickIDs removes click bindings whose button is in ids.
func (p *Profile) UnbindClickIDs(ids ...event.DeviceID) {
	for s := range p.clicks {
		for _, id := range ids {
			if s.ID == id {
				delete(p.clicks, s)
				break
			}
		}
	}
}

// IsActionBound reports whether any shortcut in any category is bound to
// the action.
func (p *Profile) IsActionBound(a Action) bool {
	for _, b := range p.keys {
		if b.Action == a {
			return true
		}
	}
	for _, b := range p.clicks {
		if b.Action == a {
			return true
		}
	}
	for _, b := range p.motions {
		if b.Action == a {
			return true
		}
	}
	return false
}

// From replaces this profile's contents with a copy of other's.
func (p *Profile) From(other *Profile) {
	p.UnbindAll()
	for s, b := range other.keys {
		p.keys[s] = b
	}
	for s, b := range other.clicks {
		p.clicks[s] = b
	}
	for s, b := range other.motions {
		p.motions[s] = b
	}
}

// Len returns the total number of bindings across all categories.
func (p *Profile) Len() int {
	return len(p.keys) + len(p.clicks) + len(p.motions)
}
