package event

import "fmt"

// Key represents a keyboard event. A key event takes one of two forms:
// a literal character (Rune != 0, modifiers folded into the character), or
// a modifier mask plus a virtual key code. Exactly one form is set.
type Key struct {
	attrs

	// Rune is the literal character, or 0 for the (modifiers, code) form.
	Rune rune

	// Code is the virtual key code for the (modifiers, code) form.
	// Values are a host convention; the core only compares them.
	Code int
}

// Virtual key codes for the arrow keys, used by the default key
// bindings. Hosts with platform key codes should translate to these.
const (
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)

// NewKeyRune creates a key event for a literal character.
func NewKeyRune(r rune) Key {
	return Key{attrs: newAttrs(ModNone), Rune: r}
}

// NewKey creates a key event for a modifier mask plus virtual key code.
func NewKey(mods Modifier, code int) Key {
	return Key{attrs: newAttrs(mods), Code: code}
}

// Kind returns KindKey.
func (k Key) Kind() Kind { return KindKey }

// IsRune returns true if this is the literal-character form.
func (k Key) IsRune() bool { return k.Rune != 0 }

// Shortcut returns the binding key for this event.
func (k Key) Shortcut() KeyShortcut {
	if k.IsRune() {
		return KeyShortcut{Rune: k.Rune}
	}
	return KeyShortcut{Mods: k.mods, Code: k.Code}
}

// Flush returns a copy marked as the terminal event of a key gesture.
func (k Key) Flush() Key {
	k.flushed = true
	return k
}

// Clone returns a detached copy of the event.
func (k Key) Clone() Key { return k }

// Equals reports whether two events represent the same key press.
// Timestamps are not compared.
func (k Key) Equals(other Key) bool {
	return k.Rune == other.Rune && k.Code == other.Code && k.mods == other.mods
}

// String returns a diagnostic representation.
func (k Key) String() string {
	if k.IsRune() {
		return fmt.Sprintf("key(%q)", k.Rune)
	}
	return fmt.Sprintf("key(%s+%d)", k.mods, k.Code)
}
