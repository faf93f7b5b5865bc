package event

import "fmt"

// Shortcuts are the identity keys of the binding tables. They are plain
// comparable structs so Go map semantics provide exactly the required
// equality: modifier mask plus channel id, or a literal character.

// KeyShortcut identifies a keyboard binding. Either Rune is set (literal
// character, modifiers folded in) or Mods+Code are set.
type KeyShortcut struct {
	Mods Modifier
	Code int
	Rune rune
}

// String returns a diagnostic representation.
func (s KeyShortcut) String() string {
	if s.Rune != 0 {
		return fmt.Sprintf("%q", s.Rune)
	}
	return fmt.Sprintf("%s+%d", s.Mods, s.Code)
}

// ClickShortcut identifies a click binding by button and click count.
type ClickShortcut struct {
	ID    DeviceID
	Count int
}

// String returns a diagnostic representation.
func (s ClickShortcut) String() string {
	return fmt.Sprintf("%s x%d", s.ID, s.Count)
}

// MotionShortcut identifies a motion binding by modifier mask and channel.
type MotionShortcut struct {
	Mods Modifier
	ID   DeviceID
}

// String returns a diagnostic representation.
func (s MotionShortcut) String() string {
	return fmt.Sprintf("%s+%s", s.Mods, s.ID)
}
