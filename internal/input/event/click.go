package event

import "fmt"

// Click represents a button click event at a screen position.
type Click struct {
	attrs

	// ID is the button that was clicked.
	ID DeviceID

	// Count is the click count. Only 1 and 2 are meaningful.
	Count int

	// X, Y are the screen coordinates of the click.
	X, Y float64
}

// NewClick creates a click event.
func NewClick(mods Modifier, id DeviceID, count int, x, y float64) Click {
	return Click{attrs: newAttrs(mods), ID: id, Count: count, X: x, Y: y}
}

// Kind returns KindClick.
func (c Click) Kind() Kind { return KindClick }

// Shortcut returns the binding key for this event.
func (c Click) Shortcut() ClickShortcut {
	return ClickShortcut{ID: c.ID, Count: c.Count}
}

// Flush returns a copy marked as the terminal event of a click gesture.
func (c Click) Flush() Click {
	c.flushed = true
	return c
}

// Clone returns a detached copy of the event.
func (c Click) Clone() Click { return c }

// Equals reports whether two events represent the same click.
// Timestamps are not compared.
func (c Click) Equals(other Click) bool {
	return c.ID == other.ID && c.Count == other.Count &&
		c.X == other.X && c.Y == other.Y && c.mods == other.mods
}

// String returns a diagnostic representation.
func (c Click) String() string {
	return fmt.Sprintf("click(%s x%d @%g,%g)", c.ID, c.Count, c.X, c.Y)
}
