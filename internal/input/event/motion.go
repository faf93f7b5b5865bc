package event

import (
	"fmt"
	"math"
	"time"
)

// MaxDOF is the widest motion event the model supports.
const MaxDOF = 6

// validDOF is the closed set of supported degree-of-freedom counts.
func validDOF(n int) bool {
	return n == 1 || n == 2 || n == 3 || n == 6
}

// Motion represents a motion event with a fixed number of degrees of
// freedom. The per-axis values are relative deltas unless Absolute() is
// true, in which case they are absolute positions.
//
// A motion event may reference the previous event of the same physical
// stream; Speed and Delay are derived from that two-event window.
type Motion struct {
	attrs

	// ID is the device channel: a button held during the drag, the
	// wheel, or NoButton for bare cursor movement.
	ID DeviceID

	dof      int
	deltas   [MaxDOF]float64
	absolute bool
	prev     *Motion

	posX, posY float64
	hasPos     bool
}

// NewMotion1 creates a 1-DOF relative motion event (e.g. a wheel step).
func NewMotion1(mods Modifier, id DeviceID, dx float64) *Motion {
	return &Motion{attrs: newAttrs(mods), ID: id, dof: 1, deltas: [MaxDOF]float64{dx}}
}

// NewMotion2 creates a 2-DOF relative motion event (e.g. a mouse drag).
func NewMotion2(mods Modifier, id DeviceID, dx, dy float64) *Motion {
	return &Motion{attrs: newAttrs(mods), ID: id, dof: 2, deltas: [MaxDOF]float64{dx, dy}}
}

// NewMotion3 creates a 3-DOF relative motion event.
func NewMotion3(mods Modifier, id DeviceID, dx, dy, dz float64) *Motion {
	return &Motion{attrs: newAttrs(mods), ID: id, dof: 3, deltas: [MaxDOF]float64{dx, dy, dz}}
}

// NewMotion6 creates a 6-DOF relative motion event (translation plus
// rotation, e.g. a space navigator).
func NewMotion6(mods Modifier, id DeviceID, x, y, z, rx, ry, rz float64) *Motion {
	return &Motion{attrs: newAttrs(mods), ID: id, dof: 6, deltas: [MaxDOF]float64{x, y, z, rx, ry, rz}}
}

// NewAbsolute2 creates a 2-DOF motion event carrying absolute positions
// rather than relative deltas.
func NewAbsolute2(mods Modifier, id DeviceID, x, y float64) *Motion {
	m := NewMotion2(mods, id, x, y)
	m.absolute = true
	m.posX, m.posY = x, y
	m.hasPos = true
	return m
}

// Kind returns KindMotion.
func (m *Motion) Kind() Kind { return KindMotion }

// DOF returns the number of degrees of freedom (1, 2, 3 or 6).
func (m *Motion) DOF() int { return m.dof }

// Absolute reports whether the axis values are absolute positions.
func (m *Motion) Absolute() bool { return m.absolute }

// Delta returns the value of axis i. Axes beyond DOF() are zero.
func (m *Motion) Delta(i int) float64 {
	if i < 0 || i >= MaxDOF {
		return 0
	}
	return m.deltas[i]
}

// X returns the first axis value.
func (m *Motion) X() float64 { return m.deltas[0] }

// Y returns the second axis value.
func (m *Motion) Y() float64 { return m.deltas[1] }

// Z returns the third axis value.
func (m *Motion) Z() float64 { return m.deltas[2] }

// At returns the cursor position at which the event occurred, when its
// source recorded one. Deltas say how far the cursor moved; the
// position says where it is, which is what hit-testing needs.
func (m *Motion) At() (x, y float64, ok bool) {
	return m.posX, m.posY, m.hasPos
}

// WithPosition returns a copy carrying the cursor position.
func (m *Motion) WithPosition(x, y float64) *Motion {
	cp := *m
	cp.posX, cp.posY = x, y
	cp.hasPos = true
	return &cp
}

// Prev returns the previous event of the stream, or nil.
func (m *Motion) Prev() *Motion { return m.prev }

// WithPrev returns a copy referencing prev as the previous event.
func (m *Motion) WithPrev(prev *Motion) *Motion {
	cp := *m
	cp.prev = prev
	return &cp
}

// Flush returns a copy marked as the terminal event of the motion gesture.
func (m *Motion) Flush() *Motion {
	cp := *m
	cp.flushed = true
	return &cp
}

// Clone returns a detached deep copy, including the previous-event window.
func (m *Motion) Clone() *Motion {
	cp := *m
	if m.prev != nil {
		prev := *m.prev
		prev.prev = nil
		cp.prev = &prev
	}
	return &cp
}

// Shortcut returns the binding key for this event.
func (m *Motion) Shortcut() MotionShortcut {
	return MotionShortcut{Mods: m.mods, ID: m.ID}
}

// Distance returns the magnitude of the motion represented by this event:
// the positional difference from the previous event for absolute streams,
// the delta magnitude otherwise.
func (m *Motion) Distance() float64 {
	var sum float64
	if m.absolute && m.prev != nil {
		for i := 0; i < m.dof; i++ {
			d := m.deltas[i] - m.prev.deltas[i]
			sum += d * d
		}
	} else {
		for i := 0; i < m.dof; i++ {
			sum += m.deltas[i] * m.deltas[i]
		}
	}
	return math.Sqrt(sum)
}

// Delay returns the time elapsed since the previous event, or zero when
// there is no previous event.
func (m *Motion) Delay() time.Duration {
	if m.prev == nil {
		return 0
	}
	return m.time.Sub(m.prev.time)
}

// Speed returns the instantaneous speed in distance units per second.
// Zero when no previous event exists or no time elapsed.
func (m *Motion) Speed() float64 {
	d := m.Delay()
	if d <= 0 {
		return 0
	}
	return m.Distance() / d.Seconds()
}

// ToDOF reprojects the event to n degrees of freedom. Widening is lossless
// (extra axes zero); narrowing keeps the leading axes and discards the
// rest. The previous-event window is projected along with the event.
// Returns false when n is not a supported DOF count.
func (m *Motion) ToDOF(n int) (*Motion, bool) {
	if !validDOF(n) {
		return nil, false
	}
	if n == m.dof {
		return m, true
	}
	cp := *m
	cp.dof = n
	for i := n; i < MaxDOF; i++ {
		cp.deltas[i] = 0
	}
	if m.prev != nil {
		prev, ok := m.prev.ToDOF(n)
		if !ok {
			return nil, false
		}
		cp.prev = prev
	}
	return &cp, true
}

// DOF2 reprojects the event to the 2-DOF representation that drives the
// gesture pipeline.
func (m *Motion) DOF2() (*Motion, bool) {
	return m.ToDOF(2)
}

// Equals reports whether two events represent the same motion.
// Timestamps and the previous-event window are not compared.
func (m *Motion) Equals(other *Motion) bool {
	if other == nil {
		return false
	}
	return m.ID == other.ID && m.dof == other.dof &&
		m.deltas == other.deltas && m.absolute == other.absolute &&
		m.mods == other.mods
}

// String returns a diagnostic representation.
func (m *Motion) String() string {
	return fmt.Sprintf("motion(%s dof%d %v)", m.ID, m.dof, m.deltas[:m.dof])
}
