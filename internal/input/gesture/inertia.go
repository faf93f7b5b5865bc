package gesture

import (
	"time"

	"github.com/dshills/interact/internal/scene"
)

// spinThreshold is the angular step, in radians, below which a spin
// task self-cancels.
const spinThreshold = 1e-3

// spinStall is the inter-event delay beyond which a release is too
// stale to seed a spin: the cursor sat still before the button came up.
const spinStall = 200 * time.Millisecond

// spinTask replays a decaying rotation increment once per tick.
type spinTask struct {
	increment scene.Rotation
	decay     float64
}

// spinDecay derives the per-tick decay factor from the release speed
// and delay of the drag's final two-event window. A faster release
// spins longer; a stalled release returns zero, meaning no spin at
// all. Nonzero results stay inside [0.5, 0.95] so every spin both
// visibly coasts and terminates.
func spinDecay(speed float64, delay time.Duration) float64 {
	if delay > spinStall {
		return 0
	}
	d := speed / (speed + 50)
	if d < 0.5 {
		return 0.5
	}
	if d > 0.95 {
		return 0.95
	}
	return d
}

// step applies one increment and reports whether the task is still
// alive.
func (s *spinTask) step(t Target) bool {
	t.ApplyRotation(s.increment)
	s.increment = s.increment.ScaleAngle(s.decay)
	return s.increment.Angle() >= spinThreshold
}

// flightTask moves the target forward (direction +1) or backward
// (direction -1) by the target's fly speed once per tick.
type flightTask struct {
	direction float64
}

func (f *flightTask) step(t Target) {
	t.FlightStep(f.direction * t.FlySpeed())
	t.UpdateUpVector()
}
