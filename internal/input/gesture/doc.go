// Package gesture turns motion event streams into three-phase
// gestures and drives the inertial continuations they leave behind.
//
// A Controller is per-target. Motion events move it between Idle and
// Active: the first non-flushed event of a drag begins a gesture under
// the action bound to its shortcut, further events with the same
// binding continue it, and the flush event ends it. A binding change
// mid-drag ends the old gesture and begins a new one with the same
// event. Keyboard and click events are single-phase and bypass the
// machine entirely.
//
// Ended rotation drags may leave a spin task and flight gestures a
// flight task; both are advanced by Advance once per render tick and
// decay or run until stopped.
package gesture
