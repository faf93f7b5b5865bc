// Package event defines the input event model: keyboard, click and motion
// events plus the shortcut value types used as binding keys.
//
// Events form a closed set of kinds. Dispatch code switches on Kind once at
// the dispatch point and never re-tests deeper in the call chain. All event
// types are immutable once constructed; Clone produces a detached copy.
//
// A motion event carries a fixed number of degrees of freedom (1, 2, 3 or 6)
// and an optional previous event forming a two-event window. Speed and delay
// are derived from that window. Widening to a higher DOF is lossless (extra
// axes zero); narrowing is an explicit, lossy axis-prefix projection.
package event
