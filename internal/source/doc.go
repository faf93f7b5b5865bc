// Package source adapts terminal input to the interaction event model.
//
// Terminal wraps a tcell screen and translates its key and mouse
// events: key presses become event.Key values, button releases
// without movement become clicks (with double-click detection), and
// presses followed by movement become relative 2-DOF motion streams
// that chain their previous event and end with a flush on release.
// Wheel notches are emitted as complete one-notch gestures.
//
// The translation itself lives in Tracker, which needs no screen and
// is tested against synthetic tcell events.
package source
