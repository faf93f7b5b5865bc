// Package profile maps shortcuts to actions, one table per event category
// per target. Binding a shortcut always replaces any prior binding; a slot
// is owned exclusively.
//
// Presets (arcball, first-person, third-person) replace all motion and
// click bindings for a pair of eye/body profiles in one clear-then-set
// step, so presets never partially combine. Profiles can also be loaded
// from JSON files or Lua scripts (see the script package).
package profile
