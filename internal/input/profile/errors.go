package profile

import "errors"

// Profile errors.
var (
	// ErrUnknownAction indicates an action name outside the closed set.
	ErrUnknownAction = errors.New("profile: unknown action")

	// ErrUnknownChannel indicates an unrecognized device channel name.
	ErrUnknownChannel = errors.New("profile: unknown channel")

	// ErrUnknownModifier indicates an unrecognized modifier name.
	ErrUnknownModifier = errors.New("profile: unknown modifier")

	// ErrBadShortcut indicates a shortcut spec with missing or
	// conflicting fields.
	ErrBadShortcut = errors.New("profile: bad shortcut")
)
