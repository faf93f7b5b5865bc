package scene

import "errors"

var (
	// ErrFrameLoop is returned when a link or reference-frame change
	// would create a cycle.
	ErrFrameLoop = errors.New("scene: frame reference loop")

	// ErrLinked is returned when a frame that already participates in
	// a link is asked to link again.
	ErrLinked = errors.New("scene: frame already linked")
)
