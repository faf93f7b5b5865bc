package profile

// Action identifies a semantic interaction. The set is closed; dispatch
// selects behavior by switching on the value, never by comparing names.
type Action int

const (
	// ActionNone is the zero value; no action.
	ActionNone Action = iota

	// Rotate is free arcball rotation.
	Rotate
	// RotateXYZ is rotation about an arbitrary axis from a 3-DOF stream.
	RotateXYZ
	// RotateCAD is CAD-style rotation about the scene up vector.
	RotateCAD
	// ScreenRotate rotates about the axis orthogonal to the screen.
	ScreenRotate
	// TranslateRotate combines translation and rotation from a 6-DOF stream.
	TranslateRotate

	// Translate moves in the screen plane.
	Translate
	// ScreenTranslate moves along the screen axes.
	ScreenTranslate
	// TranslateZ moves along the view direction.
	TranslateZ

	// Scale changes the target magnitude.
	Scale
	// Zoom moves the eye toward or away from the scene.
	Zoom
	// ZoomOnRegion zooms the eye onto the rectangle spanned by a drag.
	// The effect is deferred to the end of the gesture.
	ZoomOnRegion

	// MoveForward flies the eye forward while the gesture lasts.
	MoveForward
	// MoveBackward flies the eye backward while the gesture lasts.
	MoveBackward
	// LookAround turns the eye in place.
	LookAround
	// Drive flies forward with speed controlled by the vertical drag extent.
	Drive
	// RotateZ rolls about the forward axis.
	RotateZ

	// Align aligns the target frame with its reference frame.
	Align
	// Center centers the target in the view.
	Center

	// Keyboard nudge actions.
	TranslateXNeg
	TranslateXPos
	TranslateYNeg
	TranslateYPos
	RotateXNeg
	RotateXPos
	RotateYNeg
	RotateYPos
	RotateZNeg
	RotateZPos
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	Rotate:          "rotate",
	RotateXYZ:       "rotateXYZ",
	RotateCAD:       "rotateCAD",
	ScreenRotate:    "screenRotate",
	TranslateRotate: "translateRotate",
	Translate:       "translate",
	ScreenTranslate: "screenTranslate",
	TranslateZ:      "translateZ",
	Scale:           "scale",
	Zoom:            "zoom",
	ZoomOnRegion:    "zoomOnRegion",
	MoveForward:     "moveForward",
	MoveBackward:    "moveBackward",
	LookAround:      "lookAround",
	Drive:           "drive",
	RotateZ:         "rotateZ",
	Align:           "align",
	Center:          "center",
	TranslateXNeg:   "translateXNeg",
	TranslateXPos:   "translateXPos",
	TranslateYNeg:   "translateYNeg",
	TranslateYPos:   "translateYPos",
	RotateXNeg:      "rotateXNeg",
	RotateXPos:      "rotateXPos",
	RotateYNeg:      "rotateYNeg",
	RotateYPos:      "rotateYPos",
	RotateZNeg:      "rotateZNeg",
	RotateZPos:      "rotateZPos",
}

// String returns the canonical action name, as used by the JSON and Lua
// profile loaders.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAction resolves a canonical action name. Returns false for names
// outside the closed set.
func ParseAction(name string) (Action, bool) {
	for a, s := range actionNames {
		if s == name {
			return a, true
		}
	}
	return ActionNone, false
}

// IsRotation reports whether the action belongs to the rotation family
// that seeds inertial spin at gesture end.
func (a Action) IsRotation() bool {
	switch a {
	case Rotate, RotateXYZ, RotateCAD, ScreenRotate, TranslateRotate:
		return true
	}
	return false
}

// IsFlight reports whether the action drives a flight task.
func (a Action) IsFlight() bool {
	switch a {
	case MoveForward, MoveBackward, Drive:
		return true
	}
	return false
}
