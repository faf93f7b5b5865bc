package input

import (
	"github.com/dshills/interact/internal/input/gesture"
	"github.com/dshills/interact/internal/scene"
)

// Interactive couples a scene body with its gesture controller. The
// two reference each other through interfaces; this is the one place
// that wires them concretely.
type Interactive struct {
	Body       *scene.Body
	Controller *gesture.Controller
}

// NewInteractive builds a body in env and attaches a controller over
// the body's own binding profile.
func NewInteractive(env scene.Env, eye bool) *Interactive {
	b := scene.NewBody(env, eye)
	c := gesture.NewController(b, b.Profile())
	b.SetMachine(c)
	return &Interactive{Body: b, Controller: c}
}
