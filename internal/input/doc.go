// Package input is the top level of the interaction pipeline.
//
// The input package ties the lower layers together: agents resolve
// events to grab targets, per-target gesture controllers sequence
// motion into begin/continue/end phases, and inertial tasks coast
// after a drag ends. A Handler owns the agents and the per-frame
// duties: polling agent feeds, routing pushed events, and advancing
// every registered ticker once per render frame.
//
// # Usage
//
//	h := input.NewHandler()
//	mouse := agent.New("mouse")
//	h.AddAgent(mouse)
//
//	eye := input.NewInteractive(env, true)
//	mouse.SetDefaultGrabber(eye.Body)
//	h.AddTicker(eye.Controller)
//
//	// once per render frame
//	h.Frame(tick)
//
//	// pushed events
//	h.HandleEvent("mouse", ev)
//
// The pipeline is single-goroutine: events are delivered synchronously
// and driven to completion before the next one. The handler's lock
// guards registration only.
package input
