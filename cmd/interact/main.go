// Package main is a terminal playground for the interaction pipeline.
//
// It wires a tcell event source, a mouse/keyboard agent, a camera-like
// eye and one draggable object into a render loop. Drag with the mouse
// buttons to rotate and translate, use the wheel to scale, and watch
// inertial spin coast after a quick drag.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/interact/internal/input"
	"github.com/dshills/interact/internal/input/agent"
	"github.com/dshills/interact/internal/input/event"
	"github.com/dshills/interact/internal/input/profile"
	"github.com/dshills/interact/internal/scene"
	"github.com/dshills/interact/internal/script"
	"github.com/dshills/interact/internal/source"
)

var (
	version = "dev"
)

func main() {
	os.Exit(run())
}

type options struct {
	preset      string
	profilePath string
	luaPath     string
	flat        bool
	damping     float64
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 0
	}

	term, err := source.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	env := &terminalEnv{term: term, three: !opts.flat}

	eye := input.NewInteractive(env, true)
	body := input.NewInteractive(env, false)
	eye.Body.SetDamping(opts.damping)
	body.Body.SetDamping(opts.damping)

	if err := configureBindings(opts, eye.Body, body.Body, !opts.flat); err != nil {
		term.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	w, h := term.Size()
	body.Body.Translate(scene.Vec{X: float64(w) / 2, Y: float64(h) / 2})
	body.Body.PixelTest = func(x, y float64) bool {
		p := body.Body.Position()
		return math.Abs(x-p.X) <= 2 && math.Abs(y-p.Y) <= 1
	}

	mouse := agent.New("terminal")
	mouse.AddGrabber(body.Body)
	mouse.SetDefaultGrabber(eye.Body)

	h2 := input.NewHandler()
	h2.AddAgent(mouse)
	h2.AddTicker(eye.Controller)
	h2.AddTicker(body.Controller)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.Shutdown()
		os.Exit(0)
	}()

	events := make(chan event.Event, 64)
	go func() {
		for {
			ev := term.Poll()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	var tick uint64

	for {
		select {
		case ev, open := <-events:
			if !open {
				return 0
			}
			if k, isKey := ev.(event.Key); isKey && k.IsRune() && k.Rune == 'q' {
				return 0
			}
			h2.HandleEvent("terminal", ev)
		case <-ticker.C:
			tick++
			h2.Frame(tick)
			draw(term, eye, body)
		}
	}
}

func configureBindings(opts options, eyeBody, objBody *scene.Body, three bool) error {
	preset, ok := profile.ParsePreset(opts.preset)
	if !ok {
		return fmt.Errorf("unknown preset %q", opts.preset)
	}
	profile.ApplyPreset(preset, eyeBody.Profile(), objBody.Profile(), three)
	profile.DefaultKeyBindings(eyeBody.Profile())

	if opts.profilePath != "" {
		if err := profile.LoadFile(opts.profilePath, objBody.Profile()); err != nil {
			return err
		}
	}
	if opts.luaPath != "" {
		if err := script.LoadProfileFile(opts.luaPath, objBody.Profile()); err != nil {
			return err
		}
	}
	return nil
}

// terminalEnv adapts the screen to the scene environment queries.
type terminalEnv struct {
	term       *source.Terminal
	three      bool
	rotateHint bool
	zoomHint   bool
}

func (e *terminalEnv) Is3D() bool { return e.three }

func (e *terminalEnv) Radius() float64 {
	w, h := e.term.Size()
	return math.Max(float64(w), float64(h)) / 2
}

func (e *terminalEnv) UpVector() scene.Vec { return scene.Vec{Y: 1} }

func (e *terminalEnv) RotateHint(on bool) { e.rotateHint = on }

func (e *terminalEnv) ZoomHint(on bool) { e.zoomHint = on }

func draw(term *source.Terminal, eye, body *input.Interactive) {
	s := term.Screen()
	s.Clear()

	p := body.Body.Position()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	s.SetContent(int(p.X), int(p.Y), '◆', nil, style)

	status := fmt.Sprintf(
		"eye %s obj %s scale %.2f  drag=rotate, q=quit",
		gestureLabel(eye), gestureLabel(body), body.Body.Scaling())
	for i, r := range status {
		s.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	s.Show()
}

func gestureLabel(i *input.Interactive) string {
	if i.Controller.SpinActive() {
		return "spinning"
	}
	if act := i.Controller.Current(); act != profile.ActionNone {
		return act.String()
	}
	return "idle"
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.preset, "preset", "arcball", "Binding preset (arcball, firstPerson, thirdPerson)")
	flag.StringVar(&opts.profilePath, "profile", "", "JSON binding profile for the object")
	flag.StringVar(&opts.luaPath, "lua", "", "Lua binding profile for the object")
	flag.BoolVar(&opts.flat, "2d", false, "Two-dimensional scene")
	flag.Float64Var(&opts.damping, "damping", 0, "Continuous damping factor (0 enables inertial spin)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "interact - terminal playground for the interaction pipeline\n\n")
		fmt.Fprintf(os.Stderr, "Usage: interact [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("interact %s\n", version)
		return opts, false
	}
	return opts, true
}
