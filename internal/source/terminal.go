package source

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/interact/internal/input/event"
)

// Terminal is a tcell-backed event source.
type Terminal struct {
	screen  tcell.Screen
	tracker *Tracker
	queue   []event.Event
}

// NewTerminal allocates a terminal source over a fresh tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, tracker: NewTracker()}, nil
}

// Init initializes the screen and enables mouse reporting.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Screen exposes the underlying tcell screen for drawing.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Poll blocks for the next input event. It returns nil once the
// screen is finalized.
func (t *Terminal) Poll() event.Event {
	for {
		if len(t.queue) > 0 {
			ev := t.queue[0]
			t.queue = t.queue[1:]
			return ev
		}

		raw := t.screen.PollEvent()
		if raw == nil {
			return nil
		}
		switch e := raw.(type) {
		case *tcell.EventKey:
			return t.tracker.TranslateKey(e)
		case *tcell.EventMouse:
			t.queue = append(t.queue, t.tracker.TranslateMouse(e)...)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}
