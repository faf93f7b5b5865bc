package input

import (
	"sync"
	"time"

	"github.com/dshills/interact/internal/input/agent"
	"github.com/dshills/interact/internal/input/event"
)

// Ticker is anything advanced once per render frame. The gesture
// controller is the main implementation.
type Ticker interface {
	Advance(tick uint64)
}

// Handler is the main entry point for interaction processing. It
// coordinates agents, pushed events, and per-frame inertial ticks.
type Handler struct {
	mu sync.RWMutex

	agents map[string]*agent.Agent
	order  []*agent.Agent

	tickers []Ticker
	metrics *Metrics
}

// NewHandler returns an empty handler.
func NewHandler() *Handler {
	return &Handler{agents: make(map[string]*agent.Agent)}
}

// SetMetrics attaches a metrics tracker. A nil tracker disables
// recording.
func (h *Handler) SetMetrics(m *Metrics) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.metrics = m
}

// AddAgent registers an agent under its name. Re-registering a name
// replaces the previous agent.
func (h *Handler) AddAgent(a *agent.Agent) {
	if a == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.agents[a.Name()]; ok {
		for i, have := range h.order {
			if have == old {
				h.order[i] = a
				break
			}
		}
	} else {
		h.order = append(h.order, a)
	}
	h.agents[a.Name()] = a
}

// Agent returns the agent registered under name, or nil.
func (h *Handler) Agent(name string) *agent.Agent {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.agents[name]
}

// RemoveAgent unregisters the named agent.
func (h *Handler) RemoveAgent(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	a, ok := h.agents[name]
	if !ok {
		return
	}
	delete(h.agents, name)
	for i, have := range h.order {
		if have == a {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// AddTicker registers something to advance once per frame.
func (h *Handler) AddTicker(t Ticker) {
	if t == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tickers = append(h.tickers, t)
}

// HandleEvent routes a pushed event through the named agent. Unknown
// agent names drop the event.
func (h *Handler) HandleEvent(agentName string, ev event.Event) {
	a := h.Agent(agentName)
	if a == nil {
		return
	}
	h.dispatch(a, ev)
}

func (h *Handler) dispatch(a *agent.Agent, ev event.Event) {
	h.mu.RLock()
	m := h.metrics
	h.mu.RUnlock()

	if m == nil {
		a.Handle(ev)
		return
	}
	start := time.Now()
	a.Handle(ev)
	m.RecordDispatch(ev, time.Since(start))
}

// Frame runs one render frame: each agent's feed is polled and
// handled, then every ticker advances. The tick counter comes from
// the host render loop and must be monotonic.
func (h *Handler) Frame(tick uint64) {
	h.mu.RLock()
	agents := h.order
	tickers := h.tickers
	m := h.metrics
	h.mu.RUnlock()

	for _, a := range agents {
		if ev := a.Feed(); ev != nil {
			m.RecordFed()
			h.dispatch(a, ev)
		}
	}
	for _, t := range tickers {
		t.Advance(tick)
	}
}
