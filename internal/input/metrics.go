package input

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/interact/internal/input/event"
)

// Metrics tracks dispatch performance. All recording methods are safe
// for concurrent use, although the pipeline itself is single-threaded.
type Metrics struct {
	keyEventsTotal    atomic.Uint64
	clickEventsTotal  atomic.Uint64
	motionEventsTotal atomic.Uint64
	fedEventsTotal    atomic.Uint64

	mu                sync.RWMutex
	dispatchLatencies []time.Duration
	latencyIdx        int

	peakDispatch atomic.Int64

	startTime time.Time
	enabled   atomic.Bool
}

const latencySamples = 1000

// NewMetrics creates a metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		dispatchLatencies: make([]time.Duration, latencySamples),
		startTime:         time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables collection.
func (m *Metrics) SetEnabled(enabled bool) { m.enabled.Store(enabled) }

// RecordDispatch records one delivered event and its dispatch time.
func (m *Metrics) RecordDispatch(ev event.Event, latency time.Duration) {
	if m == nil || !m.enabled.Load() {
		return
	}
	switch ev.Kind() {
	case event.KindKey:
		m.keyEventsTotal.Add(1)
	case event.KindClick:
		m.clickEventsTotal.Add(1)
	case event.KindMotion:
		m.motionEventsTotal.Add(1)
	}

	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakDispatch.Load()
		if latencyNs <= current {
			break
		}
		if m.peakDispatch.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	m.mu.Lock()
	m.dispatchLatencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % latencySamples
	m.mu.Unlock()
}

// RecordFed records one event synthesized by an agent feed.
func (m *Metrics) RecordFed() {
	if m == nil || !m.enabled.Load() {
		return
	}
	m.fedEventsTotal.Add(1)
}

// MetricsSnapshot is a point-in-time view of the counters.
type MetricsSnapshot struct {
	KeyEventsTotal    uint64
	ClickEventsTotal  uint64
	MotionEventsTotal uint64
	FedEventsTotal    uint64

	AvgDispatch  time.Duration
	MaxDispatch  time.Duration
	PeakDispatch time.Duration

	EventsPerSecond float64
	Uptime          time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	latencies := make([]time.Duration, len(m.dispatchLatencies))
	copy(latencies, m.dispatchLatencies)
	m.mu.RUnlock()

	snap := MetricsSnapshot{
		KeyEventsTotal:    m.keyEventsTotal.Load(),
		ClickEventsTotal:  m.clickEventsTotal.Load(),
		MotionEventsTotal: m.motionEventsTotal.Load(),
		FedEventsTotal:    m.fedEventsTotal.Load(),
		PeakDispatch:      time.Duration(m.peakDispatch.Load()),
		Uptime:            time.Since(m.startTime),
	}

	total := snap.KeyEventsTotal + snap.ClickEventsTotal + snap.MotionEventsTotal
	if snap.Uptime > 0 {
		snap.EventsPerSecond = float64(total) / snap.Uptime.Seconds()
	}

	var sum time.Duration
	var n int
	for _, l := range latencies {
		if l > 0 {
			sum += l
			n++
			if l > snap.MaxDispatch {
				snap.MaxDispatch = l
			}
		}
	}
	if n > 0 {
		snap.AvgDispatch = sum / time.Duration(n)
	}
	return snap
}

// Reset clears all counters and samples.
func (m *Metrics) Reset() {
	m.keyEventsTotal.Store(0)
	m.clickEventsTotal.Store(0)
	m.motionEventsTotal.Store(0)
	m.fedEventsTotal.Store(0)
	m.peakDispatch.Store(0)

	m.mu.Lock()
	m.dispatchLatencies = make([]time.Duration, latencySamples)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
