package input

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks dispatch outcomes.
type Metrics struct {
	keyDownsTotal    atomic.Uint64
	matchedTotal     atomic.Uint64
	synthesizedTotal atomic.Uint64
	rejectedTotal    atomic.Uint64
	propagatedTotal  atomic.Uint64
	unresolvedTotal  atomic.Uint64
	autoExitsTotal   atomic.Uint64

	// Per-mode key down counts.
	mu     sync.RWMutex
	byMode map[string]uint64

	startTime time.Time

	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		byMode:    make(map[string]uint64),
		startTime: time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// RecordKeyDown records a key press arriving in a mode.
func (m *Metrics) RecordKeyDown(mode string) {
	if !m.enabled.Load() {
		return
	}
	m.keyDownsTotal.Add(1)

	m.mu.Lock()
	m.byMode[mode]++
	m.mu.Unlock()
}

// RecordMatched records a press that hit a binding.
func (m *Metrics) RecordMatched() {
	if !m.enabled.Load() {
		return
	}
	m.matchedTotal.Add(1)
}

// RecordSynthesized records an action-mode chain.
func (m *Metrics) RecordSynthesized() {
	if !m.enabled.Load() {
		return
	}
	m.synthesizedTotal.Add(1)
}

// RecordRejected records an unbound press outside the desktop.
func (m *Metrics) RecordRejected() {
	if !m.enabled.Load() {
		return
	}
	m.rejectedTotal.Add(1)
}

// RecordPropagated records an unbound press passed back to the host.
func (m *Metrics) RecordPropagated() {
	if !m.enabled.Load() {
		return
	}
	m.propagatedTotal.Add(1)
}

// RecordUnresolved records a binding whose handler could not be used.
func (m *Metrics) RecordUnresolved() {
	if !m.enabled.Load() {
		return
	}
	m.unresolvedTotal.Add(1)
}

// RecordAutoExit records a handler-requested exit to the root mode.
func (m *Metrics) RecordAutoExit() {
	if !m.enabled.Load() {
		return
	}
	m.autoExitsTotal.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	KeyDownsTotal    uint64
	MatchedTotal     uint64
	SynthesizedTotal uint64
	RejectedTotal    uint64
	PropagatedTotal  uint64
	UnresolvedTotal  uint64
	AutoExitsTotal   uint64

	// ByMode maps mode names to key down counts.
	ByMode map[string]uint64

	KeyDownsPerSecond float64
	Uptime            time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	byMode := make(map[string]uint64, len(m.byMode))
	for mode, n := range m.byMode {
		byMode[mode] = n
	}
	m.mu.RUnlock()

	keyDowns := m.keyDownsTotal.Load()
	uptime := time.Since(m.startTime)

	snap := MetricsSnapshot{
		KeyDownsTotal:    keyDowns,
		MatchedTotal:     m.matchedTotal.Load(),
		SynthesizedTotal: m.synthesizedTotal.Load(),
		RejectedTotal:    m.rejectedTotal.Load(),
		PropagatedTotal:  m.propagatedTotal.Load(),
		UnresolvedTotal:  m.unresolvedTotal.Load(),
		AutoExitsTotal:   m.autoExitsTotal.Load(),
		ByMode:           byMode,
		Uptime:           uptime,
	}

	if uptime > 0 {
		snap.KeyDownsPerSecond = float64(keyDowns) / uptime.Seconds()
	}
	return snap
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.keyDownsTotal.Store(0)
	m.matchedTotal.Store(0)
	m.synthesizedTotal.Store(0)
	m.rejectedTotal.Store(0)
	m.propagatedTotal.Store(0)
	m.unresolvedTotal.Store(0)
	m.autoExitsTotal.Store(0)

	m.mu.Lock()
	m.byMode = make(map[string]uint64)
	m.startTime = time.Now()
	m.mu.Unlock()
}
