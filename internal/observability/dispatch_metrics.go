package observability

import (
	"sync/atomic"
	"time"
)

// DispatchMetrics keeps cheap in-process counters for the dispatch pipeline.
// Prometheus covers scraping; this snapshot backs the admin endpoint.
type DispatchMetrics struct {
	attempted atomic.Uint64
	sent      atomic.Uint64
	failed    atomic.Uint64
	resends   atomic.Uint64

	// duration stats (nanoseconds)
	durationCount atomic.Uint64
	durationTotal atomic.Int64
	durationMax   atomic.Int64
}

func NewDispatchMetrics() *DispatchMetrics {
	m := &DispatchMetrics{}
	m.durationMax.Store(0)
	return m
}

func (m *DispatchMetrics) IncAttempted() {
	m.attempted.Add(1)
}

func (m *DispatchMetrics) IncSent() {
	m.sent.Add(1)
}

func (m *DispatchMetrics) IncFailed() {
	m.failed.Add(1)
}

func (m *DispatchMetrics) IncResends() {
	m.resends.Add(1)
}

func (m *DispatchMetrics) ObserveDuration(d time.Duration) {
	ns := d.Nanoseconds()
	m.durationCount.Add(1)
	m.durationTotal.Add(ns)

	// max update

	for {
		curr := m.durationMax.Load()

		if ns <= curr {
			return
		}

		if m.durationMax.CompareAndSwap(curr, ns) {
			return
		}
	}
}

type DispatchMetricsSnapshot struct {
	Attempted       uint64        `json:"attempted"`
	Sent            uint64        `json:"sent"`
	Failed          uint64        `json:"failed"`
	Resends         uint64        `json:"resends"`
	DurationCount   uint64        `json:"durationCount"`
	AverageDuration time.Duration `json:"averageDurationNs"`
	MaxDuration     time.Duration `json:"maxDurationNs"`
}

func (m *DispatchMetrics) Snapshot() DispatchMetricsSnapshot {
	count := m.durationCount.Load()
	total := m.durationTotal.Load()
	max := m.durationMax.Load()

	var avg time.Duration

	if count > 0 {
		avg = time.Duration(total / int64(count))
	}

	return DispatchMetricsSnapshot{
		Attempted:       m.attempted.Load(),
		Sent:            m.sent.Load(),
		Failed:          m.failed.Load(),
		Resends:         m.resends.Load(),
		DurationCount:   count,
		AverageDuration: avg,
		MaxDuration:     time.Duration(max),
	}
}
