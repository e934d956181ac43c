package eval

import (
	"time"

	"github.com/f3rmion/eos/mode"
)

// CommunicationStats accumulates estimated communication costs across
// protocol runs.
type CommunicationStats struct {
	Rounds     int
	TotalBytes int
	Latency    time.Duration
}

// GateStats counts circuit gates executed.
type GateStats struct {
	AddGates int
	MulGates int
}

// Metrics collects per-phase timings, communication estimates, and gate
// counts for one protocol evaluation. Not safe for concurrent use;
// create one collector per run.
type Metrics struct {
	phases  []string
	timings map[string]time.Duration
	comm    CommunicationStats
	gates   GateStats
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{
		timings: make(map[string]time.Duration),
	}
}

// Timer measures one phase. Obtain via [Metrics.StartTimer] and finish
// with [Timer.Stop].
type Timer struct {
	phase   string
	start   time.Time
	metrics *Metrics
}

// StartTimer begins timing the named phase.
func (m *Metrics) StartTimer(phase string) *Timer {
	return &Timer{phase: phase, start: time.Now(), metrics: m}
}

// Stop records the elapsed time for the timer's phase.
func (t *Timer) Stop() {
	t.metrics.RecordTiming(t.phase, time.Since(t.start))
}

// RecordTiming records a measured duration for a phase. Recording the
// same phase twice replaces the earlier measurement.
func (m *Metrics) RecordTiming(phase string, d time.Duration) {
	if _, seen := m.timings[phase]; !seen {
		m.phases = append(m.phases, phase)
	}
	m.timings[phase] = d
}

// RecordComplexity folds a mode's communication cost estimate into the
// communication statistics.
func (m *Metrics) RecordComplexity(c mode.Complexity) {
	m.comm.Rounds += c.Rounds
	m.comm.TotalBytes += c.TotalBytes()
	m.comm.Latency += c.TotalLatency()
}

// CountGates adds executed gate counts.
func (m *Metrics) CountGates(add, mul int) {
	m.gates.AddGates += add
	m.gates.MulGates += mul
}

// TotalTime returns the sum of all recorded phase timings.
func (m *Metrics) TotalTime() time.Duration {
	var total time.Duration
	for _, d := range m.timings {
		total += d
	}
	return total
}

// Communication returns the accumulated communication statistics.
func (m *Metrics) Communication() CommunicationStats {
	return m.comm
}

// Gates returns the accumulated gate counts.
func (m *Metrics) Gates() GateStats {
	return m.gates
}
