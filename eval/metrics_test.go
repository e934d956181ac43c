package eval

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/eos/mode"
)

func TestMetricsCollection(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("preprocess", 100*time.Millisecond)
	m.RecordTiming("delegate", 50*time.Millisecond)
	m.CountGates(10, 2)

	assert.Equal(t, 150*time.Millisecond, m.TotalTime())
	assert.Equal(t, GateStats{AddGates: 10, MulGates: 2}, m.Gates())

	// Re-recording a phase replaces the earlier measurement.
	m.RecordTiming("delegate", 70*time.Millisecond)
	assert.Equal(t, 170*time.Millisecond, m.TotalTime())
}

func TestRecordComplexity(t *testing.T) {
	m := NewMetrics()

	c := mode.NewCollaboration(3, true, true).CommunicationPattern().Complexity()
	m.RecordComplexity(c)
	m.RecordComplexity(c)

	comm := m.Communication()
	assert.Equal(t, 32, comm.Rounds)
	assert.Equal(t, 2*262144, comm.TotalBytes)
	assert.Equal(t, 160*time.Millisecond, comm.Latency)
}

func TestTimer(t *testing.T) {
	m := NewMetrics()

	timer := m.StartTimer("phase")
	timer.Stop()

	r := m.Report()
	require.Contains(t, r.Timings, "phase")
}

func TestReportRender(t *testing.T) {
	m := NewMetrics()
	m.RecordTiming("sharing", 5*time.Millisecond)
	m.RecordTiming("delegate", 15*time.Millisecond)
	m.RecordComplexity(mode.NewIsolation(1, 3).CommunicationPattern().Complexity())

	var buf bytes.Buffer
	m.Report().Render(&buf)

	out := buf.String()
	assert.Contains(t, out, "Phase")
	assert.Contains(t, out, "sharing")
	assert.Contains(t, out, "delegate")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "3072") // 3 rounds * 1024 bytes
}

func TestReportIsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordTiming("a", time.Millisecond)

	r := m.Report()
	m.RecordTiming("b", time.Millisecond)

	assert.Len(t, r.Phases, 1)
	assert.Len(t, m.Report().Phases, 2)
}
