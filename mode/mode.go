package mode

import (
	"errors"
	"time"

	"github.com/f3rmion/eos/circuit"
	"github.com/f3rmion/eos/field"
	"github.com/f3rmion/eos/sharing"
)

// ErrCommunication indicates that a mode's communication round budget
// was exhausted before execution could complete. The whole call fails;
// modes never silently degrade to partial results.
var ErrCommunication = errors.New("communication budget exhausted")

// Mode is a strategy governing how much inter-party communication a
// gate sequence may consume. It wraps an executor without owning its
// state. Two implementations exist: [Isolation] and [Collaboration].
type Mode interface {
	// ExecuteCircuit drives the executor over the inputs under this
	// mode's communication policy.
	ExecuteCircuit(exec *circuit.Executor, inputs []sharing.Share) ([]sharing.Share, error)

	// CommunicationPattern returns the pattern this mode's
	// configuration implies, for cost reasoning.
	CommunicationPattern() Pattern

	// VerifyExecution verifies an execution under this mode's policy.
	VerifyExecution(exec *circuit.Executor, inputs, outputs []field.Element) (bool, error)
}

// Pattern describes a mode's communication shape. Patterns are derived,
// read-only values; they carry no mutable state.
type Pattern interface {
	// Complexity returns the estimated communication cost of the
	// pattern.
	Complexity() Complexity
}

// Complexity is the estimated communication cost of a pattern. The
// per-round figures are declared design parameters used for
// reproducible cost estimates, not runtime measurements.
type Complexity struct {
	// Rounds is the number of communication rounds.
	Rounds int
	// BytesPerRound is the estimated bytes exchanged per round.
	BytesPerRound int
	// Latency is the estimated latency per round.
	Latency time.Duration
}

// TotalBytes returns the total estimated communication volume.
func (c Complexity) TotalBytes() int {
	return c.Rounds * c.BytesPerRound
}

// TotalLatency returns the total estimated latency.
func (c Complexity) TotalLatency() time.Duration {
	return time.Duration(c.Rounds) * c.Latency
}

// MinimalPattern is the communication shape of [Isolation]: few rounds,
// fixed conservative per-round estimates.
type MinimalPattern struct {
	MaxRounds int
	BatchSize int
}

// Complexity returns the cost estimate for minimal communication:
// MaxRounds rounds of 1024 bytes at 10ms each.
func (p MinimalPattern) Complexity() Complexity {
	return Complexity{
		Rounds:        p.MaxRounds,
		BytesPerRound: 1024,
		Latency:       10 * time.Millisecond,
	}
}

// FullPattern is the communication shape of [Collaboration]: rounds and
// volume scale with the parallelism degree, with optimized protocols
// halving the per-round base volume.
type FullPattern struct {
	ParallelismDegree int
	Optimized         bool
}

// Complexity returns the cost estimate for full communication:
// 2*degree coordination rounds of (2048 if optimized, else 4096)*degree
// bytes at 5ms each.
func (p FullPattern) Complexity() Complexity {
	base := 4096
	if p.Optimized {
		base = 2048
	}
	return Complexity{
		Rounds:        p.ParallelismDegree * 2,
		BytesPerRound: base * p.ParallelismDegree,
		Latency:       5 * time.Millisecond,
	}
}
