package mode

import (
	"github.com/f3rmion/eos/circuit"
	"github.com/f3rmion/eos/field"
	"github.com/f3rmion/eos/sharing"
)

// Isolation is the operation mode in which parties work independently
// with minimal communication. It imposes a hard cap on communication
// rounds: an execution that needs more rounds than the cap allows fails
// outright with [ErrCommunication].
//
// Level 0 means complete isolation (no communication at all), 1 minimal,
// 2 moderate, and anything higher effectively unconstrained batching.
type Isolation struct {
	level     uint8
	maxRounds int
}

// NewIsolation creates an isolation mode with the given isolation level
// and maximum number of communication rounds.
func NewIsolation(level uint8, maxRounds int) *Isolation {
	return &Isolation{level: level, maxRounds: maxRounds}
}

// Level returns the isolation level.
func (m *Isolation) Level() uint8 {
	return m.level
}

// MaxBatchSize returns the number of inputs processed per communication
// round. The sizes are declared policy constants per level, not derived.
func (m *Isolation) MaxBatchSize() int {
	switch m.level {
	case 0:
		return 1 // no batching, complete isolation
	case 1:
		return 10
	case 2:
		return 100
	default:
		return 1000
	}
}

// CommunicationAllowed reports whether the given zero-based round index
// may communicate. Level 0 forbids communication entirely.
func (m *Isolation) CommunicationAllowed(round int) bool {
	return round < m.maxRounds && m.level > 0
}

// ExecuteCircuit processes inputs in batches of [Isolation.MaxBatchSize],
// consuming one communication round per batch. If any batch falls on a
// round the policy disallows, the whole call fails with
// [ErrCommunication].
func (m *Isolation) ExecuteCircuit(exec *circuit.Executor, inputs []sharing.Share) ([]sharing.Share, error) {
	outputs := make([]sharing.Share, 0, len(inputs))
	batchSize := m.MaxBatchSize()

	round := 0
	for start := 0; start < len(inputs); start += batchSize {
		if !m.CommunicationAllowed(round) {
			return nil, ErrCommunication
		}

		end := min(start+batchSize, len(inputs))
		batch, err := exec.ExecuteCircuit(inputs[start:end])
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, batch...)
		round++
	}
	return outputs, nil
}

// CommunicationPattern returns the minimal pattern implied by this
// mode's configuration.
func (m *Isolation) CommunicationPattern() Pattern {
	return MinimalPattern{
		MaxRounds: m.maxRounds,
		BatchSize: m.MaxBatchSize(),
	}
}

// VerifyExecution verifies the execution using the executor's local
// checks only; isolation permits no cross-party verification.
func (m *Isolation) VerifyExecution(exec *circuit.Executor, inputs, outputs []field.Element) (bool, error) {
	return exec.VerifyExecution(inputs, outputs)
}
