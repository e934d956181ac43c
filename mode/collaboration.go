package mode

import (
	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/eos/circuit"
	"github.com/f3rmion/eos/field"
	"github.com/f3rmion/eos/sharing"
)

// Collaboration is the operation mode in which parties work together
// with open communication. Higher collaboration levels unlock more
// parallelism and, combined with the optimized-protocols flag, cheaper
// per-round communication.
type Collaboration struct {
	level     uint8
	optimized bool
	parallel  bool
}

// NewCollaboration creates a collaboration mode. level 1 is basic, 2
// enhanced, 3 full; optimized enables optimized protocols (effective
// from level 2); parallel enables the parallel execution path.
func NewCollaboration(level uint8, optimized, parallel bool) *Collaboration {
	return &Collaboration{level: level, optimized: optimized, parallel: parallel}
}

// Level returns the collaboration level.
func (m *Collaboration) Level() uint8 {
	return m.level
}

// ParallelismDegree returns the number of concurrent execution lanes:
// 1 when parallel processing is disabled, otherwise 2, 4, or 8 for
// levels 1, 2, and 3, and 1 for any other level.
func (m *Collaboration) ParallelismDegree() int {
	if !m.parallel {
		return 1
	}
	switch m.level {
	case 1:
		return 2
	case 2:
		return 4
	case 3:
		return 8
	default:
		return 1
	}
}

// UseOptimizedProtocols reports whether optimized protocols are in
// effect: the flag must be set and the collaboration level at least 2.
func (m *Collaboration) UseOptimizedProtocols() bool {
	return m.optimized && m.level >= 2
}

// ExecuteCircuit runs the executor over the inputs, fanning work out
// over [Collaboration.ParallelismDegree] lanes when parallel processing
// is enabled. The lanes exchange no data; partitioned sub-circuit
// coordination is an extension point, so both paths produce identical
// results today.
func (m *Collaboration) ExecuteCircuit(exec *circuit.Executor, inputs []sharing.Share) ([]sharing.Share, error) {
	if m.parallel {
		return m.executeParallel(exec, inputs)
	}
	return m.executeSequential(exec, inputs)
}

func (m *Collaboration) executeSequential(exec *circuit.Executor, inputs []sharing.Share) ([]sharing.Share, error) {
	return exec.ExecuteCircuit(inputs)
}

func (m *Collaboration) executeParallel(exec *circuit.Executor, inputs []sharing.Share) ([]sharing.Share, error) {
	degree := m.ParallelismDegree()
	if degree <= 1 || len(inputs) <= 1 {
		return exec.ExecuteCircuit(inputs)
	}

	// Contiguous partitions keep output order deterministic.
	chunk := (len(inputs) + degree - 1) / degree
	lanes := (len(inputs) + chunk - 1) / chunk
	results := make([][]sharing.Share, lanes)

	var g errgroup.Group
	for i := 0; i < lanes; i++ {
		start := i * chunk
		end := min(start+chunk, len(inputs))
		g.Go(func() error {
			out, err := exec.ExecuteCircuit(inputs[start:end])
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	outputs := make([]sharing.Share, 0, len(inputs))
	for _, r := range results {
		outputs = append(outputs, r...)
	}
	return outputs, nil
}

// CommunicationPattern returns the full pattern implied by this mode's
// configuration.
func (m *Collaboration) CommunicationPattern() Pattern {
	return FullPattern{
		ParallelismDegree: m.ParallelismDegree(),
		Optimized:         m.UseOptimizedProtocols(),
	}
}

// VerifyExecution verifies the execution. Level 3 reserves room for
// additional cross-party consistency checks; today all levels delegate
// to the executor.
func (m *Collaboration) VerifyExecution(exec *circuit.Executor, inputs, outputs []field.Element) (bool, error) {
	return exec.VerifyExecution(inputs, outputs)
}
