package circuit

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/eos/field"
	"github.com/f3rmion/eos/sharing"
)

// ErrInvalidInput indicates malformed executor arguments, such as
// mismatched slice lengths or an empty gate input list.
var ErrInvalidInput = errors.New("invalid input provided")

// ConstraintSystem describes the arithmetic circuit being executed.
// The executor carries it as session metadata; gate execution does not
// consult it yet, wiring a compiled constraint list through
// [Executor.ExecuteCircuit] is an extension point.
type ConstraintSystem struct {
	NumConstraints  int
	NumVariables    int
	NumPublicInputs int
}

// Executor evaluates arithmetic circuit gates over secret-shared values
// for one party of an MPC session. All gate operations here are local
// share algebra; "communication" between parties is governed by the
// mode layer, not performed by the executor.
//
// Create instances with [New]; one executor represents one party's view
// of one session.
type Executor struct {
	cs         ConstraintSystem
	partyID    int
	numParties int
	scheme     sharing.Scheme
}

// New creates an executor for the given party. Returns
// [ErrInvalidInput] unless 0 <= partyID < numParties.
func New(partyID, numParties int, scheme sharing.Scheme) (*Executor, error) {
	if numParties < 1 || partyID < 0 || partyID >= numParties {
		return nil, ErrInvalidInput
	}
	return &Executor{
		partyID:    partyID,
		numParties: numParties,
		scheme:     scheme,
	}, nil
}

// PartyID returns this executor's party identifier.
func (e *Executor) PartyID() int {
	return e.partyID
}

// NumParties returns the number of parties in the session.
func (e *Executor) NumParties() int {
	return e.numParties
}

// Scheme returns the secret sharing scheme bound to this executor.
func (e *Executor) Scheme() sharing.Scheme {
	return e.scheme
}

// SetConstraintSystem attaches the circuit description for this session.
func (e *Executor) SetConstraintSystem(cs ConstraintSystem) {
	e.cs = cs
}

// ConstraintSystem returns the attached circuit description.
func (e *Executor) ConstraintSystem() ConstraintSystem {
	return e.cs
}

// InputSecret shares a secret input among the session's parties,
// producing one share per party.
func (e *Executor) InputSecret(secret field.Element, threshold int, rng io.Reader) ([]sharing.Share, error) {
	shares, err := e.scheme.ShareSecret(secret, threshold, e.numParties, rng)
	if err != nil {
		return nil, fmt.Errorf("input secret: %w", err)
	}
	return shares, nil
}

// AddGate returns a share of the sum of the two shared values.
func (e *Executor) AddGate(left, right sharing.Share) (sharing.Share, error) {
	out, err := e.scheme.AddShares(left, right)
	if err != nil {
		return sharing.Share{}, fmt.Errorf("add gate: %w", err)
	}
	return out, nil
}

// MulGate returns a share of the product of the two shared values.
//
// For Shamir sharing the result is a share of a degree-doubled
// polynomial; see [sharing.Shamir.MulShares] for the correctness
// caveat. The caller is responsible for handling it.
func (e *Executor) MulGate(left, right sharing.Share) (sharing.Share, error) {
	out, err := e.scheme.MulShares(left, right)
	if err != nil {
		return sharing.Share{}, fmt.Errorf("mul gate: %w", err)
	}
	return out, nil
}

// LinearCombinationGate computes a share of sum(coeffs[i] * values[i])
// as scalar multiplications followed by a left-to-right fold of share
// additions. The fold order does not change the field result but keeps
// execution deterministic. Returns [ErrInvalidInput] if the slices are
// empty or of different lengths.
func (e *Executor) LinearCombinationGate(shares []sharing.Share, coeffs []field.Element) (sharing.Share, error) {
	if len(shares) != len(coeffs) || len(shares) == 0 {
		return sharing.Share{}, ErrInvalidInput
	}

	result := e.scheme.ScalarMulShare(shares[0], coeffs[0])
	for i := 1; i < len(shares); i++ {
		term := e.scheme.ScalarMulShare(shares[i], coeffs[i])
		next, err := e.scheme.AddShares(result, term)
		if err != nil {
			return sharing.Share{}, fmt.Errorf("linear combination gate: %w", err)
		}
		result = next
	}
	return result, nil
}

// RevealSecret reconstructs a secret-shared value from a quorum of
// shares.
func (e *Executor) RevealSecret(shares []sharing.Share) (field.Element, error) {
	secret, err := e.scheme.ReconstructSecret(shares)
	if err != nil {
		return nil, fmt.Errorf("reveal secret: %w", err)
	}
	return secret, nil
}

// ExecuteCircuit runs a pre-compiled circuit over the given input
// shares. The engine currently evaluates the identity circuit, making
// the mode layer's batching and round accounting observable; wiring a
// compiled gate list through here is an extension point.
func (e *Executor) ExecuteCircuit(inputs []sharing.Share) ([]sharing.Share, error) {
	outputs := make([]sharing.Share, len(inputs))
	copy(outputs, inputs)
	return outputs, nil
}

// VerifyExecution checks the integrity of a circuit execution against
// its plaintext inputs and outputs. Verification is delegated to the
// PIOP consistency layer; the executor itself performs no checks.
func (e *Executor) VerifyExecution(inputs, outputs []field.Element) (bool, error) {
	return true, nil
}
