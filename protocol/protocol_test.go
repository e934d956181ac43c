package protocol

import (
	"crypto/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/eos/bn254"
	"github.com/f3rmion/eos/circuit"
	"github.com/f3rmion/eos/field"
	"github.com/f3rmion/eos/mode"
	"github.com/f3rmion/eos/sharing"
)

func newProtocol(t *testing.T, m mode.Mode) (*Protocol, field.Field) {
	t.Helper()
	f := &bn254.Fr{}
	exec, err := circuit.New(0, 5, sharing.NewShamir(f))
	require.NoError(t, err)
	return New(f, exec, m, NewParams(8), zerolog.Nop()), f
}

func testWitness(f field.Field) []field.Element {
	return []field.Element{
		f.FromUint64(42),
		f.FromUint64(7),
		f.FromUint64(13),
	}
}

func TestDelegationHappyPath(t *testing.T) {
	p, f := newProtocol(t, mode.NewCollaboration(3, true, true))

	err := p.Preprocess(circuit.ConstraintSystem{
		NumConstraints:  4,
		NumVariables:    3,
		NumPublicInputs: 1,
	}, rand.Reader)
	require.NoError(t, err)

	result, err := p.Delegate(testWitness(f), rand.Reader)
	require.NoError(t, err)
	require.Equal(t, p.Session(), result.Session)
	require.Len(t, result.Outputs, 3)
	require.NotNil(t, result.Proof)

	// The cost estimate follows the collaboration mode's pattern.
	require.Equal(t, 16, result.Complexity.Rounds)
	require.Equal(t, 262144, result.Complexity.TotalBytes())

	ok, err := p.Verify(result)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDelegateRequiresPreprocessing(t *testing.T) {
	p, f := newProtocol(t, mode.NewIsolation(1, 3))

	_, err := p.Delegate(testWitness(f), rand.Reader)
	require.ErrorIs(t, err, ErrPreprocessingNotDone)

	_, err = p.Verify(&Result{})
	require.ErrorIs(t, err, ErrPreprocessingNotDone)
}

func TestDelegatePropagatesModeErrors(t *testing.T) {
	// Level 0 isolation forbids all communication, so any non-empty
	// witness fails during circuit execution.
	p, f := newProtocol(t, mode.NewIsolation(0, 3))

	require.NoError(t, p.Preprocess(circuit.ConstraintSystem{NumVariables: 3}, rand.Reader))

	_, err := p.Delegate(testWitness(f), rand.Reader)
	require.ErrorIs(t, err, mode.ErrCommunication)
}

func TestVerifyRejectsMissingProof(t *testing.T) {
	p, _ := newProtocol(t, mode.NewIsolation(1, 3))
	require.NoError(t, p.Preprocess(circuit.ConstraintSystem{NumVariables: 2}, rand.Reader))

	_, err := p.Verify(&Result{})
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestSessionIDsAreUnique(t *testing.T) {
	p1, _ := newProtocol(t, mode.NewIsolation(1, 3))
	p2, _ := newProtocol(t, mode.NewIsolation(1, 3))
	require.NotEqual(t, p1.Session(), p2.Session())
}
