package protocol

import (
	"errors"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/f3rmion/eos/circuit"
	"github.com/f3rmion/eos/field"
	"github.com/f3rmion/eos/kzg"
	"github.com/f3rmion/eos/mode"
	"github.com/f3rmion/eos/piop"
	"github.com/f3rmion/eos/sharing"
)

// Errors returned by the protocol driver.
var (
	// ErrPreprocessingNotDone indicates Delegate or Verify was called
	// before Preprocess.
	ErrPreprocessingNotDone = errors.New("preprocessing not completed")

	// ErrVerificationFailed indicates the delegated computation did not
	// verify.
	ErrVerificationFailed = errors.New("verification failed")
)

// Params are the protocol parameters.
type Params struct {
	// SecurityParameter sizes the protocol's soundness budget.
	SecurityParameter int
	// Threshold is the secret sharing threshold used for witness inputs.
	Threshold int
	// MaxDegree caps the degree of committed polynomials.
	MaxDegree int
}

// NewParams derives default parameters from a security parameter,
// keeping the sharing threshold small enough for small party counts.
func NewParams(securityParameter int) Params {
	return Params{
		SecurityParameter: securityParameter,
		Threshold:         min(securityParameter/2, 2),
		MaxDegree:         256,
	}
}

// PreprocessingState is the output of the preprocessing phase.
type PreprocessingState struct {
	Circuit     circuit.ConstraintSystem
	Commitments *kzg.Scheme
}

// Result is the output of the delegation phase.
type Result struct {
	// Session identifies the protocol run that produced this result.
	Session string
	// Outputs are this party's shares of the circuit outputs.
	Outputs []sharing.Share
	// Proof is the consistency proof over the witness polynomial.
	Proof *piop.SumcheckProof
	// WitnessCommitment commits to the witness polynomial.
	WitnessCommitment kzg.Commitment
	// Complexity is the communication cost estimate of the run.
	Complexity mode.Complexity
}

// Protocol drives the three-phase delegation protocol: Preprocess sets
// up circuit parameters and the commitment scheme, Delegate runs the
// secret-shared computation under an operation mode, and Verify checks
// the result. Create instances with [New].
//
// The MPC core does the real work; the PIOP and commitment
// collaborators attached here are thin and provide no soundness.
type Protocol struct {
	log      zerolog.Logger
	session  string
	field    field.Field
	executor *circuit.Executor
	mode     mode.Mode
	checker  *piop.ConsistencyChecker
	params   Params

	preprocessed *PreprocessingState
}

// New creates a protocol driver for one party's executor under the
// given operation mode. Every driver gets a fresh session id carried on
// all of its log events.
func New(f field.Field, exec *circuit.Executor, m mode.Mode, params Params, logger zerolog.Logger) *Protocol {
	session := xid.New().String()
	return &Protocol{
		log:      logger.With().Str("session", session).Logger(),
		session:  session,
		field:    f,
		executor: exec,
		mode:     m,
		checker:  piop.NewConsistencyChecker(f),
		params:   params,
	}
}

// Session returns the protocol run's session identifier.
func (p *Protocol) Session() string {
	return p.session
}

// Preprocess runs the setup phase: it records the circuit description
// on the executor and generates the polynomial commitment setup sized
// to the circuit.
func (p *Protocol) Preprocess(c circuit.ConstraintSystem, rng io.Reader) error {
	maxDegree := nextPowerOfTwo(c.NumVariables)
	if maxDegree > p.params.MaxDegree {
		maxDegree = p.params.MaxDegree
	}

	scheme, err := kzg.Setup(maxDegree, rng)
	if err != nil {
		return xerrors.Errorf("commitment setup: %w", err)
	}

	p.executor.SetConstraintSystem(c)
	p.checker.SetNumConstraints(c.NumConstraints)
	p.preprocessed = &PreprocessingState{
		Circuit:     c,
		Commitments: scheme,
	}

	p.log.Info().
		Int("constraints", c.NumConstraints).
		Int("variables", c.NumVariables).
		Int("max_degree", maxDegree).
		Msg("preprocessing complete")
	return nil
}

// Delegate runs the delegation phase: the witness is secret-shared
// through the executor, this party's shares are driven through the
// operation mode, and a consistency proof and witness commitment are
// produced for the verifier.
func (p *Protocol) Delegate(witness []field.Element, rng io.Reader) (*Result, error) {
	if p.preprocessed == nil {
		return nil, ErrPreprocessingNotDone
	}

	// Share every witness value; keep this party's share of each.
	inputs := make([]sharing.Share, 0, len(witness))
	for i, w := range witness {
		shares, err := p.executor.InputSecret(w, p.params.Threshold, rng)
		if err != nil {
			return nil, xerrors.Errorf("sharing witness value %d: %w", i, err)
		}
		inputs = append(inputs, shares[p.executor.PartyID()])
	}

	outputs, err := p.mode.ExecuteCircuit(p.executor, inputs)
	if err != nil {
		return nil, xerrors.Errorf("circuit execution: %w", err)
	}

	// The witness values, read as coefficients, form the witness
	// polynomial the verifier receives a commitment to.
	witnessPoly := piop.Polynomial(witness)
	p.checker.AddWitnessPolynomial("w", witnessPoly)

	proof, err := p.checker.GenerateSumcheckProof(witnessPoly, p.params.SecurityParameter, rng)
	if err != nil {
		return nil, xerrors.Errorf("consistency proof: %w", err)
	}

	commitment, err := p.preprocessed.Commitments.Commit(toFrCoefficients(witness))
	if err != nil {
		return nil, xerrors.Errorf("witness commitment: %w", err)
	}

	complexity := p.mode.CommunicationPattern().Complexity()
	p.log.Info().
		Int("witness", len(witness)).
		Int("outputs", len(outputs)).
		Int("rounds", complexity.Rounds).
		Int("total_bytes", complexity.TotalBytes()).
		Msg("delegation complete")

	return &Result{
		Session:           p.session,
		Outputs:           outputs,
		Proof:             proof,
		WitnessCommitment: commitment,
		Complexity:        complexity,
	}, nil
}

// Verify runs the verification phase over a delegation result. The
// constraint and commitment checks live in thin collaborator layers
// that always accept; the structural checks here are real.
func (p *Protocol) Verify(result *Result) (bool, error) {
	if p.preprocessed == nil {
		return false, ErrPreprocessingNotDone
	}
	if result == nil || result.Proof == nil {
		return false, ErrVerificationFailed
	}

	if degrees := p.checker.CheckPolynomialDegrees(p.preprocessed.Commitments.MaxDegree()); !degrees.Consistent {
		p.log.Warn().Str("reason", degrees.Message).Msg("verification failed")
		return false, nil
	}
	if consistency := p.checker.CheckConstraintConsistency(); !consistency.Consistent {
		p.log.Warn().Msg("constraint consistency check failed")
		return false, nil
	}
	if !p.checker.VerifySumcheckProof(result.Proof) {
		p.log.Warn().Msg("sumcheck proof rejected")
		return false, nil
	}

	p.log.Info().Msg("verification complete")
	return true, nil
}

// toFrCoefficients converts abstract field elements into BN254 scalars
// for the commitment layer via their canonical byte encoding.
func toFrCoefficients(elems []field.Element) []fr.Element {
	coeffs := make([]fr.Element, len(elems))
	for i, e := range elems {
		coeffs[i].SetBytes(e.Bytes())
	}
	return coeffs
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
