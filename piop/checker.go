package piop

import (
	"io"

	"github.com/f3rmion/eos/field"
)

// Polynomial is a univariate polynomial over a prime field, stored as
// coefficients from the constant term upward.
type Polynomial []field.Element

// Degree returns the polynomial's degree, treating trailing zero
// coefficients as significant. The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Evaluate computes p(x) over f using Horner's rule.
func (p Polynomial) Evaluate(f field.Field, x field.Element) field.Element {
	if len(p) == 0 {
		return f.NewElement()
	}
	result := f.NewElement().Set(p[len(p)-1])
	for i := len(p) - 2; i >= 0; i-- {
		result = f.NewElement().Mul(result, x)
		result = f.NewElement().Add(result, p[i])
	}
	return result
}

// Result is the outcome of a consistency check.
type Result struct {
	Consistent        bool
	FailedConstraints []int
	Message           string
}

// SumcheckProof is a sumcheck-style proof over a witness polynomial:
// one round polynomial and one verifier challenge per round, plus the
// final evaluation.
type SumcheckProof struct {
	RoundPolynomials []Polynomial
	Challenges       []field.Element
	FinalEvaluation  field.Element
}

// ConsistencyChecker verifies polynomial consistency of a delegated
// computation. The constraint-level checks are placeholders that always
// succeed; only degree bookkeeping is enforced. See the package
// documentation.
type ConsistencyChecker struct {
	field          field.Field
	numConstraints int
	witness        map[string]Polynomial
	public         map[string]Polynomial
}

// NewConsistencyChecker creates a checker over the given field.
func NewConsistencyChecker(f field.Field) *ConsistencyChecker {
	return &ConsistencyChecker{
		field:   f,
		witness: make(map[string]Polynomial),
		public:  make(map[string]Polynomial),
	}
}

// SetNumConstraints records the number of constraints to check against.
func (c *ConsistencyChecker) SetNumConstraints(n int) {
	c.numConstraints = n
}

// AddWitnessPolynomial registers a named witness polynomial.
func (c *ConsistencyChecker) AddWitnessPolynomial(name string, p Polynomial) {
	c.witness[name] = p
}

// AddPublicPolynomial registers a named public input polynomial.
func (c *ConsistencyChecker) AddPublicPolynomial(name string, p Polynomial) {
	c.public[name] = p
}

// CheckConstraintConsistency checks the registered polynomials against
// the constraint system. The check is a placeholder that reports
// consistency unconditionally; it exists so callers exercise the
// consistency-checking interface.
func (c *ConsistencyChecker) CheckConstraintConsistency() Result {
	return Result{Consistent: true}
}

// CheckPolynomialDegrees verifies that no registered polynomial exceeds
// maxDegree.
func (c *ConsistencyChecker) CheckPolynomialDegrees(maxDegree int) Result {
	for name, p := range c.witness {
		if p.Degree() > maxDegree {
			return Result{
				Consistent: false,
				Message:    "witness polynomial " + name + " exceeds maximum degree",
			}
		}
	}
	for name, p := range c.public {
		if p.Degree() > maxDegree {
			return Result{
				Consistent: false,
				Message:    "public polynomial " + name + " exceeds maximum degree",
			}
		}
	}
	return Result{Consistent: true}
}

// GenerateSumcheckProof produces a sumcheck proof for the polynomial:
// one honest evaluation per challenge round. The proof carries real
// evaluations, but see [ConsistencyChecker.VerifySumcheckProof] for the
// verification caveat.
func (c *ConsistencyChecker) GenerateSumcheckProof(p Polynomial, rounds int, rng io.Reader) (*SumcheckProof, error) {
	proof := &SumcheckProof{
		RoundPolynomials: make([]Polynomial, 0, rounds),
		Challenges:       make([]field.Element, 0, rounds),
	}

	current := p
	for i := 0; i < rounds; i++ {
		challenge, err := c.field.RandomElement(rng)
		if err != nil {
			return nil, err
		}
		proof.RoundPolynomials = append(proof.RoundPolynomials, current)
		proof.Challenges = append(proof.Challenges, challenge)
		// Collapse the round polynomial to its evaluation at the
		// challenge for the next round.
		current = Polynomial{current.Evaluate(c.field, challenge)}
	}
	proof.FinalEvaluation = current.Evaluate(c.field, c.field.NewElement())
	return proof, nil
}

// VerifySumcheckProof checks a sumcheck proof. Verification is a
// placeholder that accepts every structurally complete proof.
func (c *ConsistencyChecker) VerifySumcheckProof(proof *SumcheckProof) bool {
	return proof != nil && len(proof.RoundPolynomials) == len(proof.Challenges)
}
