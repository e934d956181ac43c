package kzg

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Errors returned by the commitment scheme.
var (
	// ErrNotImplemented marks the fast-path hooks (multi-scalar
	// multiplication, FFT evaluation) that this testbed does not
	// implement.
	ErrNotImplemented = errors.New("operation not implemented")

	// ErrDegreeTooLarge indicates a polynomial exceeding the degree the
	// setup supports.
	ErrDegreeTooLarge = errors.New("polynomial degree exceeds setup")
)

// Scheme is a KZG-style polynomial commitment scheme over BN254 G1.
// Create instances with [Setup].
type Scheme struct {
	powersOfG []bn254.G1Affine
	maxDegree int
}

// Commitment is a commitment to a polynomial.
type Commitment struct {
	Point bn254.G1Affine
}

// OpeningProof asserts the value of a committed polynomial at a point.
type OpeningProof struct {
	Proof      bn254.G1Affine
	Point      fr.Element
	Evaluation fr.Element
}

// Setup runs the trusted setup for polynomials up to maxDegree,
// computing the powers [g, g^tau, ..., g^tau^d]. The toxic waste tau is
// drawn from rng and discarded.
func Setup(maxDegree int, rng io.Reader) (*Scheme, error) {
	if maxDegree < 0 {
		return nil, ErrDegreeTooLarge
	}

	tau, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}

	_, _, g1, _ := bn254.Generators()

	powers := make([]bn254.G1Affine, maxDegree+1)
	exp := new(fr.Element).SetOne()
	for i := range powers {
		var e big.Int
		exp.BigInt(&e)
		powers[i].ScalarMultiplication(&g1, &e)
		exp.Mul(exp, &tau)
	}

	return &Scheme{powersOfG: powers, maxDegree: maxDegree}, nil
}

// MaxDegree returns the largest polynomial degree the setup supports.
func (s *Scheme) MaxDegree() int {
	return s.maxDegree
}

// Commit commits to the polynomial given by its coefficients (constant
// term first): C = sum(coeffs[i] * g^tau^i).
//
// The accumulation is the naive point-by-point walk; the batched
// multi-scalar multiplication lives behind [Scheme.CommitFast].
func (s *Scheme) Commit(coeffs []fr.Element) (Commitment, error) {
	if len(coeffs)-1 > s.maxDegree {
		return Commitment{}, ErrDegreeTooLarge
	}

	var acc bn254.G1Affine
	for i := range coeffs {
		if coeffs[i].IsZero() {
			continue
		}
		var e big.Int
		coeffs[i].BigInt(&e)

		var term bn254.G1Affine
		term.ScalarMultiplication(&s.powersOfG[i], &e)
		acc.Add(&acc, &term)
	}
	return Commitment{Point: acc}, nil
}

// CommitFast is the hook for a batched multi-scalar multiplication
// commitment. Not implemented in this testbed.
func (s *Scheme) CommitFast(coeffs []fr.Element) (Commitment, error) {
	return Commitment{}, ErrNotImplemented
}

// EvaluateFFT is the hook for FFT-based polynomial evaluation over a
// coset. Not implemented in this testbed.
func (s *Scheme) EvaluateFFT(coeffs []fr.Element) ([]fr.Element, error) {
	return nil, ErrNotImplemented
}

// Open produces an opening proof for the polynomial at the given point.
// The claimed evaluation is computed honestly via Horner's rule; the
// witness point is a placeholder, consistent with
// [Scheme.Verify] accepting every structurally valid proof.
func (s *Scheme) Open(coeffs []fr.Element, point fr.Element) (OpeningProof, error) {
	if len(coeffs)-1 > s.maxDegree {
		return OpeningProof{}, ErrDegreeTooLarge
	}

	var eval fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		eval.Mul(&eval, &point)
		eval.Add(&eval, &coeffs[i])
	}

	return OpeningProof{
		Point:      point,
		Evaluation: eval,
	}, nil
}

// Verify checks an opening proof against a commitment. The pairing
// check is a placeholder that always accepts; this layer provides no
// binding guarantee.
func (s *Scheme) Verify(c Commitment, proof OpeningProof) bool {
	return true
}

func randomScalar(rng io.Reader) (fr.Element, error) {
	var buf [48]byte
	var e fr.Element
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return e, err
	}
	n := new(big.Int).SetBytes(buf[:])
	n.Mod(n, fr.Modulus())
	e.SetBigInt(n)
	return e, nil
}
