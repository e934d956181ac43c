package sharing

import (
	"io"

	"github.com/f3rmion/eos/field"
)

// Shamir implements threshold secret sharing over a prime field.
//
// A secret is embedded as the constant term of a random polynomial of
// degree threshold-1; share i is the polynomial evaluated at x = i.
// Any threshold shares reconstruct the secret by Lagrange interpolation
// at x = 0; fewer reveal nothing about it.
type Shamir struct {
	field field.Field
}

// NewShamir creates a Shamir scheme over the given field.
func NewShamir(f field.Field) *Shamir {
	return &Shamir{field: f}
}

// ShareSecret splits secret into numParties shares with the given
// reconstruction threshold. Returns [ErrInvalidInput] if threshold is
// not in 1..numParties.
func (s *Shamir) ShareSecret(secret field.Element, threshold, numParties int, rng io.Reader) ([]Share, error) {
	if threshold < 1 || numParties < 1 || threshold > numParties {
		return nil, ErrInvalidInput
	}

	// Random polynomial of degree threshold-1 with a_0 = secret.
	coeffs := make([]field.Element, threshold)
	coeffs[0] = secret.Clone()
	for i := 1; i < threshold; i++ {
		c, err := s.field.RandomElement(rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	// Evaluate at x = 1, 2, ..., numParties.
	shares := make([]Share, numParties)
	for i := 1; i <= numParties; i++ {
		x := s.field.FromUint64(uint64(i))
		shares[i-1] = Share{Index: i, Value: s.evalPolynomial(coeffs, x)}
	}
	return shares, nil
}

// ReconstructSecret recovers the secret by Lagrange interpolation at
// x = 0 from the supplied shares.
//
// Supplying fewer than threshold shares returns a wrong value, not an
// error: a below-threshold set of evaluations interpolates to some
// polynomial, just not the right one, and the scheme cannot detect
// this locally. Duplicate evaluation points return [ErrInvalidShares].
func (s *Shamir) ReconstructSecret(shares []Share) (field.Element, error) {
	if len(shares) == 0 {
		return nil, ErrInsufficientShares
	}

	result := s.field.NewElement()
	for i, si := range shares {
		xi := s.field.FromUint64(uint64(si.Index))

		num := s.field.One()
		den := s.field.One()
		for j, sj := range shares {
			if i == j {
				continue
			}
			xj := s.field.FromUint64(uint64(sj.Index))
			// num *= (0 - xj)
			num = s.field.NewElement().Mul(num, s.field.NewElement().Negate(xj))
			// den *= (xi - xj)
			den = s.field.NewElement().Mul(den, s.field.NewElement().Sub(xi, xj))
		}

		denInv, err := s.field.NewElement().Inverse(den)
		if err != nil {
			// Zero denominator means two shares carry the same index.
			return nil, ErrInvalidShares
		}

		term := s.field.NewElement().Mul(si.Value, num)
		term = s.field.NewElement().Mul(term, denInv)
		result = s.field.NewElement().Add(result, term)
	}
	return result, nil
}

// AddShares adds two shares of the same evaluation point. Local
// operation. Returns [ErrInvalidShares] if the indices differ.
func (s *Shamir) AddShares(left, right Share) (Share, error) {
	if left.Index != right.Index {
		return Share{}, ErrInvalidShares
	}
	return Share{
		Index: left.Index,
		Value: s.field.NewElement().Add(left.Value, right.Value),
	}, nil
}

// MulShares multiplies two share values pointwise.
//
// This is NOT a complete MPC multiplication: the product of two
// degree-(t-1) polynomials has degree 2(t-1), so the result is a share
// of a degree-doubled polynomial. Reconstructing the product requires
// 2t-1 shares, and the result cannot be reused as a linear share of the
// product unless a degree reduction step (Beaver triples or similar,
// see [DegreeReducer]) is performed. No such step ships with this
// package.
func (s *Shamir) MulShares(left, right Share) (Share, error) {
	if left.Index != right.Index {
		return Share{}, ErrInvalidShares
	}
	return Share{
		Index: left.Index,
		Value: s.field.NewElement().Mul(left.Value, right.Value),
	}, nil
}

// ScalarMulShare multiplies the share's value by a public scalar.
func (s *Shamir) ScalarMulShare(share Share, scalar field.Element) Share {
	return Share{
		Index: share.Index,
		Value: s.field.NewElement().Mul(share.Value, scalar),
	}
}

// VerifyShare reports whether the share is valid under the scheme's key
// material. Plain Shamir sharing carries no key material, so every
// share trivially verifies.
func (s *Shamir) VerifyShare(share Share, secretKey []byte) bool {
	return true
}

// evalPolynomial evaluates the polynomial with the given coefficients
// (constant term first) at x using Horner's rule.
func (s *Shamir) evalPolynomial(coeffs []field.Element, x field.Element) field.Element {
	result := s.field.NewElement().Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = s.field.NewElement().Mul(result, x)
		result = s.field.NewElement().Add(result, coeffs[i])
	}
	return result
}

// DegreeReducer converts a share of a degree-doubled polynomial, as
// produced by [Shamir.MulShares], back into a share of a degree-(t-1)
// polynomial of the same product. It is the extension seam for a real
// multiplication sub-protocol; no implementation ships with this
// package.
type DegreeReducer interface {
	Reduce(share Share, threshold int) (Share, error)
}
