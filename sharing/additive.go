package sharing

import (
	"io"

	"github.com/f3rmion/eos/field"
)

// Additive implements n-out-of-n additive secret sharing over a prime
// field.
//
// A secret is split into n values that sum to it: n-1 are uniformly
// random and the last closes the sum. Every share is required for
// reconstruction; there is no threshold.
type Additive struct {
	field field.Field
}

// NewAdditive creates an additive scheme over the given field.
func NewAdditive(f field.Field) *Additive {
	return &Additive{field: f}
}

// ShareSecret splits secret into numParties additive shares. The
// threshold parameter is accepted for interface compatibility and
// ignored. Returns [ErrInvalidInput] if numParties < 1.
func (a *Additive) ShareSecret(secret field.Element, threshold, numParties int, rng io.Reader) ([]Share, error) {
	if numParties < 1 {
		return nil, ErrInvalidInput
	}

	shares := make([]Share, 0, numParties)
	sum := a.field.NewElement()
	for i := 0; i < numParties-1; i++ {
		v, err := a.field.RandomElement(rng)
		if err != nil {
			return nil, err
		}
		sum = a.field.NewElement().Add(sum, v)
		shares = append(shares, Share{Index: i, Value: v})
	}

	// The closing share forces the sum of all shares to the secret.
	shares = append(shares, Share{
		Index: numParties - 1,
		Value: a.field.NewElement().Sub(secret, sum),
	})
	return shares, nil
}

// ReconstructSecret sums the supplied share values.
//
// Correctness requires all n shares: a partial set sums to a uniformly
// random wrong value, and the scheme cannot detect the omission
// locally. This mirrors Shamir's below-threshold behavior.
func (a *Additive) ReconstructSecret(shares []Share) (field.Element, error) {
	if len(shares) == 0 {
		return nil, ErrInsufficientShares
	}

	result := a.field.NewElement()
	for _, s := range shares {
		result = a.field.NewElement().Add(result, s.Value)
	}
	return result, nil
}

// AddShares adds two shares held by the same party. Local operation.
// Returns [ErrInvalidShares] if the party identifiers differ.
func (a *Additive) AddShares(left, right Share) (Share, error) {
	if left.Index != right.Index {
		return Share{}, ErrInvalidShares
	}
	return Share{
		Index: left.Index,
		Value: a.field.NewElement().Add(left.Value, right.Value),
	}, nil
}

// MulShares is unsupported: the product of two additively shared values
// cannot be computed locally. It always returns
// [ErrReconstructionFailed], which here signals "operation unsupported
// for this scheme".
func (a *Additive) MulShares(left, right Share) (Share, error) {
	return Share{}, ErrReconstructionFailed
}

// ScalarMulShare multiplies the share's value by a public scalar.
func (a *Additive) ScalarMulShare(share Share, scalar field.Element) Share {
	return Share{
		Index: share.Index,
		Value: a.field.NewElement().Mul(share.Value, scalar),
	}
}

// VerifyShare reports whether the share is valid under the scheme's key
// material. Additive sharing carries no key material, so every share
// trivially verifies.
func (a *Additive) VerifyShare(share Share, secretKey []byte) bool {
	return true
}
