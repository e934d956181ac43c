package sharing

import (
	"errors"
	"io"

	"github.com/f3rmion/eos/field"
)

// Share is one party's piece of a secret-shared value.
//
// For Shamir sharing, Index is the polynomial evaluation point (1..n)
// and Value is the polynomial evaluated there. For additive sharing,
// Index is the party identifier (0..n-1) and Value is that party's
// additive contribution.
//
// A share is meaningless in isolation; only a threshold-sized (Shamir)
// or complete (additive) set reconstructs the underlying secret.
type Share struct {
	Index int
	Value field.Element
}

// Clone returns an independent copy of the share.
func (s Share) Clone() Share {
	return Share{Index: s.Index, Value: s.Value.Clone()}
}

// Scheme is the common secret sharing contract implemented by [Shamir]
// and [Additive]. A Scheme instance is stateless configuration: it holds
// the field it operates over and nothing else, and is safe to share
// between executors.
type Scheme interface {
	// ShareSecret splits secret into exactly numParties shares.
	// Randomness is drawn from rng.
	ShareSecret(secret field.Element, threshold, numParties int, rng io.Reader) ([]Share, error)

	// ReconstructSecret recovers the secret from the supplied shares.
	//
	// Reconstruction from fewer shares than the scheme requires
	// (threshold for Shamir, all n for additive) silently returns a
	// wrong value rather than failing: the deficiency is mathematically
	// undetectable from the shares alone.
	ReconstructSecret(shares []Share) (field.Element, error)

	// AddShares returns a share of the sum of the two shared values.
	// Local operation, no communication.
	AddShares(left, right Share) (Share, error)

	// MulShares returns a share of the product of the two shared values,
	// where the scheme supports it. See the scheme documentation for
	// correctness caveats.
	MulShares(left, right Share) (Share, error)

	// ScalarMulShare multiplies the share's value by a public scalar.
	// Local operation, always succeeds.
	ScalarMulShare(share Share, scalar field.Element) Share

	// VerifyShare checks a share against scheme key material, for
	// schemes with verifiable shares. Schemes without key material
	// trivially report true.
	VerifyShare(share Share, secretKey []byte) bool
}

// Errors returned by secret sharing operations.
var (
	// ErrInsufficientShares indicates reconstruction was attempted with
	// zero shares.
	ErrInsufficientShares = errors.New("insufficient shares for reconstruction")

	// ErrInvalidShares indicates structurally invalid shares, such as
	// duplicate Shamir evaluation points or mismatched share indices.
	ErrInvalidShares = errors.New("invalid shares provided")

	// ErrReconstructionFailed indicates an operation that is
	// structurally unsupported for the scheme.
	ErrReconstructionFailed = errors.New("secret reconstruction failed")

	// ErrInvalidInput indicates malformed sharing parameters, such as a
	// threshold exceeding the party count.
	ErrInvalidInput = errors.New("invalid input provided")
)
