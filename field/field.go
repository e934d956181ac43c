package field

import (
	"io"
)

// Element represents an element of a prime field. All protocol values in
// this module live in such a field; arithmetic is exact, there is no
// floating point anywhere.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, modulus).
type Element interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Element) Element
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Element) Element
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Element) Element
	// Negate sets the receiver to -a and returns it.
	Negate(a Element) Element
	// Inverse sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Inverse(a Element) (Element, error)
	// Set sets the receiver to a and returns it.
	Set(a Element) Element
	// SetUint64 sets the receiver to v reduced into the field and returns it.
	SetUint64(v uint64) Element
	// Clone returns an independent copy of the receiver.
	Clone() Element
	// Bytes returns the canonical big-endian byte representation.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error if the data is invalid.
	SetBytes(data []byte) (Element, error)
	// Equal reports whether the receiver equals b.
	Equal(b Element) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
	// IsOne reports whether the receiver is one.
	IsOne() bool
}

// Field defines a prime field suitable for secret sharing and arithmetic
// circuit evaluation. It provides factory methods for creating elements
// and utility functions for random element generation.
//
// A Field implementation encapsulates all field-specific details, allowing
// the secret sharing schemes and circuit executor to be generic over
// different prime fields.
//
// Example usage:
//
//	f := &bn254.Fr{}  // or any other Field implementation
//	x, _ := f.RandomElement(rand.Reader)
//	y := f.NewElement().Mul(x, f.FromUint64(42))
type Field interface {
	// NewElement returns a new zero element.
	NewElement() Element
	// One returns a new element set to one.
	One() Element
	// FromUint64 returns a new element set to v.
	FromUint64(v uint64) Element
	// RandomElement returns a uniformly random field element.
	RandomElement(r io.Reader) (Element, error)
	// Modulus returns the field modulus as a big-endian byte slice.
	Modulus() []byte
}
