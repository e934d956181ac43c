// Package field defines the prime field abstraction used throughout the
// EOS MPC core.
//
// The package contains only interfaces: [Element] for individual field
// elements and [Field] as the element factory. Concrete arithmetic is
// supplied by an external algebra library behind these interfaces; see
// the bn254 package for the BN254 scalar field binding built on
// gnark-crypto.
//
// Two design rules apply to every implementation:
//
//   - Arithmetic is exact. Elements are integers modulo a known prime
//     and every operation reduces into [0, modulus).
//   - Randomness is injected. [Field.RandomElement] takes an io.Reader
//     so callers control the entropy source, which keeps protocol runs
//     reproducible under test.
package field
