// Package bn254 implements the [field.Field] interface over the scalar
// field Fr of the BN254 pairing-friendly curve, using gnark-crypto for
// the underlying arithmetic.
//
// The scalar field order is
//
//	r = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// which matches the group used by the kzg package for polynomial
// commitments, so shared values can be committed to without a field
// change.
//
// Random sampling in [Fr.RandomElement] reads 48 bytes from the caller's
// source and reduces modulo r, keeping the modular bias negligible.
package bn254
