// Package kzg holds the polynomial commitment scheme consumed by the
// delegation protocol.
//
// This layer is a thin collaborator of the MPC core: Setup and Commit
// perform real BN254 group arithmetic (naively, one scalar
// multiplication per coefficient), while Open produces honest
// evaluations with placeholder witnesses and Verify accepts every
// structurally valid proof. The efficient primitives a production
// scheme needs, batched multi-scalar multiplication and FFT evaluation,
// are present only as hooks returning [ErrNotImplemented].
package kzg
