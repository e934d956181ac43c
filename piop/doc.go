// Package piop holds the polynomial IOP consistency checker consumed by
// the delegation protocol.
//
// This layer is presentation-only: constraint consistency and sumcheck
// verification are placeholders that always succeed. The checker keeps
// real polynomial bookkeeping (named witness/public polynomials, degree
// checks, honest evaluations inside generated proofs) so the protocol
// layer exercises realistic data flow, but it provides no soundness.
package piop
