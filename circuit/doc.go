// Package circuit implements the gate execution engine of the EOS MPC
// core.
//
// An [Executor] binds one party's identity to a secret sharing scheme
// and exposes circuit gates (add, multiply, linear combination, scalar
// multiplication) as thin protocol steps over the scheme's share
// algebra, plus secret input and reveal. Errors from the scheme layer
// are wrapped, never discarded, so errors.Is reaches the sharing
// package's sentinel errors.
//
// Executors hold no shared state: in a simulated multi-party run each
// party's view is an independent Executor value.
package circuit
