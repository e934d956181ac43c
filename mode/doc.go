// Package mode implements the operation modes governing inter-party
// communication in the EOS MPC core.
//
// A [Mode] wraps a circuit executor and decides how much communication
// a gate sequence is allowed to consume. [Isolation] minimizes
// communication and enforces a hard round cap; [Collaboration] allows
// open communication with optional parallelism and protocol
// optimizations.
//
// All multi-party interaction in this core is simulated in-process:
// "communication rounds" are accounting abstractions consumed by the
// mode's policy checks, never real I/O. Each mode exposes a derived
// [Pattern] whose [Complexity] estimate (rounds, bytes per round,
// latency) uses declared design constants, preserved exactly so cost
// estimates stay reproducible.
package mode
