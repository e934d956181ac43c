// Package eval collects and reports performance metrics for protocol
// evaluations: per-phase wall-clock timings, gate counts, and the
// communication cost estimates derived from the operation modes.
//
// Communication figures come from the mode layer's declared cost model,
// not from measurement; see the mode package. Reports render as unicode
// tables.
package eval
