// Package protocol implements the three-phase delegation protocol that
// consumes the MPC core.
//
// A [Protocol] wraps one party's circuit executor and operation mode:
//
//  1. [Protocol.Preprocess] records circuit parameters and runs the
//     polynomial commitment setup.
//  2. [Protocol.Delegate] secret-shares the witness, drives this
//     party's shares through the mode-governed executor, and produces a
//     consistency proof plus a witness commitment.
//  3. [Protocol.Verify] checks a delegation result.
//
// The secret sharing and gate execution underneath are real; the PIOP
// and commitment collaborators are thin placeholders, so Verify attests
// to structure, not soundness.
package protocol
