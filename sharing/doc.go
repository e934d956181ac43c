// Package sharing implements the secret sharing schemes used by the EOS
// MPC core: Shamir threshold sharing and n-out-of-n additive sharing,
// both over an arbitrary prime field.
//
// # Scheme contract
//
// Both schemes implement [Scheme]: split a secret into shares, recover
// it from a qualified set, and combine shares under addition,
// multiplication, and scalar multiplication. The circuit executor and
// operation modes are written against this contract and never inspect
// scheme internals.
//
// # Shamir sharing
//
// [Shamir] embeds the secret as the constant term of a random
// polynomial of degree t-1 and hands party i the evaluation at x = i.
// Any t of the n shares reconstruct the secret via Lagrange
// interpolation at zero; any smaller set is information-theoretically
// useless, and reconstruction from it silently yields an unrelated
// value.
//
// Share addition and scalar multiplication are local and preserve the
// polynomial degree. Share multiplication is NOT a complete protocol:
// [Shamir.MulShares] multiplies values pointwise, which doubles the
// polynomial degree. See the method documentation and [DegreeReducer].
//
// # Additive sharing
//
// [Additive] splits the secret into n values summing to it. All n
// shares are required to reconstruct; omitting any one yields a wrong
// value with no local indication. Multiplication of two additively
// shared values cannot be computed locally and is rejected.
//
// # Randomness
//
// Both schemes draw randomness from an io.Reader supplied per call,
// never from process-global state, so sharing is reproducible under
// test with a deterministic reader.
package sharing
