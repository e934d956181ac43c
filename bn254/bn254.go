package bn254

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/f3rmion/eos/field"
)

// frModulus is the BN254 scalar field order r.
var frModulus = fr.Modulus()

// Element represents an element of the BN254 scalar field Fr.
// It implements [field.Element] by wrapping gnark-crypto's fr.Element.
//
// All arithmetic operations automatically reduce results modulo r.
type Element struct {
	inner fr.Element
}

// newElement creates a new element initialized to zero.
func newElement() *Element {
	return &Element{}
}

// Add sets e to a + b (mod r) and returns e.
func (e *Element) Add(a, b field.Element) field.Element {
	ae := a.(*Element)
	be := b.(*Element)
	e.inner.Add(&ae.inner, &be.inner)
	return e
}

// Sub sets e to a - b (mod r) and returns e.
func (e *Element) Sub(a, b field.Element) field.Element {
	ae := a.(*Element)
	be := b.(*Element)
	e.inner.Sub(&ae.inner, &be.inner)
	return e
}

// Mul sets e to a * b (mod r) and returns e.
func (e *Element) Mul(a, b field.Element) field.Element {
	ae := a.(*Element)
	be := b.(*Element)
	e.inner.Mul(&ae.inner, &be.inner)
	return e
}

// Negate sets e to -a (mod r) and returns e.
func (e *Element) Negate(a field.Element) field.Element {
	ae := a.(*Element)
	e.inner.Neg(&ae.inner)
	return e
}

// Inverse sets e to a^(-1) (mod r) and returns e.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (e *Element) Inverse(a field.Element) (field.Element, error) {
	ae := a.(*Element)
	if ae.IsZero() {
		return nil, errors.New("cannot invert zero element")
	}
	e.inner.Inverse(&ae.inner)
	return e, nil
}

// Set copies the value of a into e and returns e.
func (e *Element) Set(a field.Element) field.Element {
	ae := a.(*Element)
	e.inner.Set(&ae.inner)
	return e
}

// SetUint64 sets e to v and returns e.
func (e *Element) SetUint64(v uint64) field.Element {
	e.inner.SetUint64(v)
	return e
}

// Clone returns an independent copy of e.
func (e *Element) Clone() field.Element {
	var c Element
	c.inner.Set(&e.inner)
	return &c
}

// Bytes returns the element as a 32-byte big-endian representation.
func (e *Element) Bytes() []byte {
	b := e.inner.Bytes()
	return b[:]
}

// SetBytes sets e from a big-endian byte slice and returns e.
// The value is reduced modulo r.
func (e *Element) SetBytes(data []byte) (field.Element, error) {
	e.inner.SetBytes(data)
	return e, nil
}

// Equal reports whether e and b represent the same field element.
func (e *Element) Equal(b field.Element) bool {
	be := b.(*Element)
	return e.inner.Equal(&be.inner)
}

// IsZero reports whether e is the zero element.
func (e *Element) IsZero() bool {
	return e.inner.IsZero()
}

// IsOne reports whether e is the one element.
func (e *Element) IsOne() bool {
	return e.inner.IsOne()
}

// Fr implements [field.Field] for the BN254 scalar field.
//
// Fr is a zero-sized type that provides access to Fr arithmetic.
// Create an instance with &Fr{} or new(Fr).
type Fr struct{}

// NewElement returns a new element initialized to zero.
func (f *Fr) NewElement() field.Element {
	return newElement()
}

// One returns a new element initialized to one.
func (f *Fr) One() field.Element {
	e := newElement()
	e.inner.SetOne()
	return e
}

// FromUint64 returns a new element set to v.
func (f *Fr) FromUint64(v uint64) field.Element {
	e := newElement()
	e.inner.SetUint64(v)
	return e
}

// RandomElement generates a uniformly random field element using the
// provided random source. The result is distributed in [0, r).
func (f *Fr) RandomElement(r io.Reader) (field.Element, error) {
	var buf [48]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	n := new(big.Int).SetBytes(buf[:])
	n.Mod(n, frModulus)

	e := newElement()
	e.inner.SetBigInt(n)
	return e, nil
}

// Modulus returns the BN254 scalar field order r as a big-endian byte slice.
func (f *Fr) Modulus() []byte {
	return frModulus.Bytes()
}
