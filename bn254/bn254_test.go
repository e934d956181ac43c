package bn254

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestArithmetic(t *testing.T) {
	f := &Fr{}

	a := f.FromUint64(17)
	b := f.FromUint64(5)

	t.Run("AddSub", func(t *testing.T) {
		sum := f.NewElement().Add(a, b)
		if !sum.Equal(f.FromUint64(22)) {
			t.Error("17 + 5 != 22")
		}
		diff := f.NewElement().Sub(sum, b)
		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInverse", func(t *testing.T) {
		prod := f.NewElement().Mul(a, b)
		if !prod.Equal(f.FromUint64(85)) {
			t.Error("17 * 5 != 85")
		}

		inv, err := f.NewElement().Inverse(b)
		if err != nil {
			t.Fatal(err)
		}
		if !f.NewElement().Mul(b, inv).IsOne() {
			t.Error("b * b^-1 != 1")
		}
	})

	t.Run("InverseOfZero", func(t *testing.T) {
		if _, err := f.NewElement().Inverse(f.NewElement()); err == nil {
			t.Error("inverting zero must fail")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		neg := f.NewElement().Negate(a)
		if !f.NewElement().Add(a, neg).IsZero() {
			t.Error("a + (-a) != 0")
		}
	})
}

func TestRandomElement(t *testing.T) {
	f := &Fr{}

	x, err := f.RandomElement(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	y, err := f.RandomElement(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if x.Equal(y) {
		t.Error("two random elements are equal")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	f := &Fr{}

	x, err := f.RandomElement(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	encoded := x.Bytes()
	if len(encoded) != 32 {
		t.Fatalf("got %d bytes, want 32", len(encoded))
	}

	y, err := f.NewElement().SetBytes(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !x.Equal(y) {
		t.Error("byte round trip changed the element")
	}
	if !bytes.Equal(encoded, y.Bytes()) {
		t.Error("re-encoding changed the bytes")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := &Fr{}

	a := f.FromUint64(7)
	c := a.Clone()
	a.SetUint64(9)

	if !c.Equal(f.FromUint64(7)) {
		t.Error("clone changed when the original was mutated")
	}
}
