package circuit

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/eos/bn254"
	"github.com/f3rmion/eos/field"
	"github.com/f3rmion/eos/sharing"
)

func newShamirExecutor(t *testing.T, partyID, parties int) (*Executor, field.Field) {
	t.Helper()
	f := &bn254.Fr{}
	exec, err := New(partyID, parties, sharing.NewShamir(f))
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	return exec, f
}

func TestNewExecutor(t *testing.T) {
	f := &bn254.Fr{}
	scheme := sharing.NewShamir(f)

	if _, err := New(0, 3, scheme); err != nil {
		t.Errorf("valid executor rejected: %v", err)
	}
	if _, err := New(3, 3, scheme); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("party id == parties: got %v, want ErrInvalidInput", err)
	}
	if _, err := New(-1, 3, scheme); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative party id: got %v, want ErrInvalidInput", err)
	}
	if _, err := New(0, 0, scheme); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero parties: got %v, want ErrInvalidInput", err)
	}
}

func TestConstraintSystemAttachment(t *testing.T) {
	exec, _ := newShamirExecutor(t, 0, 3)

	if got := exec.ConstraintSystem(); got != (ConstraintSystem{}) {
		t.Errorf("fresh executor has constraint system %+v", got)
	}

	cs := ConstraintSystem{NumConstraints: 4, NumVariables: 3, NumPublicInputs: 1}
	exec.SetConstraintSystem(cs)
	if got := exec.ConstraintSystem(); got != cs {
		t.Errorf("got %+v, want %+v", got, cs)
	}
}

func TestInputAndReveal(t *testing.T) {
	exec, f := newShamirExecutor(t, 0, 5)
	secret := f.FromUint64(42)

	shares, err := exec.InputSecret(secret, 3, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if len(shares) != 5 {
		t.Fatalf("got %d shares, want 5", len(shares))
	}

	got, err := exec.RevealSecret(shares[:3])
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(secret) {
		t.Error("revealed value differs from input secret")
	}

	// Two shares of a 3-of-5 sharing reveal an unrelated value.
	wrong, err := exec.RevealSecret(shares[:2])
	if err != nil {
		t.Fatal(err)
	}
	if wrong.Equal(secret) {
		t.Error("below-threshold reveal produced the secret")
	}
}

func TestAddGate(t *testing.T) {
	exec, f := newShamirExecutor(t, 0, 5)

	v1 := f.FromUint64(15)
	v2 := f.FromUint64(27)

	shares1, err := exec.InputSecret(v1, 3, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	shares2, err := exec.InputSecret(v2, 3, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	sums := make([]sharing.Share, 5)
	for i := range sums {
		sum, err := exec.AddGate(shares1[i], shares2[i])
		if err != nil {
			t.Fatal(err)
		}
		sums[i] = sum
	}

	got, err := exec.RevealSecret(sums[:3])
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(f.NewElement().Add(v1, v2)) {
		t.Error("add gate output did not reveal to v1+v2")
	}
}

func TestMulGateWrapsSchemeErrors(t *testing.T) {
	f := &bn254.Fr{}
	exec, err := New(0, 3, sharing.NewAdditive(f))
	if err != nil {
		t.Fatal(err)
	}

	shares, err := exec.InputSecret(f.FromUint64(5), 0, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	_, err = exec.MulGate(shares[0], shares[0])
	if !errors.Is(err, sharing.ErrReconstructionFailed) {
		t.Errorf("got %v, want wrapped ErrReconstructionFailed", err)
	}
}

func TestLinearCombinationGate(t *testing.T) {
	exec, f := newShamirExecutor(t, 0, 5)

	v1 := f.FromUint64(3)
	v2 := f.FromUint64(4)
	c1 := f.FromUint64(10)
	c2 := f.FromUint64(100)

	shares1, err := exec.InputSecret(v1, 2, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	shares2, err := exec.InputSecret(v2, 2, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("RevealsCombination", func(t *testing.T) {
		// Combine each party's shares, then reveal from a quorum.
		combined := make([]sharing.Share, 5)
		for i := range combined {
			out, err := exec.LinearCombinationGate(
				[]sharing.Share{shares1[i], shares2[i]},
				[]field.Element{c1, c2},
			)
			if err != nil {
				t.Fatal(err)
			}
			combined[i] = out
		}

		got, err := exec.RevealSecret(combined[:2])
		if err != nil {
			t.Fatal(err)
		}
		// want = c1*v1 + c2*v2 = 10*3 + 100*4 = 430
		want := f.FromUint64(430)
		if !got.Equal(want) {
			t.Error("linear combination did not reveal to c1*v1 + c2*v2")
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := exec.LinearCombinationGate(
			[]sharing.Share{shares1[0]},
			[]field.Element{c1, c2},
		)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("got %v, want ErrInvalidInput", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := exec.LinearCombinationGate(nil, nil)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("got %v, want ErrInvalidInput", err)
		}
	})
}

func TestRevealSecretWrapsSchemeErrors(t *testing.T) {
	exec, _ := newShamirExecutor(t, 0, 3)

	_, err := exec.RevealSecret(nil)
	if !errors.Is(err, sharing.ErrInsufficientShares) {
		t.Errorf("got %v, want wrapped ErrInsufficientShares", err)
	}
}

func TestExecuteCircuitIdentity(t *testing.T) {
	exec, f := newShamirExecutor(t, 0, 3)

	shares, err := exec.InputSecret(f.FromUint64(9), 2, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	out, err := exec.ExecuteCircuit(shares)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(shares) {
		t.Fatalf("got %d outputs, want %d", len(out), len(shares))
	}
	for i := range out {
		if out[i].Index != shares[i].Index || !out[i].Value.Equal(shares[i].Value) {
			t.Errorf("output %d differs from input", i)
		}
	}
}
