package mulang

import (
	"errors"
	"testing"
	"time"
)

func TestMuLeastWitness(t *testing.T) {
	// neq(n, 3) is zero exactly at n = 3
	m := Mu(Comp(Neq, Proj(0), Const(3)))
	v, err := m.Apply()
	if err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Fatalf("got %d", v)
	}
}

func TestMuAscendingFirstMatch(t *testing.T) {
	// sub(3, n) is zero for every n >= 3, the least must win
	m := Mu(Comp(Sub, Const(3), Proj(0)))
	v, err := m.Apply()
	if err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Fatalf("got %d", v)
	}
}

func TestMuExtraArguments(t *testing.T) {
	// m(x) = least n with neq(n, x) = 0, i.e. x itself
	m := Mu(Neq)
	for x := Nat(0); x < 6; x++ {
		v, err := m.Apply(x)
		if err != nil {
			t.Fatal(err)
		}
		if v != x {
			t.Fatalf("m(%d) = %d", x, v)
		}
	}
}

func TestMuWithin(t *testing.T) {
	// no witness: incr(n) is never zero
	m := MuWithin(Comp(Incr(), Proj(0)), 1000)
	_, err := m.Apply()
	if !errors.Is(err, ErrSearchLimit) {
		t.Fatalf("got %v", err)
	}

	// a witness under the ceiling is still found
	m = MuWithin(Comp(Neq, Proj(0), Const(3)), 1000)
	v, err := m.Apply()
	if err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Fatalf("got %d", v)
	}
}

func TestMuUnboundedDoesNotReturn(t *testing.T) {
	// a predicate with no zero loops forever; observe via timeout,
	// not via any error
	m := Mu(Comp(Incr(), Proj(0)))
	done := make(chan struct{})
	go func() {
		m.Apply()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("mu returned on a predicate with no zero")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMuErrorPropagation(t *testing.T) {
	m := Mu(Comp(Incr(), Proj(0), Proj(1)))
	_, err := m.Apply()
	if !errors.Is(err, ErrArity) {
		t.Fatalf("got %v", err)
	}
}
