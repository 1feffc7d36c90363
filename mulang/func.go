// Package mulang implements the μ-recursive function algebra: five
// primitive operators (zero, incr, proj, comp, rec, mu) from which a
// standard library of arithmetic is derived by composition alone.
package mulang

import (
	"fmt"
	"strings"
)

// Nat is the sole value domain of the algebra.
type Nat uint64

type Kind uint8

const (
	KindZero Kind = iota
	KindIncr
	KindProj
	KindComp
	KindRec
	KindMu
)

// Func is a node in a combinator tree. Trees are built bottom-up,
// leaves first, and are immutable after construction.
type Func struct {
	Kind  Kind
	Name  string
	Index int     // proj
	Outer *Func   // comp
	Inner []*Func // comp
	Base  *Func   // rec
	Step  *Func   // rec
	Pred  *Func   // mu
	Limit Nat     // mu search ceiling, 0 means unbounded
}

func Zero() *Func {
	return &Func{
		Kind: KindZero,
	}
}

func Incr() *Func {
	return &Func{
		Kind: KindIncr,
	}
}

func Proj(i int) *Func {
	if i < 0 {
		panic(fmt.Errorf("proj: negative index %d", i))
	}
	return &Func{
		Kind:  KindProj,
		Index: i,
	}
}

// Comp builds g such that g(xs...) = outer(h1(xs...), ..., hk(xs...)).
// All inner funcs see the same argument tuple.
func Comp(outer *Func, inner ...*Func) *Func {
	return &Func{
		Kind:  KindComp,
		Outer: outer,
		Inner: inner,
	}
}

// Rec builds h over (n, xs...) with h(0, xs...) = base(xs...) and
// h(n+1, xs...) = step(n, h(n, xs...), xs...).
func Rec(base, step *Func) *Func {
	return &Func{
		Kind: KindRec,
		Base: base,
		Step: step,
	}
}

// Mu builds m over (xs...) returning the least n with
// pred(n, xs...) = 0, searching ascending from 0. If no such n
// exists, m never returns.
func Mu(pred *Func) *Func {
	return &Func{
		Kind: KindMu,
		Pred: pred,
	}
}

// MuWithin is Mu with a search ceiling: candidates beyond limit are
// not examined and the application fails with ErrSearchLimit. This is
// a testing and diagnostics aid, never the default.
func MuWithin(pred *Func, limit Nat) *Func {
	return &Func{
		Kind:  KindMu,
		Pred:  pred,
		Limit: limit,
	}
}

// Named returns the same tree under a name, for rendering and
// registry purposes.
func Named(name string, f *Func) *Func {
	g := *f
	g.Name = name
	return &g
}

func (f *Func) String() string {
	if f.Name != "" {
		return f.Name
	}
	switch f.Kind {
	case KindZero:
		return "zero"
	case KindIncr:
		return "incr"
	case KindProj:
		return fmt.Sprintf("proj(%d)", f.Index)
	case KindComp:
		var sb strings.Builder
		sb.WriteString("comp(")
		sb.WriteString(f.Outer.String())
		for _, h := range f.Inner {
			sb.WriteString(", ")
			sb.WriteString(h.String())
		}
		sb.WriteString(")")
		return sb.String()
	case KindRec:
		return fmt.Sprintf("rec(%s, %s)", f.Base, f.Step)
	case KindMu:
		return fmt.Sprintf("mu(%s)", f.Pred)
	}
	panic(fmt.Errorf("bad kind: %d", f.Kind))
}
