package mulang

import (
	"slices"
	"strconv"
)

// Const builds the function that ignores its arguments and returns k,
// as k applications of incr folded over zero.
func Const(k Nat) *Func {
	f := Zero()
	for i := Nat(0); i < k; i++ {
		f = Comp(Incr(), f)
	}
	return Named(strconv.FormatUint(uint64(k), 10), f)
}

// The derived standard library. Every entry is a static composition
// of the primitive operators, built once and stored as a value.
var (
	ID  = Named("id", Proj(0))
	One = Named("one", Const(1))

	// pred(0) = 0, pred(n+1) = n
	Pred = Named("pred", Rec(Zero(), Proj(0)))

	// add(x,y) counts up from x, y times
	addRaw = Rec(ID, Comp(Incr(), Proj(1)))
	Add    = Named("add", Comp(addRaw, Proj(1), Proj(0)))

	// sub is monus: pred applied y times to x, clamped at 0
	subRaw = Rec(ID, Comp(Pred, Proj(1)))
	Sub    = Named("sub", Comp(subRaw, Proj(1), Proj(0)))

	mulRaw = Rec(Zero(), Comp(Add, Proj(1), Proj(2)))
	Mul    = Named("mul", Comp(mulRaw, Proj(1), Proj(0)))

	expRaw = Rec(One, Comp(Mul, Proj(1), Proj(2)))
	Exp    = Named("exp", Comp(expRaw, Proj(1), Proj(0)))

	IsZero = Named("is_zero", Rec(One, Comp(Zero())))
	Sign   = Named("sign", Rec(Zero(), Comp(One)))

	// leq(x,y) = is_zero(x monus y)
	Leq = Named("leq", Comp(IsZero, Sub))
	Geq = Named("geq", Comp(Leq, Proj(1), Proj(0)))
	Lt  = Named("lt", Comp(Sign, Comp(Sub, Proj(1), Proj(0))))

	Eq  = Named("eq", Comp(Mul, Leq, Geq))
	Neq = Named("neq", Comp(Sign, Comp(Sub, One, Eq)))

	// max and min from the add/sub identities, not from any host
	// comparison: max = (x monus y) + y, min = (x + y) monus max
	Max = Named("max", Comp(Add, Comp(Sub, Proj(0), Proj(1)), Proj(1)))
	Min = Named("min", Comp(Sub, Comp(Add, Proj(0), Proj(1)), Max))
)

var stdlib = func() map[string]*Func {
	m := make(map[string]*Func)
	for _, f := range []*Func{
		Named("zero", Zero()),
		Named("incr", Incr()),
		ID, One, Pred,
		Add, Sub, Mul, Exp,
		IsZero, Sign,
		Leq, Geq, Lt, Eq, Neq,
		Max, Min,
	} {
		m[f.Name] = f
	}
	return m
}()

// Lookup resolves a standard library function by its surface name.
func Lookup(name string) (*Func, bool) {
	f, ok := stdlib[name]
	return f, ok
}

// Names lists the standard library, sorted.
func Names() []string {
	names := make([]string, 0, len(stdlib))
	for name := range stdlib {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
