package mulang

import "fmt"

// Apply evaluates the tree on a tuple of naturals. Evaluation is
// pure and deterministic; an unbounded mu node may not return.
func (f *Func) Apply(args ...Nat) (Nat, error) {
	switch f.Kind {

	case KindZero:
		return 0, nil

	case KindIncr:
		if len(args) != 1 {
			return 0, fmt.Errorf("incr wants 1 argument, got %d: %w", len(args), ErrArity)
		}
		return args[0] + 1, nil

	case KindProj:
		if f.Index >= len(args) {
			return 0, fmt.Errorf("proj(%d) on %d arguments: %w", f.Index, len(args), ErrArity)
		}
		return args[f.Index], nil

	case KindComp:
		xs := make([]Nat, len(f.Inner))
		for i, h := range f.Inner {
			x, err := h.Apply(args...)
			if err != nil {
				return 0, err
			}
			xs[i] = x
		}
		return f.Outer.Apply(xs...)

	case KindRec:
		if len(args) == 0 {
			return 0, fmt.Errorf("rec wants the recursion argument: %w", ErrArity)
		}
		n := args[0]
		xs := args[1:]
		// bottom-up, so the stack stays flat for large n
		acc, err := f.Base.Apply(xs...)
		if err != nil {
			return 0, err
		}
		stepArgs := make([]Nat, len(xs)+2)
		copy(stepArgs[2:], xs)
		for i := Nat(0); i < n; i++ {
			stepArgs[0] = i
			stepArgs[1] = acc
			acc, err = f.Step.Apply(stepArgs...)
			if err != nil {
				return 0, err
			}
		}
		return acc, nil

	case KindMu:
		predArgs := make([]Nat, len(args)+1)
		copy(predArgs[1:], args)
		for n := Nat(0); ; n++ {
			if f.Limit > 0 && n > f.Limit {
				return 0, fmt.Errorf("mu search passed %d: %w", f.Limit, ErrSearchLimit)
			}
			predArgs[0] = n
			v, err := f.Pred.Apply(predArgs...)
			if err != nil {
				return 0, err
			}
			if v == 0 {
				return n, nil
			}
		}

	}
	panic(fmt.Errorf("bad kind: %d", f.Kind))
}
