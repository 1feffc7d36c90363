// Package demos evaluates standard library calls and prints one
// "<expression> = <value>" line per case.
package demos

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/mu/mulang"
)

type Case struct {
	Call string
	Args []mulang.Nat
}

func (c Case) Expr() string {
	var sb strings.Builder
	sb.WriteString(c.Call)
	sb.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%d", arg)
	}
	sb.WriteString(")")
	return sb.String()
}

// Fixed is the canonical example enumeration, in its fixed order.
func Fixed() []Case {
	return []Case{
		{"pred", []mulang.Nat{0}},
		{"pred", []mulang.Nat{5}},
		{"add", []mulang.Nat{3, 4}},
		{"mul", []mulang.Nat{3, 4}},
		{"exp", []mulang.Nat{2, 5}},
		{"sub", []mulang.Nat{7, 10}},
		{"sub", []mulang.Nat{10, 7}},
		{"is_zero", []mulang.Nat{0}},
		{"is_zero", []mulang.Nat{9}},
		{"leq", []mulang.Nat{3, 7}},
		{"leq", []mulang.Nat{7, 3}},
		{"eq", []mulang.Nat{9, 9}},
		{"eq", []mulang.Nat{9, 8}},
	}
}

// Run evaluates the cases in order, writing one line each.
func Run(w io.Writer, cases []Case) error {
	for _, c := range cases {
		fn, ok := mulang.Lookup(c.Call)
		if !ok {
			return fmt.Errorf("unknown function: %s", c.Call)
		}
		v, err := fn.Apply(c.Args...)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Expr(), err)
		}
		if _, err := fmt.Fprintf(w, "%s = %d\n", c.Expr(), v); err != nil {
			return err
		}
	}
	return nil
}
