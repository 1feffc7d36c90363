// Package play exposes the μ-recursive standard library as starlark
// builtins, for scripted and interactive exploration.
package play

import (
	"fmt"

	"github.com/reusee/mu/mulang"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Predeclared binds every standard library function by its surface
// name, plus least(fn, args..., limit=) for minimization and names().
func Predeclared() starlark.StringDict {
	dict := make(starlark.StringDict)
	for _, name := range mulang.Names() {
		fn, _ := mulang.Lookup(name)
		dict[name] = builtin(name, fn)
	}
	dict["least"] = starlark.NewBuiltin("least", least)
	dict["names"] = starlarkutil.MakeFunc("names", mulang.Names)
	return dict
}

func builtin(name string, fn *mulang.Func) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(
		thread *starlark.Thread,
		b *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword argument", b.Name())
		}
		nats, err := asNats(b.Name(), args)
		if err != nil {
			return nil, err
		}
		v, err := fn.Apply(nats...)
		if err != nil {
			return nil, err
		}
		return starlark.MakeUint64(uint64(v)), nil
	})
}

func least(
	thread *starlark.Thread,
	b *starlark.Builtin,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("least wants a predicate name")
	}
	name, ok := starlark.AsString(args[0])
	if !ok {
		return nil, fmt.Errorf("least: predicate name must be a string, got %s", args[0].Type())
	}
	pred, ok := mulang.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("least: unknown function: %s", name)
	}

	var limit mulang.Nat
	for _, kw := range kwargs {
		key, _ := starlark.AsString(kw[0])
		switch key {
		case "limit":
			n, err := asNat(kw[1])
			if err != nil {
				return nil, fmt.Errorf("least: limit: %w", err)
			}
			limit = n
		default:
			return nil, fmt.Errorf("least: unexpected keyword argument: %s", key)
		}
	}

	extra, err := asNats("least", args[1:])
	if err != nil {
		return nil, err
	}

	m := mulang.Mu(pred)
	if limit > 0 {
		m = mulang.MuWithin(pred, limit)
	}
	v, err := m.Apply(extra...)
	if err != nil {
		return nil, err
	}
	return starlark.MakeUint64(uint64(v)), nil
}

func asNats(name string, args starlark.Tuple) ([]mulang.Nat, error) {
	nats := make([]mulang.Nat, len(args))
	for i, arg := range args {
		n, err := asNat(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		nats[i] = n
	}
	return nats, nil
}

func asNat(v starlark.Value) (mulang.Nat, error) {
	i, ok := v.(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("want a natural number, got %s", v.Type())
	}
	u, ok := i.Uint64()
	if !ok {
		return 0, fmt.Errorf("not a natural number: %s", i)
	}
	return mulang.Nat(u), nil
}
