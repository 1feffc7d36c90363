package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/mu/cmds"
	"github.com/reusee/mu/demos"
	"github.com/reusee/mu/logs"
	"github.com/reusee/mu/modes"
	"github.com/reusee/mu/mulang"
	"github.com/reusee/mu/vars"
)

type Module struct {
	dscope.Module
	Demos demos.Module
}

var (
	suiteFlag = cmds.Var[string]("suite")
	limitFlag = cmds.Var[uint64]("limit")
)

func init() {
	cmds.Define("eval", cmds.Func(func(name string, argstr *string) error {
		fn, ok := mulang.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown function: %s", name)
		}
		args, err := parseNats(vars.DerefOrZero(argstr))
		if err != nil {
			return err
		}
		v, err := fn.Apply(args...)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", v)
		os.Exit(0)
		return nil
	}).Desc("evaluate a library function: eval <fn> <n[,n...]>"))

	cmds.Define("least", cmds.Func(func(name string, argstr *string) error {
		pred, ok := mulang.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown function: %s", name)
		}
		args, err := parseNats(vars.DerefOrZero(argstr))
		if err != nil {
			return err
		}
		m := mulang.Mu(pred)
		if *limitFlag > 0 {
			m = mulang.MuWithin(pred, mulang.Nat(*limitFlag))
		}
		v, err := m.Apply(args...)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", v)
		os.Exit(0)
		return nil
	}).Desc("least n with <fn>(n, args...) = 0: least <fn> [n[,n...]], unbounded unless limit is set"))
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
		dscope.Provide(demos.SuitePath(*suiteFlag)),
	)

	scope.Call(run)
}

func run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	cases demos.Cases,
) {
	ctx, _ := newSpan(context.Background(), "")
	logger.InfoContext(ctx, "evaluating",
		"cases", len(cases),
	)
	if err := demos.Run(os.Stdout, cases); err != nil {
		ce(logs.WrapSpan(ctx, err))
	}
}

func parseNats(str string) ([]mulang.Nat, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, nil
	}
	parts := strings.Split(str, ",")
	nats := make([]mulang.Nat, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not a natural number: %s", part)
		}
		nats[i] = mulang.Nat(v)
	}
	return nats, nil
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
