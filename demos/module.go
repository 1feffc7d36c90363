package demos

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mu/logs"
	"github.com/reusee/mu/muconfigs"
	"github.com/reusee/mu/mulang"
	"github.com/reusee/mu/vars"
)

type Module struct {
	dscope.Module
	Logs      logs.Module
	MuConfigs muconfigs.Module
}

// SuitePath is the suite flag value, may be empty. The config file
// value is the fallback.
type SuitePath string

type Cases []Case

func (Module) Cases(
	suitePath SuitePath,
	configSuite muconfigs.DemoSuite,
	inline muconfigs.DemoCases,
	logger logs.Logger,
) Cases {
	cases := Cases(Fixed())

	if path := vars.FirstNonZero(string(suitePath), string(configSuite)); path != "" {
		more, err := LoadSuite(path)
		if err != nil {
			panic(err)
		}
		logger.Info("loaded demo suite",
			"path", path,
			"cases", len(more),
		)
		cases = append(cases, more...)
	}

	for _, c := range inline {
		args := make([]mulang.Nat, len(c.Args))
		for i, arg := range c.Args {
			args[i] = mulang.Nat(arg)
		}
		cases = append(cases, Case{
			Call: c.Call,
			Args: args,
		})
	}

	return cases
}
