package play

import (
	"context"
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/mu/logs"
	"github.com/reusee/mu/mulang"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Playground runs the interactive loop, blocking until EOF.
type Playground func(ctx context.Context)

func (Module) Playground(
	logger logs.Logger,
) Playground {
	return func(ctx context.Context) {
		logger.InfoContext(ctx, "playground",
			"builtins", mulang.Names(),
		)
		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, Predeclared())
	}
}

// ExecFile runs a starlark script against the playground builtins.
func ExecFile(path string) error {
	thread := &starlark.Thread{
		Name: "main",
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Println(msg)
		},
	}
	_, err := starlark.ExecFileOptions(fileOptions, thread, path, nil, Predeclared())
	return err
}
