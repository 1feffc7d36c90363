package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/mu/modes"
	"github.com/reusee/mu/play"
)

type Module struct {
	dscope.Module
	Play play.Module
}

func main() {

	if len(os.Args) > 1 {
		if err := play.ExecFile(os.Args[1]); err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		return
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		playground play.Playground,
	) {
		playground(context.Background())
	})
}
