package muconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mu/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
