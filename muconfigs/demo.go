package muconfigs

import "github.com/reusee/mu/configs"

// DemoSuite is the path of an extra YAML demo suite, empty if not
// configured.
type DemoSuite string

func (Module) DemoSuite(
	loader configs.Loader,
) DemoSuite {
	return DemoSuite(configs.First[string](loader, "demo.suite"))
}

type DemoCase struct {
	Call string   `json:"call"`
	Args []uint64 `json:"args"`
}

// DemoCases are extra demo cases declared inline in the config file.
type DemoCases []DemoCase

func (Module) DemoCases(
	loader configs.Loader,
) DemoCases {
	return DemoCases(configs.First[[]DemoCase](loader, "demo.cases"))
}
