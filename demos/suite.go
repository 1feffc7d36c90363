package demos

import (
	"fmt"
	"os"

	"github.com/reusee/mu/mulang"
	"gopkg.in/yaml.v3"
)

type suiteEntry struct {
	Call string   `yaml:"call"`
	Args []uint64 `yaml:"args"`
}

// LoadSuite reads extra cases from a YAML file: a list of
// {call, args} entries.
func LoadSuite(path string) ([]Case, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []suiteEntry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cases := make([]Case, 0, len(entries))
	for _, entry := range entries {
		if _, ok := mulang.Lookup(entry.Call); !ok {
			return nil, fmt.Errorf("%s: unknown function: %s", path, entry.Call)
		}
		args := make([]mulang.Nat, len(entry.Args))
		for i, arg := range entry.Args {
			args[i] = mulang.Nat(arg)
		}
		cases = append(cases, Case{
			Call: entry.Call,
			Args: args,
		})
	}
	return cases, nil
}
