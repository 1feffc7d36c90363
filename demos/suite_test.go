package demos

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mu/modes"
)

func TestLoadSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	err := os.WriteFile(path, []byte(`
- call: max
  args: [3, 9]
- call: min
  args: [3, 9]
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cases, err := LoadSuite(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) != 2 {
		t.Fatalf("got %d cases", len(cases))
	}

	buf := new(bytes.Buffer)
	if err := Run(buf, cases); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "max(3,9) = 9\nmin(3,9) = 3\n" {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestLoadSuiteUnknownFunction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	err := os.WriteFile(path, []byte(`
- call: frobnicate
`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSuite(path); err == nil {
		t.Fatal("should error")
	}
}

func TestCasesProvider(t *testing.T) {
	t.Chdir(t.TempDir())
	dscope.New(
		new(Module),
		modes.ForTest(t),
		dscope.Provide(SuitePath("")),
	).Call(func(
		cases Cases,
	) {
		if len(cases) != len(Fixed()) {
			t.Fatalf("got %d cases", len(cases))
		}
	})
}
