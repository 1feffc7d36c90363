package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var n uint64
	executor.Define("+n", Func(func() {
		n = 42
	}))
	executor.Define("n", Func(func(v uint64) {
		n = v
	}))

	if err := executor.Execute([]string{
		"+n",
	}); err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"n", "7",
	}); err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"frobnicate",
	})
	if !strings.Contains(err.Error(), "unknown command: frobnicate") {
		t.Fatalf("got %v", err)
	}
}

var errBoom = errors.New("boom")

func TestExecutorErrorReturn(t *testing.T) {
	executor := NewExecutor()
	executor.Define("boom", Func(func() error {
		return errBoom
	}))
	err := executor.Execute([]string{"boom"})
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var base, step uint64
	executor.Define("rec", Sub(map[string]*Command{
		"base": Func(func(v uint64) {
			base = v
		}),
		"step": Func(func(v uint64) {
			step = v
		}),
	}))

	if err := executor.Execute([]string{
		"rec",
		"base", "0",
		"step", "9",
	}); err != nil {
		t.Fatal(err)
	}
	if base != 0 {
		t.Fatal()
	}
	if step != 9 {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var name string
	var args string
	executor.Define("eval", Func(func(n string, a *string) {
		name = n
		args = *a
	}))

	if err := executor.Execute([]string{"eval", "add", "3,4"}); err != nil {
		t.Fatal(err)
	}
	if name != "add" {
		t.Fatal()
	}
	if args != "3,4" {
		t.Fatal()
	}

	if err := executor.Execute([]string{"eval", "one"}); err != nil {
		t.Fatal(err)
	}
	if name != "one" {
		t.Fatal()
	}
	if args != "" {
		t.Fatal()
	}
}
