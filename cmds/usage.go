package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintf(os.Stderr, "commands:\n")
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, depth int) {
	names := make([]string, 0, len(commands))
	byCommand := make(map[*Command][]string)
	for name, command := range commands {
		byCommand[command] = append(byCommand[command], name)
	}
	seen := make(map[*Command]bool)
	for name, command := range commands {
		if seen[command] {
			continue
		}
		seen[command] = true
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		aliases := byCommand[command]
		slices.Sort(aliases)
		fmt.Fprintf(os.Stderr, "%s%s", indent, strings.Join(aliases, ", "))
		if command != nil && command.Description != "" {
			fmt.Fprintf(os.Stderr, "\t%s", command.Description)
		}
		fmt.Fprintf(os.Stderr, "\n")
		if command != nil && len(command.Subs) > 0 {
			printCommands(command.Subs, depth+1)
		}
	}
}
