package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	var names []string
	for name, cmd := range p.commands {
		if cmd == nil || cmd.Hidden || slices.Contains(cmd.Aliases, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		writeCommandUsage(w, name, p.commands[name], 0)
	}
}

func writeCommandUsage(w io.Writer, name string, cmd *Command, depth int) {
	indent := strings.Repeat("  ", depth+1)
	line := indent + name
	if len(cmd.Aliases) > 0 {
		line += " (" + strings.Join(cmd.Aliases, ", ") + ")"
	}
	if cmd.Func.IsValid() {
		for i := range cmd.Func.Type().NumIn() {
			t := cmd.Func.Type().In(i)
			line += " <" + t.String() + ">"
		}
	}
	if cmd.Description != "" {
		line += "\t" + cmd.Description
	}
	fmt.Fprintln(w, line)

	subNames := make([]string, 0, len(cmd.Subs))
	for subName := range cmd.Subs {
		subNames = append(subNames, subName)
	}
	slices.Sort(subNames)
	for _, subName := range subNames {
		if sub := cmd.Subs[subName]; sub != nil && !sub.Hidden {
			writeCommandUsage(w, subName, sub, depth+1)
		}
	}
}
