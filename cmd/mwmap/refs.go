package main

import (
	"fmt"
	"strings"

	"github.com/mwtools/mwmap/report"
)

type refsCmd struct {
	File    string `arg:"" help:"Map file to read." type:"existingfile"`
	Symbol  string `arg:"" help:"Symbol name." optional:""`
	Callers bool   `help:"List the symbols that reference SYMBOL instead of the ones it references."`
	Cycles  bool   `help:"List groups of mutually referencing symbols." xor:"mode"`
	Order   bool   `help:"List symbols with referenced symbols first." xor:"mode"`
}

func (c *refsCmd) Run(g *globals) error {
	lines, err := g.load(c.File)
	if err != nil {
		return err
	}
	refs := report.BuildReferences(lines)

	switch {
	case c.Cycles:
		for _, cycle := range refs.Cycles() {
			names := make([]string, len(cycle))
			for i, s := range cycle {
				names[i] = s.String()
			}
			fmt.Fprintln(g.stdout, strings.Join(names, " <-> "))
		}
		return nil

	case c.Order:
		order, cyclic := refs.Order()
		for _, s := range order {
			fmt.Fprintln(g.stdout, s)
		}
		for _, s := range cyclic {
			fmt.Fprintf(g.stdout, "%s (cyclic)\n", s)
		}
		return nil
	}

	if c.Symbol == "" {
		return fmt.Errorf("no symbol specified")
	}
	matches := refs.Lookup(c.Symbol)
	if len(matches) == 0 {
		return fmt.Errorf("symbol not found in link tree: %s", c.Symbol)
	}
	for _, sym := range matches {
		list := refs.Callees(sym)
		verb := "references"
		if c.Callers {
			list = refs.Callers(sym)
			verb = "referenced by"
		}
		fmt.Fprintf(g.stdout, "%s %s:\n", sym, verb)
		for _, s := range list {
			fmt.Fprintf(g.stdout, "  %s\n", s)
		}
	}
	return nil
}
