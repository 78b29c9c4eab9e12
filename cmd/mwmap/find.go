package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sahilm/fuzzy"

	"github.com/mwtools/mwmap/report"
)

type findCmd struct {
	File  string `arg:"" help:"Map file to search." type:"existingfile"`
	Query string `arg:"" help:"Fuzzy pattern matched against symbol names."`
	Limit int    `default:"20" help:"Maximum number of matches (0 for all)." short:"n"`
	Count bool   `help:"Print only the match count."`
}

// symbolNames adapts a symbol list to fuzzy.Source.
type symbolNames []report.Symbol

func (s symbolNames) String(i int) string { return s[i].Name }
func (s symbolNames) Len() int            { return len(s) }

func (c *findCmd) Run(g *globals) error {
	lines, err := g.load(c.File)
	if err != nil {
		return err
	}
	syms := symbolNames(report.Symbols(lines))
	matches := fuzzy.FindFrom(c.Query, syms)

	if c.Count {
		fmt.Fprintln(g.stdout, len(matches))
		return nil
	}
	if c.Limit > 0 && len(matches) > c.Limit {
		matches = matches[:c.Limit]
	}

	tw := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', 0)
	for _, m := range matches {
		s := syms[m.Index]
		fmt.Fprintf(tw, "%s\t%s\t%08x\t%#x\t%s\n", s.Name, symbolWhere(s), s.Addr, s.Size, s.Origin)
	}
	return tw.Flush()
}

func symbolWhere(s report.Symbol) string {
	switch {
	case s.Linker:
		return "linker"
	case s.Unused:
		return s.Section.String() + " (unused)"
	default:
		return s.Section.String()
	}
}
