package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwtools/mwmap"
	"github.com/mwtools/mwmap/mapfile"
)

type explainCmd struct {
	Line string `arg:"" help:"Text of one map file line."`
}

func (c *explainCmd) Run(g *globals) error {
	kinds := mwmap.Matches(c.Line)
	if len(kinds) > 0 {
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		fmt.Fprintf(g.stdout, "matches: %s\n", strings.Join(names, ", "))
		l, err := mwmap.ParseLine(c.Line)
		if err != nil {
			return err
		}
		fmt.Fprintf(g.stdout, "%#v\n", l)
		return nil
	}

	_, err := mwmap.ParseLine(c.Line)
	var perr *mapfile.ParseError
	if !errors.As(err, &perr) {
		return err
	}
	fmt.Fprintf(g.stdout, "no match\n")
	fmt.Fprintf(g.stdout, "  %s\n", perr.Input)
	fmt.Fprintf(g.stdout, "  %s^\n", strings.Repeat(" ", perr.Offset))
	fmt.Fprintf(g.stdout, "column %d: %s", perr.Column(), perr.Kind)
	if perr.Expected != "" {
		fmt.Fprintf(g.stdout, ": expected %s", perr.Expected)
	}
	fmt.Fprintln(g.stdout)
	return exitCode(exitFailure)
}
