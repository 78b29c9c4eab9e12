package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/mwtools/mwmap/mapfile"
)

type parseCmd struct {
	Files []string `arg:"" help:"Map files to classify." name:"file" type:"existingfile"`
	Quiet bool     `help:"Print only failures." short:"q"`
}

func (c *parseCmd) Run(g *globals) error {
	failed := false
	for _, path := range c.Files {
		lines, err := g.load(path)
		if err != nil {
			var ec exitCode
			if errors.As(err, &ec) {
				failed = true
				continue
			}
			return err
		}

		counts := make(map[mapfile.Kind]int)
		errs := 0
		for _, l := range lines {
			if l == nil {
				errs++
				continue
			}
			counts[l.Kind()]++
		}
		if errs > 0 {
			failed = true
		}
		if c.Quiet {
			continue
		}

		fmt.Fprintf(g.stdout, "%s: %d lines\n", path, len(lines))
		tw := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', 0)
		for _, k := range mapfile.Kinds {
			if n := counts[k]; n > 0 {
				fmt.Fprintf(tw, "  %s\t%d\n", k, n)
			}
		}
		if errs > 0 {
			fmt.Fprintf(tw, "  failed\t%d\n", errs)
		}
		tw.Flush()
	}
	if failed {
		return exitCode(exitFailure)
	}
	return nil
}
