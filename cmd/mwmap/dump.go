package main

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mwtools/mwmap/mapfile"
)

type dumpCmd struct {
	File    string   `arg:"" help:"Map file to dump." type:"existingfile"`
	Format  string   `default:"json" enum:"json,yaml" help:"Output format (${enum})." short:"f"`
	Kind    []string `help:"Only dump lines of these kinds (e.g. SectionSymbol)." short:"k"`
	Filter  string   `help:"Only dump records for which this expression is true (e.g. 'size > 0x100')."`
	Compact bool     `help:"Minified JSON (no indentation)."`
}

func (c *dumpCmd) Run(g *globals) error {
	kinds, err := parseKinds(c.Kind)
	if err != nil {
		return err
	}
	filter, err := compileFilter(c.Filter)
	if err != nil {
		return err
	}

	lines, err := g.load(c.File)
	if err != nil {
		return err
	}

	var out []record
	for _, r := range records(lines) {
		if len(kinds) > 0 && !slices.Contains(kinds, r.Kind) {
			continue
		}
		ok, err := filter.match(r)
		if err != nil {
			return err
		}
		if ok {
			out = append(out, r)
		}
	}
	if out == nil {
		out = []record{}
	}

	switch c.Format {
	case "yaml":
		enc := yaml.NewEncoder(g.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "failed to marshal YAML")
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(g.stdout)
		if !c.Compact {
			enc.SetIndent("", "  ")
		}
		return errors.Wrap(enc.Encode(out), "failed to marshal JSON")
	}
}

func parseKinds(names []string) ([]string, error) {
	var kinds []string
	for _, name := range names {
		k, ok := mapfile.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown kind: %s", name)
		}
		kinds = append(kinds, k.String())
	}
	return kinds, nil
}

// recordFilter is a compiled --filter expression. The zero value matches
// every record.
type recordFilter struct {
	program *vm.Program
}

func compileFilter(source string) (recordFilter, error) {
	if source == "" {
		return recordFilter{}, nil
	}
	program, err := expr.Compile(source, expr.Env(record{}), expr.AsBool())
	if err != nil {
		return recordFilter{}, errors.Wrapf(err, "invalid filter %q", source)
	}
	return recordFilter{program: program}, nil
}

func (f recordFilter) match(r record) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	v, err := expr.Run(f.program, r)
	if err != nil {
		return false, errors.Wrapf(err, "filter failed on line %d", r.Line)
	}
	ok, _ := v.(bool)
	return ok, nil
}
