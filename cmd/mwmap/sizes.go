package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwtools/mwmap/report"
)

type sizesCmd struct {
	Files   []string `arg:"" help:"Map files to summarize." name:"file" type:"existingfile"`
	Objects int      `help:"Also list the N largest object files." placeholder:"N"`
}

func (c *sizesCmd) Run(g *globals) error {
	r := lipgloss.NewRenderer(g.stdout)
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	number := cell.Align(lipgloss.Right)

	// Columns before textCols are left aligned.
	styleFor := func(textCols int) table.StyleFunc {
		return func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col < textCols:
				return cell
			default:
				return number
			}
		}
	}

	for _, path := range c.Files {
		lines, err := g.load(path)
		if err != nil {
			return err
		}
		sum := report.Summarize(lines)

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(r.NewStyle()).
			StyleFunc(styleFor(2)).
			Headers("SECTION", "KIND", "SIZE", "SYMBOLS", "UNUSED")
		for _, s := range sum.Sections {
			kind := "data"
			if s.Code() {
				kind = "code"
			}
			if !s.Name.IsKnown() {
				kind = "-"
			}
			t.Row(s.Name.String(), kind, formatSize(s.Size), strconv.Itoa(s.Symbols), formatSize(s.Unused))
		}

		fmt.Fprintf(g.stdout, "%s\n", path)
		fmt.Fprintln(g.stdout, t.String())
		fmt.Fprintf(g.stdout, "code: %s of %s\n", formatSize(sum.Code), formatSize(sum.CodeTotal))
		fmt.Fprintf(g.stdout, "data: %s of %s\n", formatSize(sum.Data), formatSize(sum.DataTotal))

		if c.Objects > 0 && len(sum.Objects) > 0 {
			ot := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(r.NewStyle()).
				StyleFunc(styleFor(1)).
				Headers("OBJECT", "CODE", "DATA", "TOTAL")
			for _, o := range sum.Objects[:min(c.Objects, len(sum.Objects))] {
				ot.Row(o.Object, formatSize(o.Code), formatSize(o.Data), formatSize(o.Total()))
			}
			fmt.Fprintln(g.stdout, ot.String())
		}
	}
	return nil
}

func formatSize(n uint64) string {
	return fmt.Sprintf("%#x (%d)", n, n)
}
