package report

import (
	"github.com/mwtools/mwmap/mapfile"
)

// Symbol is one entry of the flat symbol index.
type Symbol struct {
	Name    string
	ID      mapfile.Identifier // nil for linker generated symbols
	Section mapfile.SectionName
	Addr    uint32 // virtual address, 0 for unused rows
	Size    uint32 // 0 for child rows
	Origin  mapfile.Origin
	Child   bool
	Unused  bool
	Linker  bool
}

// Symbols lists the symbols of the section tables and the linker table, in
// file order. Nil lines are ignored.
func Symbols(lines []mapfile.Line) []Symbol {
	var out []Symbol
	var section mapfile.SectionName
	for _, line := range lines {
		switch l := line.(type) {
		case mapfile.SectionTitle:
			section = l.Name
		case mapfile.SectionSymbol:
			sym := Symbol{
				Name:    l.ID.String(),
				ID:      l.ID,
				Section: section,
				Addr:    l.VirtAddr,
				Origin:  l.Origin,
			}
			switch d := l.Data.(type) {
			case mapfile.Parent:
				sym.Size = d.Size
			case mapfile.Child:
				sym.Child = true
			}
			out = append(out, sym)
		case mapfile.SectionUnused:
			out = append(out, Symbol{
				Name:    l.ID.String(),
				ID:      l.ID,
				Section: section,
				Size:    l.Size,
				Origin:  l.Origin,
				Unused:  true,
			})
		case mapfile.LinkerEntry:
			out = append(out, Symbol{
				Name:   l.Name,
				Addr:   l.VirtAddr,
				Linker: true,
			})
		}
	}
	return out
}
