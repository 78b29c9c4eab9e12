// Package report derives sizes, symbol indexes and the reference graph from
// the classified lines of a map file.
package report

import (
	"cmp"
	"slices"

	"github.com/mwtools/mwmap/mapfile"
)

// Summary totals the code and data of a linked image.
type Summary struct {
	// CodeTotal and DataTotal are the loadable section sizes from the
	// memory table. Unknown and debug sections are not counted.
	CodeTotal uint64
	DataTotal uint64

	// Code and Data sum the sizes of symbols in the section tables.
	// Section symbols and rows under unknown sections are not counted.
	Code uint64
	Data uint64

	Sections []SectionSize
	Objects  []ObjectSize
}

// SectionSize is the symbol total of one section table.
type SectionSize struct {
	Name    mapfile.SectionName
	Size    uint64
	Symbols int
	Unused  uint64 // dead-stripped bytes
}

// Code reports whether the section holds executable code.
func (s SectionSize) Code() bool {
	return s.Name.IsCode()
}

// ObjectSize is the code and data an object file contributes.
type ObjectSize struct {
	Object string
	Code   uint64
	Data   uint64
}

// Total returns code plus data.
func (o ObjectSize) Total() uint64 {
	return o.Code + o.Data
}

// Summarize walks the classified lines of one map file. Nil lines are
// ignored.
func Summarize(lines []mapfile.Line) Summary {
	var sum Summary
	objects := make(map[string]*ObjectSize)

	cur := -1
	for _, line := range lines {
		switch l := line.(type) {
		case mapfile.MemoryEntry:
			main, ok := l.Data.(mapfile.MainSection)
			if !ok || !main.Name.IsKnown() {
				continue
			}
			if main.Name.IsCode() {
				sum.CodeTotal += uint64(l.Size)
			} else {
				sum.DataTotal += uint64(l.Size)
			}

		case mapfile.Empty:
			cur = -1

		case mapfile.SectionTitle:
			sum.Sections = append(sum.Sections, SectionSize{Name: l.Name})
			cur = len(sum.Sections) - 1

		case mapfile.SectionUnused:
			if cur >= 0 {
				sum.Sections[cur].Unused += uint64(l.Size)
			}

		case mapfile.SectionSymbol:
			if cur < 0 || !sum.Sections[cur].Name.IsKnown() {
				continue
			}
			current := &sum.Sections[cur]
			if _, ok := l.ID.(mapfile.SectionIdent); ok {
				continue
			}
			current.Symbols++
			parent, ok := l.Data.(mapfile.Parent)
			if !ok {
				continue
			}
			size := uint64(parent.Size)
			current.Size += size

			obj := objects[l.Origin.Object]
			if obj == nil {
				obj = &ObjectSize{Object: l.Origin.Object}
				objects[l.Origin.Object] = obj
			}
			if current.Code() {
				sum.Code += size
				obj.Code += size
			} else {
				sum.Data += size
				obj.Data += size
			}
		}
	}

	sum.Objects = make([]ObjectSize, 0, len(objects))
	for _, obj := range objects {
		sum.Objects = append(sum.Objects, *obj)
	}
	slices.SortFunc(sum.Objects, func(a, b ObjectSize) int {
		if c := cmp.Compare(b.Total(), a.Total()); c != 0 {
			return c
		}
		return cmp.Compare(a.Object, b.Object)
	})
	return sum
}
