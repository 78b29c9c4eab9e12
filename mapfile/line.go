// Package mapfile defines the typed records produced by classifying the
// lines of a CodeWarrior linker map file.
//
// Every physical line of a map file becomes exactly one Line value. Strings
// held by these records are substrings of the classified input and share its
// backing storage.
package mapfile

// Kind identifies the shape of a classified line.
type Kind int

// Line kinds, in the order the classifier tries them.
const (
	KindEmpty Kind = iota
	KindTreeTitle
	KindTreeNode
	KindSectionTitle
	KindSectionColumns0
	KindSectionColumns1
	KindSectionSeparator
	KindSectionSymbol
	KindSectionUnused
	KindMemoryTitle
	KindMemoryColumns0
	KindMemoryColumns1
	KindMemoryEntry
	KindLinkerTitle
	KindLinkerEntry
)

// Kinds lists every line kind in classifier order.
var Kinds = []Kind{
	KindEmpty,
	KindTreeTitle,
	KindTreeNode,
	KindSectionTitle,
	KindSectionColumns0,
	KindSectionColumns1,
	KindSectionSeparator,
	KindSectionSymbol,
	KindSectionUnused,
	KindMemoryTitle,
	KindMemoryColumns0,
	KindMemoryColumns1,
	KindMemoryEntry,
	KindLinkerTitle,
	KindLinkerEntry,
}

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindTreeTitle:
		return "TreeTitle"
	case KindTreeNode:
		return "TreeNode"
	case KindSectionTitle:
		return "SectionTitle"
	case KindSectionColumns0:
		return "SectionColumns0"
	case KindSectionColumns1:
		return "SectionColumns1"
	case KindSectionSeparator:
		return "SectionSeparator"
	case KindSectionSymbol:
		return "SectionSymbol"
	case KindSectionUnused:
		return "SectionUnused"
	case KindMemoryTitle:
		return "MemoryTitle"
	case KindMemoryColumns0:
		return "MemoryColumns0"
	case KindMemoryColumns1:
		return "MemoryColumns1"
	case KindMemoryEntry:
		return "MemoryEntry"
	case KindLinkerTitle:
		return "LinkerTitle"
	case KindLinkerEntry:
		return "LinkerEntry"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind whose String form is s.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Line is one classified physical line of a map file.
type Line interface {
	Kind() Kind
	line()
}

// Empty is a blank line.
type Empty struct{}

// TreeTitle is the "Link map of <root>" heading of the reference tree.
type TreeTitle struct {
	Root string
}

// TreeNode is one entry of the symbol reference tree. Depth is the number
// printed before "] ", not the indentation width.
type TreeNode struct {
	Depth uint32
	Data  NodeData
}

// SectionTitle is the "<section> section layout" heading.
type SectionTitle struct {
	Name SectionName
}

// SectionColumns0 is the first column-header line of a section table.
// File is set when the header carries the file offset column.
type SectionColumns0 struct {
	File bool
}

// SectionColumns1 is the second column-header line of a section table.
type SectionColumns1 struct {
	File bool
}

// SectionSeparator is the dashed rule under the section column headers.
// Width is the number of dashes.
type SectionSeparator struct {
	Width int
}

// SectionSymbol is one symbol row of a section table.
type SectionSymbol struct {
	Addr        uint32
	VirtAddr    uint32
	FileAddr    uint32
	HasFileAddr bool // false for sections without file backing
	Data        SymbolData
	ID          Identifier
	Origin      Origin
}

// SectionUnused is a section table row for a symbol the linker dead-stripped.
type SectionUnused struct {
	Size   uint32
	ID     Identifier
	Origin Origin
}

// MemoryTitle is the "Memory map:" heading.
type MemoryTitle struct{}

// MemoryColumns0 is the first column-header line of the memory table.
type MemoryColumns0 struct{}

// MemoryColumns1 is the second column-header line of the memory table.
type MemoryColumns1 struct{}

// MemoryEntry is one row of the memory table.
type MemoryEntry struct {
	Data     MemoryData
	Size     uint32
	FileAddr uint32
}

// LinkerTitle is the "Linker generated symbols:" heading.
type LinkerTitle struct{}

// LinkerEntry is a linker-synthesized symbol.
type LinkerEntry struct {
	Name     string
	VirtAddr uint32
}

func (Empty) Kind() Kind            { return KindEmpty }
func (TreeTitle) Kind() Kind        { return KindTreeTitle }
func (TreeNode) Kind() Kind         { return KindTreeNode }
func (SectionTitle) Kind() Kind     { return KindSectionTitle }
func (SectionColumns0) Kind() Kind  { return KindSectionColumns0 }
func (SectionColumns1) Kind() Kind  { return KindSectionColumns1 }
func (SectionSeparator) Kind() Kind { return KindSectionSeparator }
func (SectionSymbol) Kind() Kind    { return KindSectionSymbol }
func (SectionUnused) Kind() Kind    { return KindSectionUnused }
func (MemoryTitle) Kind() Kind      { return KindMemoryTitle }
func (MemoryColumns0) Kind() Kind   { return KindMemoryColumns0 }
func (MemoryColumns1) Kind() Kind   { return KindMemoryColumns1 }
func (MemoryEntry) Kind() Kind      { return KindMemoryEntry }
func (LinkerTitle) Kind() Kind      { return KindLinkerTitle }
func (LinkerEntry) Kind() Kind      { return KindLinkerEntry }

func (Empty) line()            {}
func (TreeTitle) line()        {}
func (TreeNode) line()         {}
func (SectionTitle) line()     {}
func (SectionColumns0) line()  {}
func (SectionColumns1) line()  {}
func (SectionSeparator) line() {}
func (SectionSymbol) line()    {}
func (SectionUnused) line()    {}
func (MemoryTitle) line()      {}
func (MemoryColumns0) line()   {}
func (MemoryColumns1) line()   {}
func (MemoryEntry) line()      {}
func (LinkerTitle) line()      {}
func (LinkerEntry) line()      {}
