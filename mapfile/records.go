package mapfile

// Origin records where a symbol came from: the object file or archive that
// contributed it, the translation unit named by its debug info when present,
// and whether that unit was assembly.
type Origin struct {
	Object string
	Source string // empty when the map names no source file
	Asm    bool
}

// HasSource reports whether the origin names a source file.
func (o Origin) HasSource() bool {
	return o.Source != ""
}

func (o Origin) String() string {
	s := o.Object
	if o.Source != "" {
		s += " " + o.Source
	}
	if o.Asm {
		s += " (asm)"
	}
	return s
}

// SymbolType is the symbol type printed in a tree specifier.
type SymbolType uint8

const (
	TypeNone SymbolType = iota
	TypeSection
	TypeObject
	TypeFunction
)

func (t SymbolType) String() string {
	switch t {
	case TypeNone:
		return "notype"
	case TypeSection:
		return "section"
	case TypeObject:
		return "object"
	case TypeFunction:
		return "func"
	default:
		return "unknown"
	}
}

// Scope is the binding printed in a tree specifier.
type Scope uint8

const (
	ScopeGlobal Scope = iota
	ScopeLocal
	ScopeWeak
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeLocal:
		return "local"
	case ScopeWeak:
		return "weak"
	default:
		return "unknown"
	}
}

// Specifier is the "(type,scope) found in origin" part of a tree node.
type Specifier struct {
	Type   SymbolType
	Scope  Scope
	Origin Origin
}

// NodeData is the payload of a TreeNode.
type NodeData interface {
	nodeData()
}

// LinkerRef is a reference resolved to a linker generated symbol.
type LinkerRef struct {
	Name string
}

// ObjectRef is a reference resolved to a symbol from an object file.
type ObjectRef struct {
	ID   Identifier
	Spec Specifier
}

// DuplicateIdent is the ">>> UNREFERENCED DUPLICATE <id>" marker line.
type DuplicateIdent struct {
	ID Identifier
}

// DuplicateSpec is the ">>> (type,scope) found in origin" line printed after
// a DuplicateIdent. The two lines are not merged.
type DuplicateSpec struct {
	Spec Specifier
}

func (LinkerRef) nodeData()      {}
func (ObjectRef) nodeData()      {}
func (DuplicateIdent) nodeData() {}
func (DuplicateSpec) nodeData()  {}

// SymbolData is the storage part of a SectionSymbol.
type SymbolData interface {
	symbolData()
}

// Parent is a symbol that owns its storage.
type Parent struct {
	Size  uint32
	Align uint8
}

// Child is a symbol nested in the storage of another symbol, such as a jump
// table slot or an exception table fragment.
type Child struct {
	Parent Identifier
}

func (Parent) symbolData() {}
func (Child) symbolData()  {}

// MemoryData is the section part of a MemoryEntry.
type MemoryData interface {
	memoryData()
}

// MainSection is a loadable section row of the memory table.
type MainSection struct {
	Name     SectionName
	VirtAddr uint32
}

// DebugSection is a debug section row of the memory table.
type DebugSection struct {
	Name DebugSectionName
}

func (MainSection) memoryData()  {}
func (DebugSection) memoryData() {}
