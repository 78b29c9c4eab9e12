package main

import (
	"github.com/mwtools/mwmap/mapfile"
)

// record is the flattened form of a classified line used for dumping and
// filter expressions. Fields that do not apply to a kind are left zero.
type record struct {
	Line     int    `expr:"line"     json:"line"               yaml:"line"`
	Kind     string `expr:"kind"     json:"kind"               yaml:"kind"`
	Name     string `expr:"name"     json:"name,omitempty"     yaml:"name,omitempty"`
	Ident    string `expr:"ident"    json:"ident,omitempty"    yaml:"ident,omitempty"`
	Section  string `expr:"section"  json:"section,omitempty"  yaml:"section,omitempty"`
	Depth    uint32 `expr:"depth"    json:"depth,omitempty"    yaml:"depth,omitempty"`
	Type     string `expr:"type"     json:"type,omitempty"     yaml:"type,omitempty"`
	Scope    string `expr:"scope"    json:"scope,omitempty"    yaml:"scope,omitempty"`
	Addr     uint32 `expr:"addr"     json:"addr,omitempty"     yaml:"addr,omitempty"`
	VirtAddr uint32 `expr:"virtAddr" json:"virtAddr,omitempty" yaml:"virtAddr,omitempty"`
	FileAddr uint32 `expr:"fileAddr" json:"fileAddr,omitempty" yaml:"fileAddr,omitempty"`
	Size     uint32 `expr:"size"     json:"size,omitempty"     yaml:"size,omitempty"`
	Align    uint8  `expr:"align"    json:"align,omitempty"    yaml:"align,omitempty"`
	Parent   string `expr:"parent"   json:"parent,omitempty"   yaml:"parent,omitempty"`
	Object   string `expr:"object"   json:"object,omitempty"   yaml:"object,omitempty"`
	Source   string `expr:"source"   json:"source,omitempty"   yaml:"source,omitempty"`
	Asm      bool   `expr:"asm"      json:"asm,omitempty"      yaml:"asm,omitempty"`
	Width    int    `expr:"width"    json:"width,omitempty"    yaml:"width,omitempty"`
	Unused   bool   `expr:"unused"   json:"unused,omitempty"   yaml:"unused,omitempty"`
	Debug    bool   `expr:"debug"    json:"debug,omitempty"    yaml:"debug,omitempty"`
}

// records flattens lines. Nil lines are skipped; line numbers stay
// 1-based positions in lines.
func records(lines []mapfile.Line) []record {
	out := make([]record, 0, len(lines))
	var section string
	for i, line := range lines {
		if line == nil {
			continue
		}
		r := record{Line: i + 1, Kind: line.Kind().String()}
		switch l := line.(type) {
		case mapfile.Empty:
			section = ""
		case mapfile.TreeTitle:
			r.Name = l.Root
		case mapfile.TreeNode:
			r.Depth = l.Depth
			setNode(&r, l.Data)
		case mapfile.SectionTitle:
			section = l.Name.String()
			r.Section = section
		case mapfile.SectionSeparator:
			r.Width = l.Width
			r.Section = section
		case mapfile.SectionSymbol:
			r.Section = section
			r.Addr = l.Addr
			r.VirtAddr = l.VirtAddr
			r.FileAddr = l.FileAddr
			setIdent(&r, l.ID)
			setOrigin(&r, l.Origin)
			switch d := l.Data.(type) {
			case mapfile.Parent:
				r.Size = d.Size
				r.Align = d.Align
			case mapfile.Child:
				r.Parent = d.Parent.String()
			}
		case mapfile.SectionUnused:
			r.Section = section
			r.Size = l.Size
			r.Unused = true
			setIdent(&r, l.ID)
			setOrigin(&r, l.Origin)
		case mapfile.MemoryEntry:
			r.Size = l.Size
			r.FileAddr = l.FileAddr
			switch d := l.Data.(type) {
			case mapfile.MainSection:
				r.Section = d.Name.String()
				r.VirtAddr = d.VirtAddr
			case mapfile.DebugSection:
				r.Section = d.Name.String()
				r.Debug = true
			}
		case mapfile.LinkerEntry:
			r.Name = l.Name
			r.VirtAddr = l.VirtAddr
		}
		out = append(out, r)
	}
	return out
}

func setNode(r *record, data mapfile.NodeData) {
	switch d := data.(type) {
	case mapfile.LinkerRef:
		r.Name = d.Name
		r.Ident = "linker"
	case mapfile.ObjectRef:
		setIdent(r, d.ID)
		setSpec(r, d.Spec)
	case mapfile.DuplicateIdent:
		setIdent(r, d.ID)
		r.Unused = true
	case mapfile.DuplicateSpec:
		setSpec(r, d.Spec)
		r.Unused = true
	}
}

func setSpec(r *record, spec mapfile.Specifier) {
	r.Type = spec.Type.String()
	r.Scope = spec.Scope.String()
	setOrigin(r, spec.Origin)
}

func setOrigin(r *record, o mapfile.Origin) {
	r.Object = o.Object
	r.Source = o.Source
	r.Asm = o.Asm
}

func setIdent(r *record, id mapfile.Identifier) {
	r.Name = id.String()
	r.Ident = identKind(id)
}

func identKind(id mapfile.Identifier) string {
	switch id.(type) {
	case mapfile.RelativeIdent:
		return "relative"
	case mapfile.StringBaseIdent:
		return "stringBase"
	case mapfile.NamedIdent:
		return "named"
	case mapfile.MangledIdent:
		return "mangled"
	case mapfile.SectionIdent:
		return "section"
	case mapfile.LocalLabelIdent:
		return "localLabel"
	default:
		return ""
	}
}
