package mapfile

import "strconv"

// Identifier is the name of a symbol in one of the toolchain's naming forms.
// All variants are comparable and may be used as map keys.
type Identifier interface {
	String() string
	identifier()
}

// RelativeIdent is an anonymous symbol referenced as "@<index>".
type RelativeIdent struct {
	Index uint32
}

// StringBaseIdent is the synthetic string table base "@stringBase<index>".
type StringBaseIdent struct {
	Index uint8
}

// NamedIdent is an ordinary C identifier. HasInstance is set when the linker
// appended a "$<instance>" suffix to tell apart local symbols sharing Name.
type NamedIdent struct {
	Name        string
	Instance    uint32
	HasInstance bool
}

// MangledIdent is a C++ mangled name.
type MangledIdent struct {
	Name string
}

// SectionIdent is a section used as a symbol, either bare (".text") or with
// a sub-index ("...text.3").
type SectionIdent struct {
	Name     SectionName
	Index    uint8
	HasIndex bool
}

// LocalLabelIdent is a compiler-generated ".L" label. Name excludes ".L".
type LocalLabelIdent struct {
	Name string
}

// Named returns a NamedIdent without an instance suffix.
func Named(name string) NamedIdent {
	return NamedIdent{Name: name}
}

// NamedInstance returns a NamedIdent carrying a "$<instance>" suffix.
func NamedInstance(name string, instance uint32) NamedIdent {
	return NamedIdent{Name: name, Instance: instance, HasInstance: true}
}

func (i RelativeIdent) String() string {
	return "@" + strconv.FormatUint(uint64(i.Index), 10)
}

func (i StringBaseIdent) String() string {
	return "@stringBase" + strconv.FormatUint(uint64(i.Index), 10)
}

func (i NamedIdent) String() string {
	if !i.HasInstance {
		return i.Name
	}
	return i.Name + "$" + strconv.FormatUint(uint64(i.Instance), 10)
}

func (i MangledIdent) String() string { return i.Name }

func (i SectionIdent) String() string {
	if !i.HasIndex {
		return i.Name.String()
	}
	return ".." + i.Name.String() + "." + strconv.FormatUint(uint64(i.Index), 10)
}

func (i LocalLabelIdent) String() string { return ".L" + i.Name }

func (RelativeIdent) identifier()   {}
func (StringBaseIdent) identifier() {}
func (NamedIdent) identifier()      {}
func (MangledIdent) identifier()    {}
func (SectionIdent) identifier()    {}
func (LocalLabelIdent) identifier() {}
