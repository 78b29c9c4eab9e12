package mapfile

// SectionKind enumerates the sections the toolchain names itself.
type SectionKind uint8

const (
	SectionUnknown SectionKind = iota
	SectionBss
	SectionCtors
	SectionData
	SectionDtors
	SectionExTab
	SectionExTabIndex
	SectionInit
	SectionRoData
	SectionSBss
	SectionSBss2
	SectionSData
	SectionSData2
	SectionText
)

func (k SectionKind) String() string {
	switch k {
	case SectionBss:
		return ".bss"
	case SectionCtors:
		return ".ctors"
	case SectionData:
		return ".data"
	case SectionDtors:
		return ".dtors"
	case SectionExTab:
		return "extab"
	case SectionExTabIndex:
		return "extabindex"
	case SectionInit:
		return ".init"
	case SectionRoData:
		return ".rodata"
	case SectionSBss:
		return ".sbss"
	case SectionSBss2:
		return ".sbss2"
	case SectionSData:
		return ".sdata"
	case SectionSData2:
		return ".sdata2"
	case SectionText:
		return ".text"
	default:
		return "unknown"
	}
}

// SectionName names a loadable section. Any dot-prefixed name outside the
// fixed set has Kind SectionUnknown and keeps the text after the dot in
// Unknown.
type SectionName struct {
	Kind    SectionKind
	Unknown string
}

// Section returns the SectionName for a known section kind.
func Section(kind SectionKind) SectionName {
	return SectionName{Kind: kind}
}

// UnknownSection returns the SectionName for ".<name>".
func UnknownSection(name string) SectionName {
	return SectionName{Kind: SectionUnknown, Unknown: name}
}

func (s SectionName) String() string {
	if s.Kind == SectionUnknown {
		return "." + s.Unknown
	}
	return s.Kind.String()
}

// IsCode reports whether the section holds executable code.
func (s SectionName) IsCode() bool {
	return s.Kind == SectionText || s.Kind == SectionInit
}

// IsKnown reports whether the section is one of the fixed set.
func (s SectionName) IsKnown() bool {
	return s.Kind != SectionUnknown
}

// DebugSectionName names a debug information section. Debug sections are
// not loaded at runtime and have no virtual address.
type DebugSectionName uint8

const (
	DebugMain DebugSectionName = iota
	DebugLine
	DebugAbbrev
	DebugAranges
	DebugInfo
	DebugSFNames
	DebugSrcInfo
	DebugStr
)

func (d DebugSectionName) String() string {
	switch d {
	case DebugMain:
		return ".debug"
	case DebugLine:
		return ".line"
	case DebugAbbrev:
		return ".debug_abbrev"
	case DebugAranges:
		return ".debug_aranges"
	case DebugInfo:
		return ".debug_info"
	case DebugSFNames:
		return ".debug_sfnames"
	case DebugSrcInfo:
		return ".debug_srcinfo"
	case DebugStr:
		return ".debug_str"
	default:
		return "unknown"
	}
}
