package scan

import (
	"github.com/mwtools/mwmap/mapfile"
)

type sectionWord struct {
	word string
	kind mapfile.SectionKind
}

// fixedSections is tried in order after the leading dot. Longer names
// sharing a prefix come first.
var fixedSections = []sectionWord{
	{"bss", mapfile.SectionBss},
	{"ctors", mapfile.SectionCtors},
	{"data", mapfile.SectionData},
	{"dtors", mapfile.SectionDtors},
	{"init", mapfile.SectionInit},
	{"rodata", mapfile.SectionRoData},
	{"sbss2", mapfile.SectionSBss2},
	{"sbss", mapfile.SectionSBss},
	{"sdata2", mapfile.SectionSData2},
	{"sdata", mapfile.SectionSData},
	{"text", mapfile.SectionText},
}

// exTabSpelling consumes "[.][_]<word>[_]" for the first matching word.
func (c Cursor) exTabSpelling(words ...string) (Cursor, *Error) {
	body := c.OptChar('.').OptChar('_')
	for _, w := range words {
		if next, err := body.Tag(w); err == nil {
			return next.OptChar('_'), nil
		}
	}
	return c, body.Fail(mapfile.ErrNoMatch, "exception table section")
}

func isUnknownSectionByte(b byte) bool {
	return isAlnum(b) || b == '_' || b == '.'
}

// SectionName consumes a section name. Names are matched as prefixes:
// ".textual" yields Text and leaves "ual" unconsumed.
func (c Cursor) SectionName() (mapfile.SectionName, Cursor, *Error) {
	if next, err := c.exTabSpelling("extabindex", "exidx"); err == nil {
		return mapfile.Section(mapfile.SectionExTabIndex), next, nil
	}
	if next, err := c.exTabSpelling("extab"); err == nil {
		return mapfile.Section(mapfile.SectionExTab), next, nil
	}
	body, err := c.Char('.')
	if err != nil {
		return mapfile.SectionName{}, c, body.Fail(mapfile.ErrNoMatch, "section name")
	}
	for _, s := range fixedSections {
		if next, err := body.Tag(s.word); err == nil {
			return mapfile.Section(s.kind), next, nil
		}
	}
	name, next, err := body.TakeWhile1(isUnknownSectionByte, "section name")
	if err != nil {
		return mapfile.SectionName{}, c, err
	}
	return mapfile.UnknownSection(name), next, nil
}

type debugWord struct {
	word string
	name mapfile.DebugSectionName
}

// debugSuffixes follow ".debug_". Both "info" and "line" map to Info.
var debugSuffixes = []debugWord{
	{"abbrev", mapfile.DebugAbbrev},
	{"aranges", mapfile.DebugAranges},
	{"info", mapfile.DebugInfo},
	{"line", mapfile.DebugInfo},
	{"sfnames", mapfile.DebugSFNames},
	{"srcinfo", mapfile.DebugSrcInfo},
	{"str", mapfile.DebugStr},
}

// DebugSectionName consumes a debug section name. A bare ".debug" is only
// recognized when it ends the cursor's input.
func (c Cursor) DebugSectionName() (mapfile.DebugSectionName, Cursor, *Error) {
	body, err := c.Char('.')
	if err != nil {
		return 0, c, err
	}
	if next, err := body.Tag("line"); err == nil {
		return mapfile.DebugLine, next, nil
	}
	body, err = body.Tag("debug")
	if err != nil {
		return 0, c, err
	}
	if body.AtEnd() {
		return mapfile.DebugMain, body, nil
	}
	body, err = body.Char('_')
	if err != nil {
		return 0, c, err
	}
	for _, s := range debugSuffixes {
		if next, err := body.Tag(s.word); err == nil {
			return s.name, next, nil
		}
	}
	return 0, c, body.Fail(mapfile.ErrNoMatch, "debug section suffix")
}
