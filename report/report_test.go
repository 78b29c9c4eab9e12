package report_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwtools/mwmap"
	"github.com/mwtools/mwmap/mapfile"
	"github.com/mwtools/mwmap/report"
)

func loadSample(t *testing.T) []mapfile.Line {
	t.Helper()
	res, err := mwmap.ParseFile(context.Background(),
		filepath.Join("..", "integration", "testdata", "sample.map"))
	require.NoError(t, err)
	return res.Lines
}

func parseLines(t *testing.T, lines ...string) []mapfile.Line {
	t.Helper()
	out := make([]mapfile.Line, len(lines))
	for i, text := range lines {
		l, err := mwmap.ParseLine(text)
		require.NoError(t, err, "line %q", text)
		out[i] = l
	}
	return out
}

func TestSummarizeSample(t *testing.T) {
	sum := report.Summarize(loadSample(t))

	assert.Equal(t, uint64(0x244+0x150), sum.CodeTotal)
	assert.Equal(t, uint64(0x18+0x8+0x20+0x30), sum.DataTotal)
	assert.Equal(t, uint64(0xf0+0x154+0x80+0x40+0x60+0x10), sum.Code)
	assert.Equal(t, uint64(0x10+0x8+0x4+0x4), sum.Data)

	require.Len(t, sum.Sections, 4)
	want := []struct {
		name    string
		size    uint64
		symbols int
		unused  uint64
		code    bool
	}{
		{".init", 0x244, 2, 4, true},
		{".text", 0x150, 5, 0x24, true},
		{".data", 0x18, 2, 0, false},
		{".sbss", 0x8, 2, 0, false},
	}
	for i, w := range want {
		s := sum.Sections[i]
		assert.Equal(t, w.name, s.Name.String())
		assert.Equal(t, w.size, s.Size, w.name)
		assert.Equal(t, w.symbols, s.Symbols, w.name)
		assert.Equal(t, w.unused, s.Unused, w.name)
		assert.Equal(t, w.code, s.Code(), w.name)
	}

	assert.Equal(t, []report.ObjectSize{
		{Object: "os.a", Code: 0x244},
		{Object: "main.o", Code: 0xc0, Data: 0x1c},
		{Object: "TRK_MINNOW_DOLPHIN.a", Code: 0x60},
		{Object: "Kyoto_CW1.a", Code: 0x10},
		{Object: "start.o", Data: 4},
	}, sum.Objects)
}

func TestSummarizeSkipsUnknownSections(t *testing.T) {
	lines := parseLines(t,
		".comment section layout",
		"  00000000 000010 00000000  4 foo 	main.o ",
		"",
		"         .comment  00000000 00000010 00000100",
	)
	lines = append(lines, nil)

	sum := report.Summarize(lines)
	assert.Zero(t, sum.Code)
	assert.Zero(t, sum.Data)
	assert.Zero(t, sum.CodeTotal)
	assert.Zero(t, sum.DataTotal)
	require.Len(t, sum.Sections, 1)
	assert.Zero(t, sum.Sections[0].Symbols)
	assert.Empty(t, sum.Objects)
}

func TestSymbols(t *testing.T) {
	syms := report.Symbols(loadSample(t))
	require.Len(t, syms, 20)

	first := syms[0]
	assert.Equal(t, ".init", first.Name)
	assert.Equal(t, uint32(0x80003100), first.Addr)
	assert.Equal(t, uint32(0x244), first.Size)

	var fill, unused, linker []report.Symbol
	for _, s := range syms {
		switch {
		case s.Child:
			fill = append(fill, s)
		case s.Unused:
			unused = append(unused, s)
		case s.Linker:
			linker = append(linker, s)
		}
	}

	require.Len(t, fill, 1)
	assert.Equal(t, "__fill_mem", fill[0].Name)
	assert.Equal(t, ".text", fill[0].Section.String())
	assert.Zero(t, fill[0].Size)

	require.Len(t, unused, 2)
	assert.Equal(t, "__check_pad3", unused[0].Name)
	assert.Equal(t, uint32(0x24), unused[1].Size)
	assert.Zero(t, unused[1].Addr)

	require.Len(t, linker, 4)
	assert.Equal(t, "_db_stack_addr", linker[0].Name)
	assert.Nil(t, linker[0].ID)
	assert.Equal(t, uint32(0x804f0c00), linker[0].Addr)

	last := syms[15]
	assert.Equal(t, ".Lanon", last.Name)
	assert.True(t, last.Origin.Asm)
	assert.Equal(t, ".sbss", last.Section.String())
}

func TestReferencesSample(t *testing.T) {
	refs := report.BuildReferences(loadSample(t))

	assert.Equal(t, []string{"__start"}, refs.Roots)
	assert.Equal(t, 12, refs.Len())

	main := report.Ref{Object: "main.o", Name: "main"}
	start := report.Ref{Object: "os.a", Name: "__start"}
	assert.Equal(t, []report.Ref{
		{Object: "main.o", Name: "foo"},
		{Object: "TRK_MINNOW_DOLPHIN.a", Name: "memset"},
		{Object: "Kyoto_CW1.a", Name: "__dt__15CMemoryInStreamFv"},
		{Object: "main.o", Name: "finfo$221"},
		{Object: "main.o", Name: "@stringBase0"},
		{Object: "main.o", Name: "...data.0"},
	}, refs.Callees(main))
	assert.Equal(t, []report.Ref{start, {Object: "main.o", Name: "foo"}}, refs.Callers(main))

	assert.Equal(t, []report.Ref{
		{Name: "_stack_addr"},
		{Name: "_SDA_BASE_"},
	}, refs.Callees(report.Ref{Object: "os.a", Name: "__init_registers"}))

	assert.Equal(t, [][]report.Ref{{
		{Object: "main.o", Name: "foo"},
		main,
	}}, refs.Cycles())

	assert.Equal(t, []report.Ref{main}, refs.Lookup("main"))
	assert.Empty(t, refs.Lookup("nope"))
}

func TestReferencesOrder(t *testing.T) {
	refs := report.BuildReferences(loadSample(t))

	order, cyclic := refs.Order()
	assert.Equal(t, []report.Ref{
		{Name: "_SDA_BASE_"},
		{Name: "_stack_addr"},
		{Object: "os.a", Name: "__init_registers"},
		{Object: "os.a", Name: "__start"},
	}, order)
	assert.Len(t, cyclic, 8)
}

func TestReferencesDuplicates(t *testing.T) {
	refs := report.BuildReferences(loadSample(t))

	require.Len(t, refs.Duplicates, 1)
	dup := refs.Duplicates[0]
	assert.Equal(t, "__dt__15CMemoryInStreamFv", dup.Name)
	assert.Equal(t, uint32(3), dup.Depth)
	assert.True(t, dup.HasSpec)
	assert.Equal(t, mapfile.TypeFunction, dup.Spec.Type)
	assert.Equal(t, mapfile.ScopeWeak, dup.Spec.Scope)
	assert.Equal(t, "Kyoto_CW1.a", dup.Spec.Origin.Object)
}

func TestReferencesDuplicateWithoutSpec(t *testing.T) {
	lines := parseLines(t,
		"Link map of main",
		"  1] main (func,global) found in main.o ",
		"   2] >>> UNREFERENCED DUPLICATE foo",
		"   2] bar (func,global) found in main.o ",
		"   2] >>> (func,weak) found in lib.a lib.c",
	)
	refs := report.BuildReferences(lines)

	require.Len(t, refs.Duplicates, 1)
	assert.Equal(t, "foo", refs.Duplicates[0].Name)
	assert.False(t, refs.Duplicates[0].HasSpec)
	assert.Equal(t, []report.Ref{{Object: "main.o", Name: "bar"}},
		refs.Callees(report.Ref{Object: "main.o", Name: "main"}))
}

func TestReferencesDepthJump(t *testing.T) {
	lines := parseLines(t,
		"Link map of main",
		"  1] main (func,global) found in main.o ",
		"     4] deep (func,global) found in main.o ",
	)
	refs := report.BuildReferences(lines)

	assert.Equal(t, []report.Ref{{Object: "main.o", Name: "deep"}},
		refs.Callees(report.Ref{Object: "main.o", Name: "main"}))
}
