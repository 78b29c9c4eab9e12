package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwtools/mwmap"
)

func TestRecords(t *testing.T) {
	res, err := mwmap.ParseFile(context.Background(), samplePath)
	require.NoError(t, err)

	recs := records(res.Lines)
	require.Len(t, recs, 73)

	byLine := func(n int) record { return recs[n-1] }

	assert.Equal(t, record{Line: 1, Kind: "TreeTitle", Name: "__start"}, byLine(1))
	assert.Equal(t, record{
		Line: 9, Kind: "TreeNode", Depth: 3,
		Name: "memset", Ident: "named", Type: "func", Scope: "global",
		Object: "TRK_MINNOW_DOLPHIN.a", Source: "mem.c",
	}, byLine(9))
	assert.Equal(t, record{Line: 4, Kind: "TreeNode", Depth: 3, Name: "_stack_addr", Ident: "linker"}, byLine(4))
	assert.True(t, byLine(12).Unused)
	assert.Equal(t, "named", byLine(12).Ident)

	assert.Equal(t, record{
		Line: 35, Kind: "SectionSymbol", Section: ".text",
		Addr: 0xc0, VirtAddr: 0x800034c0, FileAddr: 0x4c0,
		Name: "__fill_mem", Ident: "named", Parent: "memset",
		Object: "TRK_MINNOW_DOLPHIN.a", Source: "mem.c",
	}, byLine(35))
	assert.Equal(t, uint8(16), byLine(36).Align)
	assert.Equal(t, 33, byLine(30).Width)

	unused := byLine(25)
	assert.True(t, unused.Unused)
	assert.Equal(t, uint32(4), unused.Size)
	assert.Equal(t, ".init", unused.Section)

	lanon := byLine(52)
	assert.Equal(t, "localLabel", lanon.Ident)
	assert.True(t, lanon.Asm)
	assert.Equal(t, "start.s", lanon.Source)

	assert.Equal(t, record{Line: 62, Kind: "MemoryEntry", Section: "extabindex", VirtAddr: 0x80006120, Size: 0x30, FileAddr: 0x6120}, byLine(62))
	debug := byLine(65)
	assert.True(t, debug.Debug)
	assert.Equal(t, ".debug_info", debug.Section) // legacy alias
	assert.Equal(t, uint32(0x10), debug.Size)
}
