package memory

import (
	"testing"

	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/internal/testutil"
	"github.com/mwtools/mwmap/mapfile"
)

func TestHeaders(t *testing.T) {
	_, next, err := Title(scan.New("Memory map:"))
	testutil.Nil(t, err)
	testutil.True(t, next.AtEnd())

	_, next, err = Columns0(scan.New("\x20                  Starting Size     File"))
	testutil.Nil(t, err)
	testutil.True(t, next.AtEnd())

	_, next, err = Columns1(scan.New("\x20                  address           Offset"))
	testutil.Nil(t, err)
	testutil.True(t, next.AtEnd())

	_, _, err = Columns0(scan.New("                  Starting Size     File"))
	testutil.NotNil(t, err, "18 spaces")
}

func TestEntry(t *testing.T) {
	tests := []struct {
		line string
		want mapfile.MemoryEntry
	}{
		{
			"\x20           .init  80003100 000023a8 000001c0",
			mapfile.MemoryEntry{
				Data:     mapfile.MainSection{Name: mapfile.Section(mapfile.SectionInit), VirtAddr: 0x80003100},
				Size:     0x23a8,
				FileAddr: 0x1c0,
			},
		},
		{
			"\x20          _extab  800054c0 000006a8 00002580",
			mapfile.MemoryEntry{
				Data:     mapfile.MainSection{Name: mapfile.Section(mapfile.SectionExTab), VirtAddr: 0x800054c0},
				Size:     0x6a8,
				FileAddr: 0x2580,
			},
		},
		{
			"\x20     _extabindex  80005b80 00000a1c 00002c40",
			mapfile.MemoryEntry{
				Data:     mapfile.MainSection{Name: mapfile.Section(mapfile.SectionExTabIndex), VirtAddr: 0x80005b80},
				Size:     0xa1c,
				FileAddr: 0x2c40,
			},
		},
		{
			"         .unknown  80006200 00000004 00006200",
			mapfile.MemoryEntry{
				Data:     mapfile.MainSection{Name: mapfile.UnknownSection("unknown"), VirtAddr: 0x80006200},
				Size:     4,
				FileAddr: 0x6200,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, next, err := Entry(scan.New(tt.line))
			testutil.Nil(t, err)
			testutil.True(t, next.AtEnd())
			testutil.Equal(t, tt.want, got)
		})
	}
}

func TestDebugEntry(t *testing.T) {
	tests := []struct {
		line string
		want mapfile.DebugSectionName
		size uint32
	}{
		{"\x20  .debug_srcinfo           000000 00000000", mapfile.DebugSrcInfo, 0},
		{"\x20  .debug_sfnames           000000 00000000", mapfile.DebugSFNames, 0},
		{"\x20          .debug           000000 00000000", mapfile.DebugMain, 0},
		{"\x20           .line           000000 00000000", mapfile.DebugLine, 0},
		{"\x20     .debug_line           000010 00006300", mapfile.DebugInfo, 0x10},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, next, err := DebugEntry(scan.New(tt.line))
			testutil.Nil(t, err)
			testutil.True(t, next.AtEnd())
			testutil.Equal(t, mapfile.MemoryData(mapfile.DebugSection{Name: tt.want}), got.Data)
			testutil.Equal(t, tt.size, got.Size)
		})
	}
}

// No row is accepted by both entry shapes.
func TestMainDebugDisjoint(t *testing.T) {
	lines := []string{
		"\x20           .init  80003100 000023a8 000001c0",
		"\x20          _extab  800054c0 000006a8 00002580",
		"\x20  .debug_srcinfo           000000 00000000",
		"\x20          .debug           000000 00000000",
		"\x20           .line           000000 00000000",
		"\x20          .debug  80003100 000023a8 000001c0",
		"\x20           .line  80003100 000023a8 000001c0",
		"\x20           .init           000000 00000000",
	}
	for _, line := range lines {
		_, mainNext, mainErr := Entry(scan.New(line))
		_, debugNext, debugErr := DebugEntry(scan.New(line))
		mainOK := mainErr == nil && mainNext.AtEnd()
		debugOK := debugErr == nil && debugNext.AtEnd()
		testutil.False(t, mainOK && debugOK, "line %q accepted by both", line)
	}
}

func TestPaddingTooLarge(t *testing.T) {
	_, _, err := Entry(scan.New("                   _ctors 00000000"))
	testutil.NotNil(t, err)
	testutil.Equal(t, mapfile.ErrPadding, err.Kind)
}
