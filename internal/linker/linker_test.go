package linker

import (
	"testing"

	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/internal/testutil"
	"github.com/mwtools/mwmap/mapfile"
)

func TestTitle(t *testing.T) {
	_, next, err := Title(scan.New("Linker generated symbols:"))
	testutil.Nil(t, err)
	testutil.True(t, next.AtEnd())
}

func TestEntry(t *testing.T) {
	tests := []struct {
		line string
		want mapfile.LinkerEntry
	}{
		{"\x20          _db_stack_addr 804f0c00", mapfile.LinkerEntry{Name: "_db_stack_addr", VirtAddr: 0x804f0c00}},
		{"\x20                  _ctors 00000000", mapfile.LinkerEntry{Name: "_ctors", VirtAddr: 0}},
		{"_f_init_with_25_chars_xyz 80000000", mapfile.LinkerEntry{Name: "_f_init_with_25_chars_xyz", VirtAddr: 0x80000000}},
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

func TestEntryRejects(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind mapfile.ErrorKind
	}{
		{"too much padding", "                          _x 00000000", mapfile.ErrPadding},
		{"short address", "\x20          _db_stack_addr 804f0c0", mapfile.ErrNumber},
		{"bad name", "\x20                  @ctors 00000000", mapfile.ErrNoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Entry(scan.New(tt.line))
			testutil.NotNil(t, err)
			testutil.Equal(t, tt.kind, err.Kind)
		})
	}
}
