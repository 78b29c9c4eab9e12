package ident

import (
	"testing"

	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/internal/testutil"
	"github.com/mwtools/mwmap/mapfile"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		in   string
		want mapfile.Identifier
	}{
		{".Lfoo", mapfile.LocalLabelIdent{Name: "foo"}},
		{"@123", mapfile.RelativeIdent{Index: 123}},
		{"...data.0", mapfile.SectionIdent{Name: mapfile.Section(mapfile.SectionData), Index: 0, HasIndex: true}},
		{"...text.3", mapfile.SectionIdent{Name: mapfile.Section(mapfile.SectionText), Index: 3, HasIndex: true}},
		{"...sdata2.7", mapfile.SectionIdent{Name: mapfile.Section(mapfile.SectionSData2), Index: 7, HasIndex: true}},
		{".text", mapfile.SectionIdent{Name: mapfile.Section(mapfile.SectionText)}},
		{"_extab", mapfile.SectionIdent{Name: mapfile.Section(mapfile.SectionExTab)}},
		{".comment", mapfile.SectionIdent{Name: mapfile.UnknownSection("comment")}},
		{"__start", mapfile.Named("__start")},
		{"finfo$221", mapfile.NamedInstance("finfo", 221)},
		{"@stringBase0", mapfile.MangledIdent{Name: "@stringBase0"}},
		{"@stringBase12", mapfile.MangledIdent{Name: "@stringBase12"}},
		{"__ct__Q24Kyoto8CBuffer<int,4>Fv", mapfile.MangledIdent{Name: "__ct__Q24Kyoto8CBuffer<int,4>Fv"}},
		{"foo$bar", mapfile.MangledIdent{Name: "foo$bar"}},
		{"operator-", mapfile.MangledIdent{Name: "operator-"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseString(tt.in)
			testutil.NoError(t, err)
			testutil.Equal(t, tt.want, got)
		})
	}
}

func TestInstanceDisambiguation(t *testing.T) {
	plain, err := ParseString("finfo")
	testutil.NoError(t, err)
	withInstance, err := ParseString("finfo$221")
	testutil.NoError(t, err)

	p := plain.(mapfile.NamedIdent)
	w := withInstance.(mapfile.NamedIdent)
	testutil.Equal(t, p.Name, w.Name)
	testutil.False(t, p.HasInstance)
	testutil.True(t, w.HasInstance)
	testutil.Equal(t, uint32(221), w.Instance)
	testutil.Equal(t, "finfo$221", w.String())
	testutil.Equal(t, "finfo", p.String())
}

func TestParseStopsAtRun(t *testing.T) {
	id, next, err := Parse(scan.New("__fill_mem (entry of memset)"))
	testutil.Nil(t, err)
	testutil.Equal(t, mapfile.Identifier(mapfile.Named("__fill_mem")), id)
	testutil.Equal(t, " (entry of memset)", next.Rest())
}

func TestParseRejects(t *testing.T) {
	tests := []string{
		"",
		" foo",
		"(x)",
		"123abc",
		"$x",
		"-foo",
		"<int>",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseString(in)
			testutil.Error(t, err)
		})
	}
}

func TestStringBaseIsMangled(t *testing.T) {
	for _, in := range []string{"@stringBase0", "@stringBase255", "@stringBase256"} {
		got, err := ParseString(in)
		testutil.NoError(t, err)
		testutil.Equal(t, mapfile.Identifier(mapfile.MangledIdent{Name: in}), got, "input %q", in)
	}
}

func TestOverflowFallsThrough(t *testing.T) {
	got, err := ParseString("...data.256")
	testutil.NoError(t, err)
	testutil.Equal(t, mapfile.Identifier(mapfile.SectionIdent{Name: mapfile.UnknownSection("..data.256")}), got)
}

func TestTwoDotSectionSymbol(t *testing.T) {
	// No section name follows the "..", so the run falls through to an
	// unknown section named ".text.3".
	got, err := ParseString("..text.3")
	testutil.NoError(t, err)
	testutil.Equal(t, mapfile.Identifier(mapfile.SectionIdent{Name: mapfile.UnknownSection(".text.3")}), got)
}

func TestStrings(t *testing.T) {
	tests := []string{".Lfoo", "@123", "...data.0", ".text", "__start", "finfo$221", "@stringBase0", "__ct<int>"}
	for _, in := range tests {
		got, err := ParseString(in)
		testutil.NoError(t, err)
		testutil.Equal(t, in, got.String())
	}
}
