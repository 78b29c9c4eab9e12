package tree

import (
	"testing"

	"github.com/mwtools/mwmap/internal/scan"
	"github.com/mwtools/mwmap/internal/testutil"
	"github.com/mwtools/mwmap/mapfile"
)

func parseNode(t *testing.T, line string) mapfile.TreeNode {
	t.Helper()
	node, next, err := Node(scan.New(line))
	testutil.Nil(t, err, "line %q", line)
	testutil.True(t, next.AtEnd(), "unconsumed %q", next.Rest())
	return node
}

func TestTitle(t *testing.T) {
	title, next, err := Title(scan.New("Link map of __start"))
	testutil.Nil(t, err)
	testutil.Equal(t, "__start", title.Root)
	testutil.True(t, next.AtEnd())

	_, _, err = Title(scan.New("Link map of @1"))
	testutil.NotNil(t, err)
}

func TestObjectNode(t *testing.T) {
	node := parseNode(t, "  1] __start (func,weak) found in os.a __start.c")
	testutil.Equal(t, uint32(1), node.Depth)
	want := mapfile.ObjectRef{
		ID: mapfile.Named("__start"),
		Spec: mapfile.Specifier{
			Type:   mapfile.TypeFunction,
			Scope:  mapfile.ScopeWeak,
			Origin: mapfile.Origin{Object: "os.a", Source: "__start.c"},
		},
	}
	testutil.Equal(t, mapfile.NodeData(want), node.Data)
}

func TestNodeForms(t *testing.T) {
	tests := []struct {
		line  string
		depth uint32
		want  mapfile.NodeData
	}{
		{
			"   2] _stack_addr found as linker generated symbol",
			2,
			mapfile.LinkerRef{Name: "_stack_addr"},
		},
		{
			"    3] @stringBase0 (object,local) found in main.o ",
			3,
			mapfile.ObjectRef{
				ID:   mapfile.MangledIdent{Name: "@stringBase0"},
				Spec: mapfile.Specifier{Type: mapfile.TypeObject, Scope: mapfile.ScopeLocal, Origin: mapfile.Origin{Object: "main.o"}},
			},
		},
		{
			"    3] ...data.0 (section,local) found in main.o ",
			3,
			mapfile.ObjectRef{
				ID:   mapfile.SectionIdent{Name: mapfile.Section(mapfile.SectionData), HasIndex: true},
				Spec: mapfile.Specifier{Type: mapfile.TypeSection, Scope: mapfile.ScopeLocal, Origin: mapfile.Origin{Object: "main.o"}},
			},
		},
		{
			"  4] foo (notype,global) found in start.o start.s (asm)",
			4,
			mapfile.ObjectRef{
				ID:   mapfile.Named("foo"),
				Spec: mapfile.Specifier{Type: mapfile.TypeNone, Scope: mapfile.ScopeGlobal, Origin: mapfile.Origin{Object: "start.o", Source: "start.s", Asm: true}},
			},
		},
		{
			"                16] >>> UNREFERENCED DUPLICATE __dt__15CMemoryInStreamFv",
			16,
			mapfile.DuplicateIdent{ID: mapfile.Named("__dt__15CMemoryInStreamFv")},
		},
		{
			"                16] >>> (func,weak) found in Kyoto_CW1.a CMemoryInStream.cpp",
			16,
			mapfile.DuplicateSpec{Spec: mapfile.Specifier{
				Type:   mapfile.TypeFunction,
				Scope:  mapfile.ScopeWeak,
				Origin: mapfile.Origin{Object: "Kyoto_CW1.a", Source: "CMemoryInStream.cpp"},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			node := parseNode(t, tt.line)
			testutil.Equal(t, tt.depth, node.Depth)
			testutil.Equal(t, tt.want, node.Data)
		})
	}
}

func TestNodeRejects(t *testing.T) {
	tests := []string{
		"  1 __start (func,weak) found in os.a __start.c",
		"  x] __start (func,weak) found in os.a __start.c",
		"  1] __start (method,weak) found in os.a __start.c",
		"  1] __start (func,static) found in os.a __start.c",
		"  1] __start (func,weak) in os.a __start.c",
		"  4294967296] foo (func,weak) found in os.a __start.c",
	}
	for _, line := range tests {
		_, _, err := Node(scan.New(line))
		testutil.NotNil(t, err, "line %q", line)
	}
}

func TestSpecifierWordOrder(t *testing.T) {
	spec, _, err := Specifier(scan.New("(object,weak) found in a.o "))
	testutil.Nil(t, err)
	testutil.Equal(t, mapfile.TypeObject, spec.Type)
	testutil.Equal(t, mapfile.ScopeWeak, spec.Scope)
}
