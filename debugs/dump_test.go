package debugs

import (
	"strings"
	"testing"

	"github.com/reusee/calc/calclang"
	"github.com/reusee/calc/logs"
	"github.com/reusee/dscope"
)

type testModule struct {
	dscope.Module
	Debugs Module
	Logs   logs.Module
}

func TestDump(t *testing.T) {
	dscope.New(new(testModule)).Call(func(
		dump Dump,
	) {
		dump(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestDumpProgram(t *testing.T) {
	prog, err := calclang.Parse(calclang.NewSource("test", "x = 1 + 2;"))
	if err != nil {
		t.Fatal(err)
	}
	dscope.New(new(testModule)).Call(func(
		dump Dump,
	) {
		dump(t.Context(), "ast", prog)
	})
}

func TestToStarlarkValue(t *testing.T) {
	prog, err := calclang.Parse(calclang.NewSource("test", "a = 2 * 3"))
	if err != nil {
		t.Fatal(err)
	}
	rendered := toStarlarkValue(prog).String()
	for _, want := range []string{"Program", "Assign", "Binary", "NumberLit", `"a"`} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendering %q does not contain %q", rendered, want)
		}
	}
}
