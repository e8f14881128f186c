package calclang

import (
	"math"
	"testing"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Starlark shares calc's grammar for pure arithmetic, so its evaluator
// serves as an independent oracle.
func TestStarlarkOracle(t *testing.T) {
	exprs := []string{
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"10 - 3 - 2",
		"100 / 5 / 2",
		"7 / 2",
		"1 + 2 * 3 - 4 / 5",
		"(1 + (2 + (3 + 4))) * 5",
		"8 / (1 + 3)",
		"2 * 3 * 4 * 5 - 6 * 7",
	}

	thread := &starlark.Thread{Name: "oracle"}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			result, err := Run("oracle", expr)
			if err != nil {
				t.Fatal(err)
			}

			value, err := starlark.EvalOptions(
				&syntax.FileOptions{},
				thread,
				"oracle",
				expr,
				nil,
			)
			if err != nil {
				t.Fatal(err)
			}
			expected, ok := starlark.AsFloat(value)
			if !ok {
				t.Fatalf("not a number: %v", value)
			}

			if math.Abs(result-expected) > 1e-9 {
				t.Fatalf("expected %v, got %v", expected, result)
			}
		})
	}
}
