package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatal()
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		injected *testing.T,
		mode Mode,
	) {
		if injected != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatal()
		}
	})
}
