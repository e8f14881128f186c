package configs

import (
	"errors"
	"testing"
)

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, Schema)

	var prompt string
	if err := loader.AssignFirst("prompt", &prompt); err != nil {
		t.Fatal(err)
	}
	if prompt != "calc> " {
		t.Fatalf("got %q", prompt)
	}

	var depth int
	if err := loader.AssignFirst("max_depth", &depth); err != nil {
		t.Fatal(err)
	}
	if depth != 32 {
		t.Fatalf("got %d", depth)
	}

	var trace bool
	err := loader.AssignFirst("trace", &trace)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderFirstFileWins(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, Schema)

	if prompt := First[string](loader, "prompt"); prompt != "calc> " {
		t.Fatalf("got %q", prompt)
	}
	// only present in the second file
	if trace := First[bool](loader, "trace"); trace != true {
		t.Fatal()
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, Schema)

	var prompts []string
	for value, err := range loader.IterCueValues("prompt") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		prompts = append(prompts, s)
	}
	if len(prompts) != 2 || prompts[0] != "calc> " || prompts[1] != "% " {
		t.Fatalf("got %v", prompts)
	}
}

func TestLoaderMissingFileSkipped(t *testing.T) {
	loader := NewLoader([]string{
		"no-such-file.cue",
		"test.cue",
	}, Schema)

	if prompt := First[string](loader, "prompt"); prompt != "calc> " {
		t.Fatalf("got %q", prompt)
	}
}

func TestLoaderSchemaViolation(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, Schema)

	var v int
	err := loader.AssignFirst("max_depth", &v)
	if err == nil {
		t.Fatal("expected schema error")
	}
}
