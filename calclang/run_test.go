package calclang

import (
	"strings"
	"testing"
)

func TestRunIdempotent(t *testing.T) {
	// no hidden state leaks between runs
	const src = "a = 1; a = a + 1; a * 3;"
	first, err := Run("test", src)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run("test", src)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("got %v and %v", first, second)
	}
	if first != 6 {
		t.Fatalf("got %v", first)
	}
}

func TestRunErrorRendering(t *testing.T) {
	tests := []struct {
		input    string
		contains []string
	}{
		{
			input:    "2 $ 3;",
			contains: []string{"unexpected character", "'$'", "test:1:3", "^"},
		},
		{
			input:    "2 + ;",
			contains: []string{"expected number", "';'", "test:1:5"},
		},
		{
			input:    "b + 1;",
			contains: []string{"undefined variable: b", "test:1:1"},
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Run("test", test.input)
			if err == nil {
				t.Fatal("expected error")
			}
			msg := err.Error()
			for _, want := range test.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q does not contain %q", msg, want)
				}
			}
		})
	}
}
