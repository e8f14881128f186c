package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVarInt")
	b := Var[string]("TestVarStr")
	GlobalExecutor.MustExecute([]string{
		"TestVarInt", "42",
		"TestVarStr", "bar",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "bar" {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarInt.",
	})
	if *a != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if *foo != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestUnknownCommand(t *testing.T) {
	err := GlobalExecutor.Execute([]string{"no-such-command"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestFloatArg(t *testing.T) {
	v := Var[float64]("TestFloatArg")
	GlobalExecutor.MustExecute([]string{
		"TestFloatArg", "3.25",
	})
	if *v != 3.25 {
		t.Fatal()
	}
}
