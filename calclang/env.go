package calclang

import (
	"maps"
	"slices"
)

// Env maps variable names to their current values. One Env serves one
// evaluation run; it must not be shared between concurrent evaluations.
type Env struct {
	vars map[string]float64
}

func NewEnv() *Env {
	return &Env{
		vars: make(map[string]float64),
	}
}

func (e *Env) Get(name string) (float64, bool) {
	value, ok := e.vars[name]
	return value, ok
}

func (e *Env) Set(name string, value float64) {
	e.vars[name] = value
}

func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}
