package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/calc/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Config is the evaluated calc configuration, flags still take precedence
// over it.
type Config struct {
	Prompt   string
	MaxDepth int
	Trace    bool
}

const Schema = `
prompt?: string
max_depth?: int & >0
trace?: bool
`

type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	var paths ConfigPaths
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "calc", "config.cue"))
	}
	return paths
}

func (Module) Loader(paths ConfigPaths) Loader {
	return NewLoader(paths, Schema)
}

func (Module) Config(loader Loader) Config {
	return Config{
		Prompt:   vars.FirstNonZero(First[string](loader, "prompt"), "> "),
		MaxDepth: First[int](loader, "max_depth"),
		Trace:    First[bool](loader, "trace"),
	}
}
