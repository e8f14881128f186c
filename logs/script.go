package logs

import "context"

// Script names the source being evaluated; handlers attach it to every
// record emitted while it runs.
type Script string

type scriptKeyType struct{}

var ScriptKey scriptKeyType

func WithScript(ctx context.Context, script Script) context.Context {
	return context.WithValue(ctx, ScriptKey, script)
}
