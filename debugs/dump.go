package debugs

import (
	"context"

	"github.com/reusee/calc/logs"
)

// Dump logs the starlark rendering of a value, -debug-ast uses it to show
// parsed programs.
type Dump func(ctx context.Context, what string, value any)

func (Module) Dump(
	logger logs.Logger,
) Dump {
	return func(ctx context.Context, what string, value any) {
		logger.InfoContext(ctx, "dump: "+what,
			"value", toStarlarkValue(value).String(),
		)
	}
}
