package logs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestHandlerScript(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		ctx := WithScript(t.Context(), "test.calc")
		logger.InfoContext(ctx, "evaluating")
	})
}
