package logs

import (
	"context"
	"log/slog"
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(ScriptKey); v != nil {
		record.Add("calc.script", v.(Script))
	}
	return h.Handler.Handle(ctx, record)
}
