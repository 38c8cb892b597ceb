package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/fieldset/pkg/model"
	"github.com/aretw0/fieldset/pkg/schema"
)

// LogHooks returns hooks that write model events to logger.
// Invalid records and field failures are logged at Warn, the rest at Info.
func LogHooks(logger *slog.Logger) model.Hooks {
	return model.Hooks{
		OnLoad: func(e *model.LoadEvent) {
			level := slog.LevelInfo
			if !e.Errors.Valid() {
				level = slog.LevelWarn
			}
			logger.Log(context.Background(), level, "record_load",
				"model", e.Model,
				"invalid_fields", e.Errors.Fields(),
			)
		},
		OnFieldError: func(e *model.FieldErrorEvent) {
			logger.Warn("field_error",
				"model", e.Model,
				"field", e.Field,
				"kind", schema.KindOf(e.Err),
				"error", e.Err,
			)
		},
		OnBatch: func(e *model.BatchEvent) {
			logger.Info("batch",
				"model", e.Model,
				"mode", e.Mode,
				"size", e.Size,
				"failed", e.Failed,
			)
		},
	}
}
