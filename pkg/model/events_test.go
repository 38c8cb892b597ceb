package model_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fieldset/internal/logging"
	"github.com/aretw0/fieldset/pkg/model"
	"github.com/aretw0/fieldset/pkg/schema"
)

func TestHooks(t *testing.T) {
	var (
		loads   []*model.LoadEvent
		fields  []*model.FieldErrorEvent
		batches []*model.BatchEvent
	)
	hooks := model.Hooks{
		OnLoad:       func(e *model.LoadEvent) { loads = append(loads, e) },
		OnFieldError: func(e *model.FieldErrorEvent) { fields = append(fields, e) },
		OnBatch:      func(e *model.BatchEvent) { batches = append(batches, e) },
	}

	base := dummy(t)
	def := base.With(model.WithHooks(hooks))

	t.Run("Load", func(t *testing.T) {
		def.New().Load(model.Record{"id": "exceeds-ten-chars"})

		require.Len(t, loads, 1)
		assert.Equal(t, model.EventLoad, loads[0].Type)
		assert.Equal(t, "dummy", loads[0].Model)
		assert.Len(t, loads[0].Errors, 1)

		require.Len(t, fields, 1)
		assert.Equal(t, "id", fields[0].Field)
		assert.ErrorIs(t, fields[0].Err, schema.ErrMaxLength)
		assert.Contains(t, fields[0].Err.Error(), `field "id"`)
	})

	t.Run("Dump Is Silent", func(t *testing.T) {
		before := len(loads)
		def.New().Dump(model.Record{"id": 1})
		assert.Len(t, loads, before)
	})

	t.Run("Batch", func(t *testing.T) {
		list := def.NewList()
		list.Loads([]model.Record{{"id": "ok"}, {}, {"id": "fine"}})
		list.Dumps([]model.Record{{}})

		require.Len(t, batches, 2)
		assert.Equal(t, "load", batches[0].Mode)
		assert.Equal(t, 3, batches[0].Size)
		assert.Equal(t, 1, batches[0].Failed)
		assert.Equal(t, "dump", batches[1].Mode)
		assert.Equal(t, 1, batches[1].Size)
	})

	t.Run("With Leaves The Receiver Unchanged", func(t *testing.T) {
		before := len(loads)
		base.New().Load(model.Record{})
		assert.Len(t, loads, before)
	})
}

func TestMergeHooks(t *testing.T) {
	var order []string
	merged := model.MergeHooks(
		model.Hooks{OnLoad: func(*model.LoadEvent) { order = append(order, "first") }},
		model.Hooks{},
		model.Hooks{OnLoad: func(*model.LoadEvent) { order = append(order, "second") }},
	)

	require.NotNil(t, merged.OnLoad)
	assert.Nil(t, merged.OnBatch)
	merged.OnLoad(&model.LoadEvent{})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	def := dummy(t).With(model.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)))

	def.New().Load(model.Record{})
	assert.Contains(t, buf.String(), "record loaded")
	assert.Contains(t, buf.String(), "failed=1")

	// A nil logger keeps the current one.
	assert.NotPanics(t, func() {
		dummy(t).With(model.WithLogger(nil)).New().Load(model.Record{})
	})
}
