package fieldset_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fieldset"
	"github.com/aretw0/fieldset/internal/logging"
	"github.com/aretw0/fieldset/pkg/model"
)

const catalogPath = "pkg/catalog/testdata/models.yaml"

func TestOpen(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug)
	reg := prometheus.NewRegistry()

	var loads int
	cat, err := fieldset.Open(catalogPath,
		fieldset.WithLogger(logger),
		fieldset.WithMetrics(reg),
		fieldset.WithEventLog(),
		fieldset.WithHooks(model.Hooks{OnLoad: func(*model.LoadEvent) { loads++ }}),
	)
	require.NoError(t, err)

	def, err := cat.Get("dummy")
	require.NoError(t, err)

	_, report := def.New().Load(model.Record{})
	assert.Equal(t, []string{"id"}, report.Fields())
	assert.Equal(t, 1, loads)

	t.Run("Logs", func(t *testing.T) {
		out := buf.String()
		assert.Contains(t, out, "msg=\"record loaded\"")
		assert.Contains(t, out, "msg=field_error")
		assert.Contains(t, out, "source=models.yaml")
	})

	t.Run("Metrics", func(t *testing.T) {
		expected := `
# HELP fieldset_records_loaded_total Total number of records loaded, by outcome
# TYPE fieldset_records_loaded_total counter
fieldset_records_loaded_total{model="dummy",outcome="invalid"} 1
`
		err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "fieldset_records_loaded_total")
		assert.NoError(t, err)
	})
}

func TestOpen_Errors(t *testing.T) {
	_, err := fieldset.Open("testdata/missing.yaml")
	assert.Error(t, err)

	reg := prometheus.NewRegistry()
	_, err = fieldset.Open(catalogPath, fieldset.WithMetrics(reg))
	require.NoError(t, err)
	_, err = fieldset.Open(catalogPath, fieldset.WithMetrics(reg))
	assert.Error(t, err, "metrics registered twice on the same registry")
}

func TestOpenAPI(t *testing.T) {
	def, err := fieldset.OpenAPI(context.Background(), "pkg/adapters/openapi/testdata/users.yaml", "User")
	require.NoError(t, err)
	assert.Equal(t, "User", def.Name())
	assert.Equal(t, 5, def.Len())

	_, err = fieldset.OpenAPI(context.Background(), "missing.yaml", "User")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(fieldset.Version))
}
