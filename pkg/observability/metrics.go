package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/fieldset/pkg/model"
	"github.com/aretw0/fieldset/pkg/schema"
)

// Outcome label values of the loaded-records counter.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Metrics holds the Prometheus collectors for model operations.
type Metrics struct {
	records     *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
	batchSize   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldset_records_loaded_total",
				Help: "Total number of records loaded, by outcome",
			},
			[]string{"model", "outcome"},
		),
		fieldErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldset_field_errors_total",
				Help: "Total number of field validation failures",
			},
			[]string{"model", "field", "kind"},
		),
		batchSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fieldset_batch_size",
				Help:    "Number of records per batch operation",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"model"},
		),
	}

	for _, c := range []prometheus.Collector{m.records, m.fieldErrors, m.batchSize} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Hooks returns model hooks that record into m.
func (m *Metrics) Hooks() model.Hooks {
	return model.Hooks{
		OnLoad: func(e *model.LoadEvent) {
			outcome := OutcomeValid
			if !e.Errors.Valid() {
				outcome = OutcomeInvalid
			}
			m.records.WithLabelValues(e.Model, outcome).Inc()
		},
		OnFieldError: func(e *model.FieldErrorEvent) {
			kind := string(schema.KindOf(e.Err))
			if kind == "" {
				kind = "unknown"
			}
			m.fieldErrors.WithLabelValues(e.Model, e.Field, kind).Inc()
		},
		OnBatch: func(e *model.BatchEvent) {
			m.batchSize.WithLabelValues(e.Model).Observe(float64(e.Size))
		},
	}
}
