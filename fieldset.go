package fieldset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/fieldset/pkg/adapters/openapi"
	"github.com/aretw0/fieldset/pkg/catalog"
	"github.com/aretw0/fieldset/pkg/model"
	"github.com/aretw0/fieldset/pkg/observability"
)

type config struct {
	logger    *slog.Logger
	hooks     []model.Hooks
	registry  prometheus.Registerer
	logEvents bool
}

// Option defines a functional option for Open and OpenAPI.
type Option func(*config)

// WithLogger sets the structured logger handed to every definition.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks. Repeated calls accumulate.
func WithHooks(hooks model.Hooks) Option {
	return func(c *config) {
		c.hooks = append(c.hooks, hooks)
	}
}

// WithMetrics records model metrics into reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// WithEventLog writes every load and batch event to the logger set by
// WithLogger.
func WithEventLog() Option {
	return func(c *config) {
		c.logEvents = true
	}
}

// Open reads a catalog file (YAML or JSON by extension) and returns its
// definitions configured by opts.
func Open(path string, opts ...Option) (*catalog.Catalog, error) {
	modelOpts, err := resolve(path, opts)
	if err != nil {
		return nil, err
	}
	return catalog.LoadFile(path, modelOpts...)
}

// OpenAPI reads an OpenAPI 3 document and returns the definition of the
// named component schema.
func OpenAPI(ctx context.Context, path, component string, opts ...Option) (*model.Definition, error) {
	modelOpts, err := resolve(path, opts)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return openapi.FromDocument(ctx, data, component, modelOpts...)
}

func resolve(path string, opts []Option) ([]model.Option, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	var out []model.Option
	if c.logger != nil {
		// Enrich logger with the source file name
		c.logger = c.logger.With("source", filepath.Base(path))
		out = append(out, model.WithLogger(c.logger))
		if c.logEvents {
			c.hooks = append(c.hooks, observability.LogHooks(c.logger))
		}
	}

	if c.registry != nil {
		m, err := observability.NewMetrics(c.registry)
		if err != nil {
			return nil, err
		}
		c.hooks = append(c.hooks, m.Hooks())
	}

	if len(c.hooks) > 0 {
		out = append(out, model.WithHooks(model.MergeHooks(c.hooks...)))
	}
	return out, nil
}
