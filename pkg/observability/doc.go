/*
Package observability turns model lifecycle events into metrics and logs.

Metrics exposes Prometheus collectors fed by model.Hooks; LogHooks writes the
same events to a structured logger. Both can be combined with model.MergeHooks:

	m, err := observability.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	def = def.With(model.WithHooks(model.MergeHooks(m.Hooks(), observability.LogHooks(logger))))
*/
package observability
