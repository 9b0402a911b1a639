/*
Package observability provides Prometheus instrumentation for the property tree.

A Metrics value is shared by the registry and the document importer/exporter. All
methods are safe to call on a nil *Metrics, so instrumentation stays optional.

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	reg := registry.New(registry.WithMetrics(m))
	imp := document.NewImporter(document.WithMetrics(m))
*/
package observability
