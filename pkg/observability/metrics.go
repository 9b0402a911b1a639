package observability

import (
	"errors"

	"github.com/aretw0/proptree/pkg/props"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "proptree"

// Metrics groups the collectors exported by proptree.
type Metrics struct {
	ResolveFailures *prometheus.CounterVec
	Imports         *prometheus.CounterVec
	Exports         *prometheus.CounterVec
	Skipped         *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ResolveFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolve_failures_total",
				Help:      "Path resolutions that failed, by reason.",
			},
			[]string{"reason"},
		),
		Imports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "imports_total",
				Help:      "Document files imported into the tree, by result.",
			},
			[]string{"result"},
		),
		Exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Document files written from the tree, by result.",
			},
			[]string{"result"},
		),
		Skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "skipped_values_total",
				Help:      "Values dropped because their kind is unsupported, by operation.",
			},
			[]string{"op"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.ResolveFailures, m.Imports, m.Exports, m.Skipped)
	}
	return m
}

// ObserveResolve counts a failed resolution. Successful ones are ignored.
func (m *Metrics) ObserveResolve(err error) {
	if m == nil || err == nil {
		return
	}
	m.ResolveFailures.WithLabelValues(Reason(err)).Inc()
}

// ObserveImport counts one imported file.
func (m *Metrics) ObserveImport(err error) {
	if m == nil {
		return
	}
	m.Imports.WithLabelValues(result(err)).Inc()
}

// ObserveExport counts one exported file.
func (m *Metrics) ObserveExport(err error) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(result(err)).Inc()
}

// ObserveSkip counts a value dropped during op ("import" or "export").
func (m *Metrics) ObserveSkip(op string) {
	if m == nil {
		return
	}
	m.Skipped.WithLabelValues(op).Inc()
}

// Reason maps a resolution error to a short label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, props.ErrInvalidPath):
		return "invalid_path"
	case errors.Is(err, props.ErrNotFound):
		return "not_found"
	case errors.Is(err, props.ErrLeafConflict):
		return "leaf_conflict"
	default:
		return "other"
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
