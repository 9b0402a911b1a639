package observability_test

import (
	"errors"
	"testing"

	"github.com/aretw0/proptree/pkg/observability"
	"github.com/aretw0/proptree/pkg/props"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())

	m.ObserveResolve(nil)
	m.ObserveResolve(&props.PathError{Path: "a", Err: props.ErrLeafConflict})
	m.ObserveResolve(props.ErrInvalidPath)
	m.ObserveImport(nil)
	m.ObserveImport(errors.New("bad json"))
	m.ObserveExport(nil)
	m.ObserveSkip("import")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolveFailures.WithLabelValues("leaf_conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolveFailures.WithLabelValues("invalid_path")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Imports.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Imports.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Exports.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Skipped.WithLabelValues("import")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.ObserveResolve(props.ErrNotFound)
		m.ObserveImport(nil)
		m.ObserveExport(nil)
		m.ObserveSkip("export")
	})
}

func TestReason(t *testing.T) {
	assert.Equal(t, "not_found", observability.Reason(props.ErrNotFound))
	assert.Equal(t, "other", observability.Reason(errors.New("x")))
}
