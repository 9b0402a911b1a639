package registry_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/proptree/internal/logging"
	"github.com/aretw0/proptree/pkg/observability"
	"github.com/aretw0/proptree/pkg/props"
	"github.com/aretw0/proptree/pkg/registry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNode_RootAndCreate(t *testing.T) {
	reg := registry.New()

	assert.Same(t, reg.Root(), reg.GetNode("/", false))
	assert.Nil(t, reg.GetNode("/sensors/imu", false))

	imu := reg.GetNode("/sensors/imu", true)
	require.NotNil(t, imu)
	assert.Same(t, imu, reg.GetNode("/sensors/imu", false))
	assert.Same(t, imu, reg.Root().Child("sensors/imu", false))
}

func TestResolve_RelativePathIsInvalid(t *testing.T) {
	reg := registry.New()

	_, err := reg.Resolve("sensors", true)
	assert.ErrorIs(t, err, props.ErrInvalidPath)
	assert.Nil(t, reg.GetNode("sensors", true))
	assert.Empty(t, reg.Root().Children())
}

func TestSetGet(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.Set("/top", "x"))
	require.NoError(t, reg.Set("/sensors/gps[1]/lat", 45.5))

	v, ok := reg.Get("/top")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = reg.Get("/sensors/gps[1]/lat")
	require.True(t, ok)
	assert.Equal(t, 45.5, v)
	assert.Equal(t, 2, reg.Len("/sensors/gps"))

	_, ok = reg.Get("/sensors/gps[0]/lat")
	assert.False(t, ok)
	_, ok = reg.Get("/missing/value")
	assert.False(t, ok)
	assert.Nil(t, reg.GetNode("/missing", false))
}

func TestSet_RejectsIndexedLeaf(t *testing.T) {
	reg := registry.New()

	assert.ErrorIs(t, reg.Set("/tags[0]", "x"), props.ErrInvalidPath)
	assert.ErrorIs(t, reg.Set("/", "x"), props.ErrInvalidPath)
	assert.ErrorIs(t, reg.Set("relative", "x"), props.ErrInvalidPath)
	assert.Empty(t, reg.Root().Children())
}

func TestDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	m := observability.NewMetrics(nil)
	reg := registry.New(
		registry.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)),
		registry.WithMetrics(m),
	)
	require.NoError(t, reg.Set("/config/rate", 50))

	assert.Nil(t, reg.GetNode("/config/rate/hz", true))
	assert.Contains(t, buf.String(), "path rejected")
	assert.Contains(t, buf.String(), "/config/rate/hz")

	buf.Reset()
	assert.Nil(t, reg.GetNode("/absent", false))
	assert.Empty(t, buf.String())

	assert.Nil(t, reg.GetNode("/a-b", true))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolveFailures.WithLabelValues("leaf_conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolveFailures.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolveFailures.WithLabelValues("invalid_path")))
}

func TestWithRoot(t *testing.T) {
	root := props.NewNode()
	require.NoError(t, root.Set("k", "v"))

	v, ok := registry.New(registry.WithRoot(root)).Get("/k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestDefault_IsStable(t *testing.T) {
	a := registry.Default()
	assert.Same(t, a, registry.Default())
	assert.Same(t, a.Root(), registry.Default().Root())
}
