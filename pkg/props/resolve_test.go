package props_test

import (
	"testing"

	"github.com/aretw0/proptree/pkg/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CreateIsIdempotent(t *testing.T) {
	root := props.NewNode()

	first, err := root.Resolve("sensors/imu/accel", true)
	require.NoError(t, err)
	second, err := root.Resolve("sensors/imu/accel", true)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"sensors"}, root.Children())
}

func TestResolve_EmptyPathIsSelf(t *testing.T) {
	root := props.NewNode()
	got, err := root.Resolve("", false)
	require.NoError(t, err)
	assert.Same(t, root, got)
}

func TestResolve_NotFoundWithoutCreate(t *testing.T) {
	root := props.NewNode()

	_, err := root.Resolve("a/b", false)
	assert.ErrorIs(t, err, props.ErrNotFound)
	assert.Nil(t, root.Child("a/b", false))
	assert.Empty(t, root.Children())
}

func TestResolve_EnumeratedCreatesGaps(t *testing.T) {
	root := props.NewNode()

	gps2, err := root.Resolve("sensors/gps[2]", true)
	require.NoError(t, err)

	sensors := root.Child("sensors", false)
	require.NotNil(t, sensors)
	assert.Equal(t, []string{"gps[0]", "gps[1]", "gps[2]"}, sensors.Children())
	assert.Equal(t, 3, root.Len("sensors/gps"))
	assert.Same(t, gps2, root.Child("sensors/gps[2]", false))

	for i := range 3 {
		v, _ := sensors.Get("gps")
		elem := v.(*props.List).At(i)
		require.IsType(t, &props.Node{}, elem)
		assert.Empty(t, elem.(*props.Node).Children())
	}
}

func TestResolve_LaterExtensionKeepsEarlierElements(t *testing.T) {
	root := props.NewNode()

	gps0 := root.Child("gps[0]", true)
	require.NoError(t, gps0.Set("lat", 45.5))
	gps1 := root.Child("gps[1]", true)

	gps4 := root.Child("gps[4]", true)
	require.NotNil(t, gps4)

	assert.Same(t, gps0, root.Child("gps[0]", false))
	assert.Same(t, gps1, root.Child("gps[1]", false))
	lat, ok := gps0.Scalar("lat")
	require.True(t, ok)
	assert.Equal(t, 45.5, lat)
	assert.Equal(t, 5, root.Len("gps"))
}

func TestResolve_IndexOutOfRangeWithoutCreate(t *testing.T) {
	root := props.NewNode()
	root.Child("gps[0]", true)

	_, err := root.Resolve("gps[3]", false)
	assert.ErrorIs(t, err, props.ErrNotFound)
	assert.Equal(t, 1, root.Len("gps"))
}

func TestResolve_InvalidPathsDoNotMutate(t *testing.T) {
	paths := []string{
		"/abs/path",
		"a-b",
		"a/b-c/d",
		"a//b",
		"a/",
		"a.b",
		"a[x]",
		"a[1]b",
		"a[-1]",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			root := props.NewNode()
			_, err := root.Resolve(p, true)
			assert.ErrorIs(t, err, props.ErrInvalidPath)
			assert.Empty(t, root.Children())
		})
	}
}

func TestResolve_LeafConflict(t *testing.T) {
	root := props.NewNode()
	cfg := root.Child("config", true)
	require.NoError(t, cfg.Set("rate", 50))

	_, err := root.Resolve("config/rate/hz", true)
	assert.ErrorIs(t, err, props.ErrLeafConflict)

	var pathErr *props.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "rate", pathErr.Segment)

	assert.Equal(t, []string{"rate"}, cfg.Children())
	rate, _ := cfg.Scalar("rate")
	assert.Equal(t, 50, rate)
}

func TestResolve_LeafConflictInsideList(t *testing.T) {
	root := props.NewNode()
	l := root.ReplaceList("ids")
	s, err := props.NewScalar("a")
	require.NoError(t, err)
	l.AppendScalar(s)

	_, err = root.Resolve("ids[0]", true)
	assert.ErrorIs(t, err, props.ErrLeafConflict)
	assert.Equal(t, 1, l.Len())
}

func TestResolve_ListWithoutIndexIsInvalid(t *testing.T) {
	root := props.NewNode()
	root.Child("gps[1]", true)

	_, err := root.Resolve("gps", true)
	assert.ErrorIs(t, err, props.ErrInvalidPath)
	_, err = root.Resolve("gps/lat", true)
	assert.ErrorIs(t, err, props.ErrInvalidPath)
}

func TestResolve_IndexOnBranchIsInvalid(t *testing.T) {
	root := props.NewNode()
	root.Child("imu", true)

	_, err := root.Resolve("imu[0]", true)
	assert.ErrorIs(t, err, props.ErrInvalidPath)
	assert.Equal(t, []string{"imu"}, root.Children())
}

func TestParsePath(t *testing.T) {
	steps, err := props.ParsePath("a/b[3]/c")
	require.NoError(t, err)
	assert.Equal(t, []props.Step{
		{Name: "a"},
		{Name: "b", Index: 3, Indexed: true},
		{Name: "c"},
	}, steps)
	assert.Equal(t, "b[3]", steps[1].String())
}

func TestResolve_HugeIndexIsInvalid(t *testing.T) {
	for _, p := range []string{"gps[9223372036854775807]", "gps[1048576]", "gps[99999999999999999999]"} {
		t.Run(p, func(t *testing.T) {
			root := props.NewNode()
			_, err := root.Resolve(p, true)
			assert.ErrorIs(t, err, props.ErrInvalidPath)
			assert.Empty(t, root.Children())
		})
	}

	root := props.NewNode()
	_, err := root.Resolve("gps[1048575]", false)
	assert.ErrorIs(t, err, props.ErrNotFound)
}

func TestList_ExtendIgnoresHugeIndex(t *testing.T) {
	l := props.NewList()
	l.Extend(props.MaxIndex)
	assert.Equal(t, 0, l.Len())
}
