package document_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/aretw0/proptree/internal/testutils"
	"github.com/aretw0/proptree/pkg/document"
	"github.com/aretw0/proptree/pkg/observability"
	"github.com/aretw0/proptree/pkg/props"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var writeFile = testutils.WriteFile

func TestLoad_IncludeIsOverriddenBySiblings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "B.doc", `{"x": 0, "y": 2}`)
	a := writeFile(t, dir, "A.doc", `{"include": "B.doc", "x": 1}`)

	root := props.NewNode()
	require.NoError(t, document.NewImporter().Load(a, root))

	x, _ := root.String("x")
	y, _ := root.String("y")
	assert.Equal(t, "1", x)
	assert.Equal(t, "2", y)
	assert.Equal(t, []string{"x", "y"}, root.Children())
}

func TestLoad_IncludeRelativeToIncludingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "conf/common/imu.json", `{"rate": 100}`)
	writeFile(t, dir, "conf/sensors.json", `{"imu": {"include": "common/imu.json", "axis": "z"}}`)
	abs := writeFile(t, dir, "other/abs.json", `{"id": "abs"}`)
	main := writeFile(t, dir, "main.json", `{
		"include": "`+filepath.ToSlash(abs)+`",
		"sensors": {"include": "conf/sensors.json"}
	}`)

	root := props.NewNode()
	require.NoError(t, document.NewImporter().Load(main, root))

	imu := root.Child("sensors/imu", false)
	require.NotNil(t, imu)
	rate, _ := imu.String("rate")
	axis, _ := imu.String("axis")
	assert.Equal(t, "100", rate)
	assert.Equal(t, "z", axis)

	id, _ := root.String("id")
	assert.Equal(t, "abs", id)
}

func TestLoad_StripsCommentLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.json", `// header comment
{
    // first
    // second
    "url": "http://example.com/x",
	"n": 3
}
`)

	root := props.NewNode()
	require.NoError(t, document.NewImporter().Load(path, root))

	url, _ := root.String("url")
	assert.Equal(t, "http://example.com/x", url)
	n, _ := root.Scalar("n")
	assert.Equal(t, json.Number("3"), n)
}

func TestLoad_MergesIntoExistingTree(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.json", `{
		"imu": {"rate": 200},
		"mode": {"auto": true},
		"gps": [{"lat": 1}, "spare", 7]
	}`)

	root := props.NewNode()
	imu := root.Child("imu", true)
	require.NoError(t, imu.Set("axis", "z"))
	require.NoError(t, root.Set("mode", "manual"))
	root.Child("gps[4]", true)

	require.NoError(t, document.NewImporter().Load(path, root))

	assert.Same(t, imu, root.Child("imu", false), "existing branches are reused")
	assert.Equal(t, []string{"axis", "rate"}, imu.Children())

	auto, ok := root.Child("mode", false).Scalar("auto")
	require.True(t, ok, "scalar replaced by branch")
	assert.Equal(t, true, auto)

	assert.Equal(t, 3, root.Len("gps"), "lists are replaced, not merged")
	lat, _ := root.Child("gps[0]", false).String("lat")
	assert.Equal(t, "1", lat)

	v, _ := root.Get("gps")
	items := v.(*props.List).Items()
	assert.Equal(t, "spare", items[1].(props.Scalar).String())
	assert.Equal(t, "7", items[2].(props.Scalar).String())
}

func TestLoad_ParseErrorKeepsPriorState(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `{"kept": "yes"}`)
	bad := writeFile(t, dir, "bad.json", `{"include": "good.json", "oops": }`)

	root := props.NewNode()
	require.NoError(t, root.Set("before", 1))

	err := document.NewImporter().Load(bad, root)
	assert.ErrorIs(t, err, document.ErrImportParse)
	assert.Equal(t, []string{"before"}, root.Children())
}

func TestLoad_BrokenIncludeDoesNotStopSiblings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{`)
	main := writeFile(t, dir, "main.json", `{"include": "broken.json", "a": "1"}`)

	root := props.NewNode()
	err := document.NewImporter().Load(main, root)

	assert.ErrorIs(t, err, document.ErrImportParse)
	a, _ := root.String("a")
	assert.Equal(t, "1", a)
}

func TestLoad_MissingFile(t *testing.T) {
	err := document.NewImporter().Load(filepath.Join(t.TempDir(), "none.json"), props.NewNode())
	assert.ErrorIs(t, err, document.ErrImportParse)
}

func TestLoad_IncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"include": "b.json", "a": 1}`)
	writeFile(t, dir, "b.json", `{"include": "a.json", "b": 2}`)

	root := props.NewNode()
	err := document.NewImporter().Load(filepath.Join(dir, "a.json"), root)

	assert.ErrorIs(t, err, document.ErrIncludeCycle)
	assert.Equal(t, []string{"a", "b"}, root.Children())
}

func TestApply_SkipsUnsupportedValues(t *testing.T) {
	m := observability.NewMetrics(nil)
	imp := document.NewImporter(document.WithMetrics(m))

	root := props.NewNode()
	err := imp.Apply(root, map[string]any{
		"null":    nil,
		"include": 42,
		"nested":  []any{[]any{"x"}, nil, "ok"},
		"fine":    "yes",
	}, ".")

	assert.ErrorIs(t, err, props.ErrUnsupportedKind)
	assert.Equal(t, []string{"fine", "nested[0]"}, root.Children())
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Skipped.WithLabelValues("import")))
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.json", `{"rate": 10, "port": "/dev/ttyS0"}`)
	path := writeFile(t, dir, "rover.yaml", `
include: base.json
rate: 50
gps:
  - lat: 45.5
    fix: true
  - spare
1: numeric key
`)

	root := props.NewNode()
	require.NoError(t, document.NewImporter().Load(path, root))

	rate, _ := root.Scalar("rate")
	assert.Equal(t, 50, rate)
	port, _ := root.String("port")
	assert.Equal(t, "/dev/ttyS0", port)
	fix, _ := root.Child("gps[0]", false).Scalar("fix")
	assert.Equal(t, true, fix)
	one, _ := root.String("1")
	assert.Equal(t, "numeric key", one)
}

func TestLoad_YAMLKeepsSlashLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.yaml", "note: |\n  // not a comment\n  second\n")

	root := props.NewNode()
	require.NoError(t, document.NewImporter().Load(path, root))

	note, ok := root.String("note")
	require.True(t, ok)
	assert.Equal(t, "// not a comment\nsecond\n", note)
}
