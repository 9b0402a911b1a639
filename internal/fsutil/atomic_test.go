package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/proptree/internal/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "tree.json")

	require.NoError(t, fsutil.WriteFileAtomic(path, []byte(`{"a":"1"}`), 0644))
	require.NoError(t, fsutil.WriteFileAtomic(path, []byte(`{"a":"2"}`), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"2"}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomic_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := fsutil.WriteFileAtomic(filepath.Join(blocker, "tree.json"), []byte("{}"), 0644)
	assert.Error(t, err)
}
