package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/proptree/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentStoreContract runs a suite of tests to verify that a DocumentStore
// implementation adheres to the interface contract.
func RunDocumentStoreContract(t *testing.T, store ports.DocumentStore) {
	t.Helper()

	ctx := context.Background()
	name := "contract_" + time.Now().Format("20060102150405")

	doc := map[string]any{
		"name": "rover",
		"imu": map[string]any{
			"rate": "100",
		},
		"gps": []any{
			map[string]any{"lat": "45.5"},
			"spare",
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, doc), "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "rover", loaded["name"])

		imu, ok := loaded["imu"].(map[string]any)
		require.True(t, ok, "nested map should survive persistence, got %T", loaded["imu"])
		assert.Equal(t, "100", imu["rate"])

		gps, ok := loaded["gps"].([]any)
		require.True(t, ok, "list should survive persistence, got %T", loaded["gps"])
		require.Len(t, gps, 2)
		assert.Equal(t, "spare", gps[1])
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, map[string]any{"name": "lander"}))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "lander", loaded["name"])
		assert.NotContains(t, loaded, "imu")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing_"+name)
		assert.ErrorIs(t, err, ports.ErrDocumentNotFound)
	})

	t.Run("List", func(t *testing.T) {
		other := name + "_2"
		require.NoError(t, store.Save(ctx, other, doc))
		defer func() {
			_ = store.Delete(ctx, other)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name)
		assert.Contains(t, names, other)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, ports.ErrDocumentNotFound, "Load after Delete should return ErrDocumentNotFound")
	})
}
