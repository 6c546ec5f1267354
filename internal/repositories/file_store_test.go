package repository_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/maryanafarm/storefront/internal/models"
	repository "github.com/maryanafarm/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCartStore(t *testing.T) {
	ctx := t.Context()

	t.Run("Round-Trip Preserves Order And Fields", func(t *testing.T) {
		// Arrange
		store, err := repository.NewFileCartStore(t.TempDir())
		require.NoError(t, err)
		items := testItems()

		// Act
		require.NoError(t, store.Save(ctx, "abc", items))
		loaded, found, err := store.Load(ctx, "abc")

		// Assert
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, items, loaded)
	})

	t.Run("Absent Optional Fields Stay Absent On Disk", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		store, err := repository.NewFileCartStore(dir)
		require.NoError(t, err)
		items := []models.CartItem{{ID: "1", Name: "Картопля", Price: 20, Unit: models.UnitKilogram, Quantity: 3}}

		// Act
		require.NoError(t, store.Save(ctx, "abc", items))

		// Assert
		raw, err := os.ReadFile(filepath.Join(dir, "abc.json"))
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		require.Len(t, decoded, 1)
		assert.NotContains(t, decoded[0], "variety")
		assert.NotContains(t, decoded[0], "image")
	})

	t.Run("Missing Slot Is Absent", func(t *testing.T) {
		// Arrange
		store, err := repository.NewFileCartStore(t.TempDir())
		require.NoError(t, err)

		// Act
		loaded, found, err := store.Load(ctx, "never-saved")

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, loaded)
	})

	t.Run("Malformed File Is Absent", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		store, err := repository.NewFileCartStore(dir)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.json"), []byte("{broken"), 0o600))

		// Act
		loaded, found, err := store.Load(ctx, "abc")

		// Assert
		require.NoError(t, err, "Corrupt state must degrade to absent, not fail the caller")
		assert.False(t, found)
		assert.Nil(t, loaded)
	})

	t.Run("Save Overwrites The Slot", func(t *testing.T) {
		// Arrange
		store, err := repository.NewFileCartStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, "abc", testItems()))

		// Act
		require.NoError(t, store.Save(ctx, "abc", []models.CartItem{}))
		loaded, found, err := store.Load(ctx, "abc")

		// Assert
		require.NoError(t, err)
		require.True(t, found)
		assert.Empty(t, loaded)
	})

	t.Run("Cart Id Cannot Escape The Directory", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		store, err := repository.NewFileCartStore(dir)
		require.NoError(t, err)

		// Act
		require.NoError(t, store.Save(ctx, "../../escape", testItems()))

		// Assert
		_, statErr := os.Stat(filepath.Join(dir, "escape.json"))
		assert.NoError(t, statErr, "The slot file must land inside the store directory")
	})
}
