package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maryanafarm/storefront/internal/models"
	repository "github.com/maryanafarm/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewMemoryProductRepo(t *testing.T) {
	// Act
	repo, err := repository.NewMemoryProductRepo()

	// Assert
	require.NoError(t, err, "The embedded seed must always load")

	products, err := repo.ListAll(t.Context())
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	seen := make(map[string]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "Product ids must be unique: %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Type.Valid())
	}
}

func TestNewMemoryProductRepoFromFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		path := writeSeedFile(t, `[
			{"id": "1", "name": "Помідори", "type": "vegetable", "price": 45, "unit": "kg", "stock": 15, "images": []},
			{"id": "2", "name": "Огірки", "type": "vegetable", "price": 35, "unit": "kg", "stock": 20, "images": []}
		]`)

		// Act
		repo, err := repository.NewMemoryProductRepoFromFile(path)

		// Assert
		require.NoError(t, err)

		products, err := repo.ListAll(t.Context())
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Помідори", products[0].Name)
	})

	t.Run("Failure - Missing File", func(t *testing.T) {
		// Act
		repo, err := repository.NewMemoryProductRepoFromFile(filepath.Join(t.TempDir(), "nope.json"))

		// Assert
		require.Error(t, err)
		assert.Nil(t, repo)
	})

	t.Run("Failure - Duplicate Id", func(t *testing.T) {
		// Arrange
		path := writeSeedFile(t, `[
			{"id": "1", "name": "A", "type": "fruit", "price": 1, "unit": "kg", "images": []},
			{"id": "1", "name": "B", "type": "fruit", "price": 2, "unit": "kg", "images": []}
		]`)

		// Act
		_, err := repository.NewMemoryProductRepoFromFile(path)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate product id")
	})

	t.Run("Failure - Unknown Type", func(t *testing.T) {
		// Arrange
		path := writeSeedFile(t, `[{"id": "1", "name": "A", "type": "mineral", "price": 1, "unit": "kg", "images": []}]`)

		// Act
		_, err := repository.NewMemoryProductRepoFromFile(path)

		// Assert
		require.Error(t, err)
	})

	t.Run("Failure - Malformed JSON", func(t *testing.T) {
		// Arrange
		path := writeSeedFile(t, `{"not": "a list"`)

		// Act
		_, err := repository.NewMemoryProductRepoFromFile(path)

		// Assert
		require.Error(t, err)
	})
}

func TestMemoryProductRepoQueries(t *testing.T) {
	ctx := t.Context()

	path := writeSeedFile(t, `[
		{"id": "1", "name": "Помідори", "type": "vegetable", "price": 45, "unit": "kg", "images": []},
		{"id": "4", "name": "Яблука", "type": "fruit", "price": 30, "unit": "kg", "images": [], "featured": true},
		{"id": "6", "name": "Полуниця", "type": "berry", "price": 80, "unit": "kg", "images": []},
		{"id": "9", "name": "Груші", "type": "fruit", "price": 50, "unit": "kg", "images": [], "featured": true}
	]`)

	repo, err := repository.NewMemoryProductRepoFromFile(path)
	require.NoError(t, err)

	t.Run("ListAll Preserves Declaration Order", func(t *testing.T) {
		products, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, []string{"1", "4", "6", "9"}, []string{products[0].ID, products[1].ID, products[2].ID, products[3].ID})
	})

	t.Run("ListFeatured Is An Ordered Subsequence", func(t *testing.T) {
		products, err := repo.ListFeatured(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "4", products[0].ID)
		assert.Equal(t, "9", products[1].ID)
	})

	t.Run("GetByID Found", func(t *testing.T) {
		product, found, err := repo.GetByID(ctx, "6")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Полуниця", product.Name)
	})

	t.Run("GetByID Absent", func(t *testing.T) {
		product, found, err := repo.GetByID(ctx, "999")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, product)
	})

	t.Run("ListByType Filters Exactly", func(t *testing.T) {
		products, err := repo.ListByType(ctx, models.TypeFruit)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "4", products[0].ID)
		assert.Equal(t, "9", products[1].ID)
	})
}
