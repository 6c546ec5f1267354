package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/maryanafarm/storefront/internal/models"
)

//go:embed seed/products.json
var embeddedSeed []byte

// ProductRepository is the catalog read model. The in-memory implementation is
// loaded once at startup; callers must not assume reads are free, the
// repository may later be backed by a live data source.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, bool, error)
	ListByType(ctx context.Context, productType models.ProductType) ([]models.Product, error)
}

type memoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

// NewMemoryProductRepo builds the catalog from the embedded seed data.
func NewMemoryProductRepo() (ProductRepository, error) {
	return newMemoryProductRepo(embeddedSeed)
}

// NewMemoryProductRepoFromFile builds the catalog from a JSON file, replacing
// the embedded seed.
func NewMemoryProductRepoFromFile(path string) (ProductRepository, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed %s: %w", path, err)
	}

	return newMemoryProductRepo(data)
}

func newMemoryProductRepo(data []byte) (ProductRepository, error) {

	var products []models.Product

	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	byID := make(map[string]int, len(products))

	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog seed entry %d has no id", i)
		}

		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q in catalog seed", p.ID)
		}

		if !p.Type.Valid() {
			return nil, fmt.Errorf("product %q has unknown type %q", p.ID, p.Type)
		}

		byID[p.ID] = i
	}

	return &memoryProductRepository{products: products, byID: byID}, nil
}

// ListAll returns every product in declaration order.
func (r *memoryProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {

	out := make([]models.Product, len(r.products))
	copy(out, r.products)

	return out, nil
}

func (r *memoryProductRepository) ListFeatured(ctx context.Context) ([]models.Product, error) {

	out := make([]models.Product, 0)

	for _, p := range r.products {
		if p.Featured {
			out = append(out, p)
		}
	}

	return out, nil
}

// GetByID returns found=false for an unknown id. A missing product is not an
// error.
func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, bool, error) {

	i, ok := r.byID[id]
	if !ok {
		return nil, false, nil
	}

	p := r.products[i]

	return &p, true, nil
}

func (r *memoryProductRepository) ListByType(ctx context.Context, productType models.ProductType) ([]models.Product, error) {

	out := make([]models.Product, 0)

	for _, p := range r.products {
		if p.Type == productType {
			out = append(out, p)
		}
	}

	return out, nil
}
