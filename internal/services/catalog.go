package service

import (
	"context"

	"github.com/maryanafarm/storefront/internal/errors"
	"github.com/maryanafarm/storefront/internal/models"
	repository "github.com/maryanafarm/storefront/internal/repositories"
)

// CatalogService exposes the read-only product catalog. It has no mutation
// operations; the repository behind it may later be swapped for a live source
// without changing this contract.
type CatalogService interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, bool, error)
	ListByType(ctx context.Context, productType string) ([]models.Product, error)
}

type catalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListAll(ctx context.Context) ([]models.Product, error) {

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.InternalError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *catalogService) ListFeatured(ctx context.Context) ([]models.Product, error) {

	products, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, errors.InternalError("Failed to fetch featured products").WithError(err)
	}

	return products, nil
}

// GetByID reports found=false for an unknown id instead of an error.
func (s *catalogService) GetByID(ctx context.Context, id string) (*models.Product, bool, error) {

	product, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, errors.InternalError("Failed to fetch product").WithError(err)
	}

	return product, found, nil
}

// ListByType rejects values outside the closed type enumeration.
func (s *catalogService) ListByType(ctx context.Context, productType string) ([]models.Product, error) {

	t := models.ProductType(productType)

	if !t.Valid() {
		return nil, errors.InvalidArgumentError("Unknown product type").WithDetail(productType)
	}

	products, err := s.repo.ListByType(ctx, t)
	if err != nil {
		return nil, errors.InternalError("Failed to fetch products").WithError(err)
	}

	return products, nil
}
