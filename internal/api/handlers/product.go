package handlers

import (
	"net/http"

	"github.com/maryanafarm/storefront/internal/api/middleware"
	apperrors "github.com/maryanafarm/storefront/internal/errors"
	service "github.com/maryanafarm/storefront/internal/services"
	"github.com/maryanafarm/storefront/internal/utils/response"
)

type ProductHandler struct {
	catalog service.CatalogService
}

func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListProducts returns the whole catalog, or the subset matching the optional
// ?type= filter. An unknown type is rejected, not silently emptied.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productType := r.URL.Query().Get("type")

		if productType != "" {

			products, err := h.catalog.ListByType(r.Context(), productType)
			if err != nil {
				logger.Warn("Rejected product type filter", "type", productType)
				response.Error(w, err)

				return
			}

			response.Success(w, http.StatusOK, products)

			return
		}

		products, err := h.catalog.ListAll(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) ListFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.catalog.ListFeatured(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")

		product, found, err := h.catalog.GetByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		if !found {
			response.Error(w, apperrors.NotFoundError("Product not found").WithDetail(id))

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
