package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/maryanafarm/storefront/internal/api/middleware"
	apperrors "github.com/maryanafarm/storefront/internal/errors"
	"github.com/maryanafarm/storefront/internal/models"
	repository "github.com/maryanafarm/storefront/internal/repositories"
	service "github.com/maryanafarm/storefront/internal/services"
	"github.com/maryanafarm/storefront/internal/utils/response"
)

// CartCookieName identifies an anonymous client's cart across sessions.
const CartCookieName = "farm_cart_id"

const cartCookieMaxAge = 60 * 60 * 24 * 30

type CartHandler struct {
	store     repository.CartStore
	catalog   service.CatalogService
	announcer service.Announcer
	orders    service.OrderService
	validator *validator.Validate
}

func NewCartHandler(store repository.CartStore, catalog service.CatalogService, announcer service.Announcer, orders service.OrderService) *CartHandler {
	return &CartHandler{
		store:     store,
		catalog:   catalog,
		announcer: announcer,
		orders:    orders,
		validator: validator.New(),
	}
}

// cartID returns the client's cart id, issuing a fresh cookie on first touch.
func (h *CartHandler) cartID(w http.ResponseWriter, r *http.Request) string {

	if c, err := r.Cookie(CartCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     CartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cartCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// manager builds this request's cart manager over the client's slot. Each
// request is its own execution context; concurrent sessions against the same
// slot are last-writer-wins by design of the store.
func (h *CartHandler) manager(w http.ResponseWriter, r *http.Request) *service.CartManager {

	m := service.NewCartManager(h.store, h.announcer, h.cartID(w, r))
	m.Initialize(r.Context())

	return m
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		m := h.manager(w, r)

		response.Success(w, http.StatusOK, m.Snapshot())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}

		product, found, err := h.catalog.GetByID(r.Context(), req.ProductID)
		if err != nil {
			response.Error(w, err)

			return
		}

		if !found {
			response.Error(w, apperrors.NotFoundError("Product not found").WithDetail(req.ProductID))

			return
		}

		m := h.manager(w, r)

		if err := m.AddItem(r.Context(), product, quantity); err != nil {
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart",
			"product_id", product.ID,
			"quantity", quantity,
		)

		response.Success(w, http.StatusOK, m.Snapshot())
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")

		var req models.UpdateQuantityRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		m := h.manager(w, r)
		m.UpdateQuantity(r.Context(), productID, req.Quantity)

		response.Success(w, http.StatusOK, m.Snapshot())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")

		m := h.manager(w, r)
		m.RemoveItem(r.Context(), productID)

		response.Success(w, http.StatusOK, m.Snapshot())
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		m := h.manager(w, r)
		m.ClearCart(r.Context())

		response.Success(w, http.StatusOK, m.Snapshot())
	}
}

// GetSummary returns the human-readable order message. The empty cart renders
// as an empty string, not an error.
func (h *CartHandler) GetSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		m := h.manager(w, r)

		response.Success(w, http.StatusOK, map[string]string{"summary": m.OrderSummary()})
	}
}

// Checkout composes the order summary and hands it off to the farm's order
// inbox. The cart is intentionally kept as is; it is cleared by the customer
// once the order is confirmed over the out-of-band channel.
func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		m := h.manager(w, r)
		summary := m.OrderSummary()

		if err := h.orders.SendOrder(r.Context(), &req, summary); err != nil {
			logger.Error("Order hand-off failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Order handed off", "items", m.ItemCount())

		response.Success(w, http.StatusOK, map[string]string{"summary": summary})
	}
}
