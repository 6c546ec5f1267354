package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maryanafarm/storefront/internal/errors"
	"github.com/maryanafarm/storefront/internal/models"
	repository "github.com/maryanafarm/storefront/internal/repositories"
	"github.com/maryanafarm/storefront/internal/utils"
)

// CartManager owns one client's cart aggregate for the duration of a request.
// It is the only mutator of the cart: every mutation writes through to the
// store, and two managers over the same slot reconcile only at Initialize time
// (last writer wins). A manager is not safe for use from multiple goroutines.
type CartManager struct {
	store    repository.CartStore
	notifier Announcer
	cartID   string
	items    []models.CartItem
	loading  bool
}

func NewCartManager(store repository.CartStore, notifier Announcer, cartID string) *CartManager {
	return &CartManager{
		store:    store,
		notifier: notifier,
		cartID:   cartID,
		items:    []models.CartItem{},
	}
}

// Initialize replaces in-memory state with whatever is currently persisted.
// Missing or malformed state degrades to an empty cart; a store read failure
// is logged and likewise degrades rather than failing the caller.
func (m *CartManager) Initialize(ctx context.Context) {

	m.loading = true
	defer func() { m.loading = false }()

	items, found, err := m.store.Load(ctx, m.cartID)

	if err != nil {
		slog.Warn("Cart load failed, starting with an empty cart",
			slog.String("cart_id", m.cartID),
			slog.String("error", err.Error()),
		)
	}

	if err != nil || !found {
		m.items = []models.CartItem{}

		return
	}

	m.items = items
}

// AddItem merges quantity into an existing line for the same product id, or
// appends a new line built from the product's current price, name, unit,
// variety and first image. A non-positive quantity is rejected; product stock
// is deliberately not consulted, fulfillment checks stock by hand.
func (m *CartManager) AddItem(ctx context.Context, product *models.Product, quantity int) error {

	if quantity < 1 {
		return errors.InvalidArgumentError("Quantity must be a positive integer")
	}

	if i := m.indexOf(product.ID); i >= 0 {
		m.items[i].Quantity += quantity
	} else {
		m.items = append(m.items, models.CartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Unit:     product.Unit,
			Variety:  product.Variety,
			Image:    product.FirstImage(),
			Quantity: quantity,
		})
	}

	m.persist(ctx)

	// fire-and-forget; an unheard announcement never rolls back the cart
	m.notifier.Announce(ctx, fmt.Sprintf("%s додано до кошика", product.Name))

	return nil
}

// RemoveItem drops the line with the given id. Removing an absent id is a
// no-op, not an error.
func (m *CartManager) RemoveItem(ctx context.Context, productID string) {

	i := m.indexOf(productID)
	if i < 0 {
		return
	}

	m.items = append(m.items[:i], m.items[i+1:]...)
	m.persist(ctx)
}

// UpdateQuantity sets the line's quantity to exactly the given value. A value
// of zero or below removes the line; an absent id is a no-op.
func (m *CartManager) UpdateQuantity(ctx context.Context, productID string, quantity int) {

	i := m.indexOf(productID)
	if i < 0 {
		return
	}

	if quantity <= 0 {
		m.RemoveItem(ctx, productID)

		return
	}

	m.items[i].Quantity = quantity
	m.persist(ctx)
}

func (m *CartManager) ClearCart(ctx context.Context) {
	m.items = []models.CartItem{}
	m.persist(ctx)
}

func (m *CartManager) GetItem(productID string) (*models.CartItem, bool) {

	i := m.indexOf(productID)
	if i < 0 {
		return nil, false
	}

	item := m.items[i]

	return &item, true
}

// ItemCount is the number of distinct line items, not the total unit count.
func (m *CartManager) ItemCount() int {
	return len(m.items)
}

func (m *CartManager) TotalPrice() float64 {

	var total float64

	for _, item := range m.items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

func (m *CartManager) IsEmpty() bool {
	return len(m.items) == 0
}

func (m *CartManager) IsLoading() bool {
	return m.loading
}

// Items returns the lines in insertion order.
func (m *CartManager) Items() []models.CartItem {

	out := make([]models.CartItem, len(m.items))
	copy(out, m.items)

	return out
}

// Snapshot builds the API view with the derived summary fields.
func (m *CartManager) Snapshot() *models.Cart {
	return &models.Cart{
		Items:      m.Items(),
		ItemCount:  m.ItemCount(),
		TotalPrice: m.TotalPrice(),
		IsEmpty:    m.IsEmpty(),
	}
}

// OrderSummary renders the cart as the message a customer sends to place an
// order by hand. An empty cart renders as the empty string.
func (m *CartManager) OrderSummary() string {

	if m.IsEmpty() {
		return ""
	}

	var b strings.Builder

	b.WriteString("Вітаю! Хочу замовити:\n\n")

	for i, item := range m.items {

		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(item.Name)

		if item.Variety != "" {
			b.WriteString(" (")
			b.WriteString(item.Variety)
			b.WriteByte(')')
		}

		lineTotal := item.Price * float64(item.Quantity)

		fmt.Fprintf(&b, " - %d %s = %s ₴", item.Quantity, item.Unit.Label(), utils.FormatAmount(lineTotal))
	}

	fmt.Fprintf(&b, "\n\nЗагальна сума: %s ₴", utils.FormatAmount(m.TotalPrice()))

	return b.String()
}

func (m *CartManager) indexOf(productID string) int {

	for i, item := range m.items {
		if item.ID == productID {
			return i
		}
	}

	return -1
}

// persist is optimistic: a failed write is logged as a warning and the
// in-memory mutation stands.
func (m *CartManager) persist(ctx context.Context) {

	if err := m.store.Save(ctx, m.cartID, m.items); err != nil {
		slog.Warn("Cart write failed, keeping in-memory state",
			slog.String("cart_id", m.cartID),
			slog.String("error", err.Error()),
		)
	}
}
