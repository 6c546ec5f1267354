package models

// CartItem is one line of a customer's cart. Name, price, unit and variety are
// copied from the product at add time; later catalog changes do not touch
// items already in the cart.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Unit     Unit    `json:"unit"`
	Variety  string  `json:"variety,omitempty"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// Cart is the API view of one client's cart aggregate. Items keep insertion
// order; the summary fields are recomputed on every read.
type Cart struct {
	Items      []CartItem `json:"items"`
	ItemCount  int        `json:"item_count"`
	TotalPrice float64    `json:"total_price"`
	IsEmpty    bool       `json:"is_empty"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity,omitempty"  validate:"omitempty,min=1"`
}

// UpdateQuantityRequest carries an absolute quantity; zero or below removes
// the line, so no lower bound is validated here.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"  validate:"required,min=2,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=5,max=20"`
	Note          string `json:"note,omitempty" validate:"omitempty,max=500"`
}
