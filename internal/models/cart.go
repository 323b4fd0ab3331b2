package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line in a customer's cart. UnitPrice is captured from the
// catalog when the line is created, so a later price change does not silently
// reprice an open cart.
type CartItem struct {
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type Cart struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	Items     map[string]CartItem `json:"items"`
	Subtotal  float64             `json:"subtotal"`
	Shipping  float64             `json:"shipping"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Totals is the derived money view of a cart:
// total = subtotal + shipping, shipping = 0 above the free threshold.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

// Quantity carries no floor tag: any value <= 0 means "remove the line" and
// is handled by the cart service, not rejected at the parse layer.
type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"`
}
