package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ecom-store/internal/domain/cart"
)

// Order is an immutable record of one completed checkout. Items are a
// deep copy taken from the cart at checkout time; later cart mutations
// never touch a placed order.
type Order struct {
	OrderID        string          `json:"order_id"`
	UserID         string          `json:"user_id"`
	Items          []cart.Line     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountCode   *string         `json:"discount_code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"created_at"`
}

// FormatID renders the 1-based sequence number as "ORD-000001" etc.
func FormatID(seq int) string {
	return fmt.Sprintf("ORD-%06d", seq)
}
