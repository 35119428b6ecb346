package response

import (
	"time"

	"github.com/shopspring/decimal"

	"ecom-store/internal/domain/order"
)

type CheckoutResponse struct {
	OrderID        string             `json:"order_id"`
	UserID         string             `json:"user_id"`
	Items          []CartItemResponse `json:"items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	DiscountCode   *string            `json:"discount_code,omitempty"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	Total          decimal.Decimal    `json:"total"`
	CreatedAt      time.Time          `json:"created_at"`
}

func FromOrder(o order.Order) *CheckoutResponse {
	items := make([]CartItemResponse, len(o.Items))
	for i, l := range o.Items {
		items[i] = CartItemResponse{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		}
	}
	return &CheckoutResponse{
		OrderID:        o.OrderID,
		UserID:         o.UserID,
		Items:          items,
		Subtotal:       o.Subtotal,
		DiscountCode:   o.DiscountCode,
		DiscountAmount: o.DiscountAmount,
		Total:          o.Total,
		CreatedAt:      o.CreatedAt,
	}
}
