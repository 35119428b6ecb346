package response

import (
	"github.com/shopspring/decimal"

	"ecom-store/internal/domain/cart"
)

type CartItemResponse struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CartResponse struct {
	UserID string             `json:"user_id"`
	Items  []CartItemResponse `json:"items"`
}

func FromCart(c cart.Cart) *CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	for i, l := range c.Items {
		items[i] = CartItemResponse{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		}
	}
	return &CartResponse{UserID: c.UserID, Items: items}
}
