package request

import (
	"errors"

	"github.com/shopspring/decimal"
)

var maxPrice = decimal.RequireFromString("999999.99")

type AddItemRequest struct {
	ItemID   string          `json:"item_id" binding:"required,min=1,max=100"`
	Name     string          `json:"name" binding:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" binding:"required,gt=0,lte=1000"`
}

// ValidatePrice covers what binding tags cannot express for a decimal
// field: the price must be positive and bounded.
func (r AddItemRequest) ValidatePrice() error {
	if r.Price.Sign() <= 0 {
		return errors.New("price must be greater than 0")
	}
	if r.Price.GreaterThan(maxPrice) {
		return errors.New("price must be at most 999999.99")
	}
	return nil
}
