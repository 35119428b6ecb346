package request

import "strings"

type CheckoutRequest struct {
	DiscountCode *string `json:"discount_code,omitempty" binding:"omitempty,max=50"`
}

func (r CheckoutRequest) GetDiscountCode() *string {
	if r.DiscountCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.DiscountCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
