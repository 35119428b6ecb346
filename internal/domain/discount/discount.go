package discount

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Percent is the flat discount every code grants.
const Percent = 10

var rate = decimal.New(1, -1) // 0.1

// Code is a single-use 10% discount code. Immutable except for the
// Used/UsedAt transition, which happens exactly once at checkout.
type Code struct {
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	CreatedAt       time.Time  `json:"created_at"`
	Used            bool       `json:"used"`
	UsedAt          *time.Time `json:"used_at"`
}

// FormatCode renders the 1-based sequence number as "SAVE10-0001" etc.
func FormatCode(seq int) string {
	return fmt.Sprintf("SAVE10-%04d", seq)
}

func New(seq int, createdAt time.Time) Code {
	return Code{
		Code:            FormatCode(seq),
		DiscountPercent: Percent,
		CreatedAt:       createdAt,
	}
}

func (c *Code) MarkUsed(at time.Time) {
	c.Used = true
	c.UsedAt = &at
}

// Amount computes the discount for a subtotal, rounded to two decimal
// places half away from zero. This is the only place money is rounded.
func Amount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Round(2)
}
