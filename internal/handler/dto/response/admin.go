package response

import (
	"time"

	"github.com/shopspring/decimal"

	"ecom-store/internal/domain/discount"
	"ecom-store/internal/store"
)

type DiscountCodeResponse struct {
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	CreatedAt       time.Time  `json:"created_at"`
	Used            bool       `json:"used"`
	UsedAt          *time.Time `json:"used_at"`
}

type StatisticsResponse struct {
	TotalItemsPurchased int                    `json:"total_items_purchased"`
	TotalPurchaseAmount decimal.Decimal        `json:"total_purchase_amount"`
	TotalDiscountAmount decimal.Decimal        `json:"total_discount_amount"`
	DiscountCodes       []DiscountCodeResponse `json:"discount_codes"`
	TotalOrders         int                    `json:"total_orders"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromDiscountCode(c discount.Code) *DiscountCodeResponse {
	return &DiscountCodeResponse{
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		CreatedAt:       c.CreatedAt,
		Used:            c.Used,
		UsedAt:          c.UsedAt,
	}
}

func FromStatistics(stats store.Statistics) *StatisticsResponse {
	codes := make([]DiscountCodeResponse, len(stats.DiscountCodes))
	for i, c := range stats.DiscountCodes {
		codes[i] = *FromDiscountCode(c)
	}
	return &StatisticsResponse{
		TotalItemsPurchased: stats.TotalItemsPurchased,
		TotalPurchaseAmount: stats.TotalPurchaseAmount,
		TotalDiscountAmount: stats.TotalDiscountAmount,
		DiscountCodes:       codes,
		TotalOrders:         stats.TotalOrders,
	}
}
