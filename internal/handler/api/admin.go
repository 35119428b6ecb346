package api

import (
	"net/http"

	resdto "ecom-store/internal/handler/dto/response"
	"ecom-store/internal/store"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(s *store.Store) *AdminHandler {
	return &AdminHandler{store: s}
}

// @Summary Generate discount code
// @Description Manually mint a discount code outside the automatic every-nth-order trigger
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.DiscountCodeResponse
// @Router /admin/discount-code/generate [post]
func (h *AdminHandler) GenerateDiscountCode(c *gin.Context) {
	code := h.store.GenerateDiscountCode()
	c.JSON(http.StatusOK, resdto.FromDiscountCode(code))
}

// @Summary Get store statistics
// @Description Aggregate items purchased, purchase and discount totals, orders, and all discount codes
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.StatisticsResponse
// @Router /admin/statistics [get]
func (h *AdminHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromStatistics(h.store.Statistics()))
}
