package api

import (
	"errors"
	"net/http"

	reqdto "ecom-store/internal/handler/dto/request"
	resdto "ecom-store/internal/handler/dto/response"
	"ecom-store/internal/handler/httperr"
	"ecom-store/internal/pkg/errs"
	"ecom-store/internal/store"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	store *store.Store
}

func NewCheckoutHandler(s *store.Store) *CheckoutHandler {
	return &CheckoutHandler{store: s}
}

// @Summary Process checkout
// @Description Create an order from the user's cart, optionally applying a single-use discount code
// @Tags checkout
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Router /checkout/{user_id} [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := c.Param("user_id")

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	placed, err := h.store.Checkout(userID, req.GetDiscountCode())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, errs.ErrInvalidDiscountCode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or already used discount code",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(placed))
}
