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

type CartHandler struct {
	store *store.Store
}

func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{store: s}
}

// @Summary Add item to cart
// @Description Add an item to the user's cart; quantities merge for an existing item id
// @Tags cart
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body reqdto.AddItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/{user_id}/add [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := c.Param("user_id")

	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if priceErr := req.ValidatePrice(); priceErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": priceErr.Error(),
		})
		return
	}

	updated, err := h.store.AddItem(userID, req.ItemID, req.Name, req.Price, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Price and quantity must be positive",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(updated))
}

// @Summary Get user's cart
// @Description Get the user's cart; an empty cart is returned when none exists
// @Tags cart
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/{user_id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.Param("user_id")
	c.JSON(http.StatusOK, resdto.FromCart(h.store.GetCart(userID)))
}

// @Summary Remove item from cart
// @Description Remove an item from the user's cart; removing an absent item is a no-op
// @Tags cart
// @Produce json
// @Param user_id path string true "User ID"
// @Param item_id path string true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/{user_id}/item/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := c.Param("user_id")
	itemID := c.Param("item_id")
	c.JSON(http.StatusOK, resdto.FromCart(h.store.RemoveItem(userID, itemID)))
}

// @Summary Clear cart
// @Description Delete the user's cart entirely
// @Tags cart
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /cart/{user_id}/clear [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := c.Param("user_id")
	h.store.ClearCart(userID)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Cart cleared successfully"})
}
