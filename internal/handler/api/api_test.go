//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"ecom-store/internal/handler/api"
	"ecom-store/internal/pkg/clock"
	"ecom-store/internal/pkg/config"
	"ecom-store/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// The store is a plain in-memory object, so handler tests run against
// the real thing with a throwaway snapshot file.
type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *store.Store
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	cfg.Store.DataFile = filepath.Join(s.T().TempDir(), "store.json")
	s.store = store.New(
		cfg.Store,
		clock.NewRealClock(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	cartHandler := api.NewCartHandler(s.store)
	checkoutHandler := api.NewCheckoutHandler(s.store)
	adminHandler := api.NewAdminHandler(s.store)

	s.router.POST("/api/cart/:user_id/add", cartHandler.AddItem)
	s.router.GET("/api/cart/:user_id", cartHandler.GetCart)
	s.router.DELETE("/api/cart/:user_id/item/:item_id", cartHandler.RemoveItem)
	s.router.DELETE("/api/cart/:user_id/clear", cartHandler.ClearCart)
	s.router.POST("/api/checkout/:user_id", checkoutHandler.Checkout)
	s.router.POST("/api/admin/discount-code/generate", adminHandler.GenerateDiscountCode)
	s.router.GET("/api/admin/statistics", adminHandler.GetStatistics)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) perform(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var doc map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	return doc
}

func addItemBody(mutate func(m map[string]any)) map[string]any {
	m := map[string]any{
		"item_id":  "item1",
		"name":     "Laptop",
		"price":    999.99,
		"quantity": 1,
	}
	if mutate != nil {
		mutate(m)
	}
	return m
}

func (s *HandlerTestSuite) TestAddItem() {
	url := "/api/cart/alice/add"

	cases := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "valid item", expectCode: http.StatusOK},
		{name: "zero price", mutate: func(m map[string]any) { m["price"] = 0 }, expectCode: http.StatusBadRequest},
		{name: "negative price", mutate: func(m map[string]any) { m["price"] = -5 }, expectCode: http.StatusBadRequest},
		{name: "price above cap", mutate: func(m map[string]any) { m["price"] = 1000000.00 }, expectCode: http.StatusBadRequest},
		{name: "zero quantity", mutate: func(m map[string]any) { m["quantity"] = 0 }, expectCode: http.StatusBadRequest},
		{name: "quantity above cap", mutate: func(m map[string]any) { m["quantity"] = 1001 }, expectCode: http.StatusBadRequest},
		{name: "missing item id", mutate: func(m map[string]any) { delete(m, "item_id") }, expectCode: http.StatusBadRequest},
		{name: "oversized item id", mutate: func(m map[string]any) { m["item_id"] = strings.Repeat("x", 101) }, expectCode: http.StatusBadRequest},
		{name: "oversized name", mutate: func(m map[string]any) { m["name"] = strings.Repeat("x", 201) }, expectCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.perform(http.MethodPost, url, addItemBody(tc.mutate))
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

func (s *HandlerTestSuite) TestAddItemMergesQuantity() {
	url := "/api/cart/alice/add"

	rec := s.perform(http.MethodPost, url, addItemBody(nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.perform(http.MethodPost, url, addItemBody(func(m map[string]any) { m["quantity"] = 2 }))
	s.Require().Equal(http.StatusOK, rec.Code)

	doc := s.decode(rec)
	s.Equal("alice", doc["user_id"])
	items := doc["items"].([]any)
	s.Require().Len(items, 1)
	s.Equal(float64(3), items[0].(map[string]any)["quantity"])
}

func (s *HandlerTestSuite) TestAddItemMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/cart/alice/add", strings.NewReader("{oops"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetCart() {
	rec := s.perform(http.MethodGet, "/api/cart/nobody", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	doc := s.decode(rec)
	s.Equal("nobody", doc["user_id"])
	s.Empty(doc["items"])
	s.NotNil(doc["items"], "absent cart must read as an empty cart, not null")
}

func (s *HandlerTestSuite) TestRemoveItem() {
	s.perform(http.MethodPost, "/api/cart/alice/add", addItemBody(nil))

	rec := s.perform(http.MethodDelete, "/api/cart/alice/item/item1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(s.decode(rec)["items"])

	// removing an absent item is still a success
	rec = s.perform(http.MethodDelete, "/api/cart/alice/item/item1", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestClearCart() {
	s.perform(http.MethodPost, "/api/cart/alice/add", addItemBody(nil))

	rec := s.perform(http.MethodDelete, "/api/cart/alice/clear", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("Cart cleared successfully", s.decode(rec)["message"])

	rec = s.perform(http.MethodGet, "/api/cart/alice", nil)
	s.Empty(s.decode(rec)["items"])
}

func (s *HandlerTestSuite) TestCheckout() {
	s.Run("empty cart", func() {
		rec := s.perform(http.MethodPost, "/api/checkout/nobody", map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Cart is empty")
	})

	s.Run("without discount code", func() {
		s.perform(http.MethodPost, "/api/cart/alice/add", addItemBody(func(m map[string]any) {
			m["price"] = 10.00
			m["quantity"] = 2
		}))

		rec := s.perform(http.MethodPost, "/api/checkout/alice", map[string]any{})
		s.Require().Equal(http.StatusOK, rec.Code)

		doc := s.decode(rec)
		s.Equal("ORD-000001", doc["order_id"])
		s.Equal("alice", doc["user_id"])
		s.Equal(float64(20), doc["subtotal"])
		s.Equal(float64(0), doc["discount_amount"])
		s.Equal(float64(20), doc["total"])
		s.NotContains(doc, "discount_code")

		// cart is cleared by a successful checkout
		rec = s.perform(http.MethodGet, "/api/cart/alice", nil)
		s.Empty(s.decode(rec)["items"])
	})

	s.Run("unknown discount code", func() {
		s.perform(http.MethodPost, "/api/cart/bob/add", addItemBody(nil))

		rec := s.perform(http.MethodPost, "/api/checkout/bob", map[string]any{"discount_code": "SAVE10-9999"})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Invalid or already used discount code")
	})

	s.Run("valid discount code applies and is single-use", func() {
		rec := s.perform(http.MethodPost, "/api/admin/discount-code/generate", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		code := s.decode(rec)["code"].(string)

		s.perform(http.MethodPost, "/api/cart/carol/add", addItemBody(func(m map[string]any) {
			m["price"] = 10.00
			m["quantity"] = 2
		}))
		rec = s.perform(http.MethodPost, "/api/checkout/carol", map[string]any{"discount_code": code})
		s.Require().Equal(http.StatusOK, rec.Code)

		doc := s.decode(rec)
		s.Equal(code, doc["discount_code"])
		s.Equal(float64(2), doc["discount_amount"])
		s.Equal(float64(18), doc["total"])

		s.perform(http.MethodPost, "/api/cart/dave/add", addItemBody(nil))
		rec = s.perform(http.MethodPost, "/api/checkout/dave", map[string]any{"discount_code": code})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerTestSuite) TestGenerateDiscountCode() {
	rec := s.perform(http.MethodPost, "/api/admin/discount-code/generate", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	doc := s.decode(rec)
	s.Equal("SAVE10-0001", doc["code"])
	s.Equal(float64(10), doc["discount_percent"])
	s.Equal(false, doc["used"])
	s.Nil(doc["used_at"])

	rec = s.perform(http.MethodPost, "/api/admin/discount-code/generate", nil)
	s.Equal("SAVE10-0002", s.decode(rec)["code"])
}

func (s *HandlerTestSuite) TestGetStatistics() {
	for _, user := range []string{"alice", "bob"} {
		s.perform(http.MethodPost, "/api/cart/"+user+"/add", addItemBody(func(m map[string]any) {
			m["price"] = 10.00
			m["quantity"] = 2
		}))
		rec := s.perform(http.MethodPost, "/api/checkout/"+user, map[string]any{})
		s.Require().Equal(http.StatusOK, rec.Code)
	}

	rec := s.perform(http.MethodGet, "/api/admin/statistics", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	doc := s.decode(rec)
	s.Equal(float64(4), doc["total_items_purchased"])
	s.Equal(float64(40), doc["total_purchase_amount"])
	s.Equal(float64(0), doc["total_discount_amount"])
	s.Equal(float64(2), doc["total_orders"])
	s.Empty(doc["discount_codes"])
}
