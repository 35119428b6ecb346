package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ecom-store/internal/handler/api"
	"ecom-store/internal/handler/middleware"
	"ecom-store/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, cartHandler *api.CartHandler, checkoutHandler *api.CheckoutHandler, adminHandler *api.AdminHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cartHandler, checkoutHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cartHandler *api.CartHandler, checkoutHandler *api.CheckoutHandler, adminHandler *api.AdminHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodPost, Path: "/:user_id/add", Handler: cartHandler.AddItem},
				{Method: http.MethodGet, Path: "/:user_id", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "/:user_id/item/:item_id", Handler: cartHandler.RemoveItem},
				{Method: http.MethodDelete, Path: "/:user_id/clear", Handler: cartHandler.ClearCart},
			})
		}

		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/:user_id", Handler: checkoutHandler.Checkout},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/discount-code/generate", Handler: adminHandler.GenerateDiscountCode},
				{Method: http.MethodGet, Path: "/statistics", Handler: adminHandler.GetStatistics},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
