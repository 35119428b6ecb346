package components

import (
	"ecom-store/internal/handler"
	"ecom-store/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
