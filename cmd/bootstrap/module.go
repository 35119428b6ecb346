package bootstrap

import (
	"ecom-store/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	components.HandlerModule,
)
