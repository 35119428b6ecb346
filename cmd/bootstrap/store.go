package bootstrap

import (
	"log/slog"

	"ecom-store/internal/pkg/clock"
	"ecom-store/internal/pkg/config"
	"ecom-store/internal/store"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewStore,
	),
)

// NewStore constructs the single store instance every handler shares.
// Construction loads the snapshot file, so a restarted process resumes
// from its last successfully persisted state.
func NewStore(cfg config.Config, clk clock.Clock, logger *slog.Logger) *store.Store {
	s := store.New(cfg.Store, clk, logger)
	logger.Info("store initialized",
		"data_file", cfg.Store.DataFile,
		"discount_interval", s.DiscountInterval(),
	)
	return s
}
