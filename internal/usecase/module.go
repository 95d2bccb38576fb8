package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/config"
	"github.com/polkiloo/gpsolutions/internal/extract"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewIDGenerator,
	newWordCounter,
	NewStagingUseCase,
	NewAssignmentUseCase,
	NewCheckoutUseCase,
	NewSalesUseCase,
)

func newWordCounter(cfg *config.Config, logger *slog.Logger) WordCounter {
	return extract.NewCounter(cfg.ExtractWorkers, cfg.MaxTextBytes, logger)
}
