package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/config"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// Module provides the service catalog.
var Module = fx.Provide(newCatalog)

func newCatalog(cfg *config.Config, logger *slog.Logger) (model.Catalog, error) {
	if cfg.CatalogFile == "" {
		return Default(), nil
	}
	c, err := Load(cfg.CatalogFile)
	if err != nil {
		return model.Catalog{}, err
	}
	logger.Info("service catalog loaded", "file", cfg.CatalogFile,
		"project_types", len(c.ProjectTypes), "topics", len(c.Topics))
	return c, nil
}
