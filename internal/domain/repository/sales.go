package repository

import (
	"context"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// SalesRepository aggregates completed sales.
type SalesRepository interface {
	Buckets(ctx context.Context, period model.SalesPeriod) ([]model.SalesBucket, error)
}
