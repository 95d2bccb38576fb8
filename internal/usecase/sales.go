package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/domain/repository"
)

// SalesUseCase reports completed sales.
type SalesUseCase struct {
	sales repository.SalesRepository
}

// NewSalesUseCase constructs SalesUseCase.
func NewSalesUseCase(sales repository.SalesRepository) *SalesUseCase {
	return &SalesUseCase{sales: sales}
}

// Sales groups sales by the requested period, oldest first.
func (u *SalesUseCase) Sales(ctx context.Context, period model.SalesPeriod) ([]model.SalesBucket, error) {
	if period != model.SalesDaily && period != model.SalesMonthly {
		return nil, domainErrors.Validation("Unknown period, use daily or monthly.")
	}
	buckets, err := u.sales.Buckets(ctx, period)
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		buckets = []model.SalesBucket{}
	}
	return buckets, nil
}
