package model

import (
	"strings"
	"time"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
)

// Sale is a completed, paid checkout.
type Sale struct {
	ID          int64
	CheckoutID  int64
	AmountCents int64
	CreatedAt   time.Time
}

// SalesPeriod selects the grouping of sales analytics.
type SalesPeriod string

const (
	SalesDaily   SalesPeriod = "daily"
	SalesMonthly SalesPeriod = "monthly"
)

// ParseSalesPeriod accepts daily and monthly; empty means daily.
func ParseSalesPeriod(raw string) (SalesPeriod, error) {
	switch SalesPeriod(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SalesDaily:
		return SalesDaily, nil
	case SalesMonthly:
		return SalesMonthly, nil
	default:
		return "", domainErrors.Validation("Unknown period, use daily or monthly.")
	}
}

// SalesBucket aggregates sales for one day or month.
type SalesBucket struct {
	Date         string
	Count        int64
	RevenueCents int64
}
