package repository

import (
	"context"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// CheckoutRepository tracks payment sessions created at checkout.
type CheckoutRepository interface {
	Create(ctx context.Context, session model.CheckoutSession) (*model.CheckoutSession, error)
	SelectOpenBatch(ctx context.Context, limit int) ([]model.CheckoutSession, error)
	MarkExpired(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64, amountCents int64) error
}
