package test

import (
	"context"
	"sync"

	"github.com/polkiloo/gpsolutions/internal/adapter/payment"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// PaymentClientStub records created sessions and answers status lookups.
type PaymentClientStub struct {
	CreateFn func(context.Context, payment.SessionRequest) (*model.PaymentSession, error)
	FetchFn  func(context.Context, string) (*model.PaymentSession, error)

	mu       sync.Mutex
	Requests []payment.SessionRequest
}

// CreateSession returns a fixed open session unless overridden.
func (s *PaymentClientStub) CreateSession(ctx context.Context, req payment.SessionRequest) (*model.PaymentSession, error) {
	s.mu.Lock()
	s.Requests = append(s.Requests, req)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return &model.PaymentSession{
		ID:     "cs_test_1",
		URL:    "https://checkout.example/cs_test_1",
		Status: model.PaymentSessionOpen,
	}, nil
}

// FetchSession reports the session as still open unless overridden.
func (s *PaymentClientStub) FetchSession(ctx context.Context, id string) (*model.PaymentSession, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, id)
	}
	return &model.PaymentSession{ID: id, Status: model.PaymentSessionOpen}, nil
}

var _ payment.Client = (*PaymentClientStub)(nil)
