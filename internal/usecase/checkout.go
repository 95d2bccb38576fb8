package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/polkiloo/gpsolutions/internal/adapter/payment"
	"github.com/polkiloo/gpsolutions/internal/config"
	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/domain/repository"
	"github.com/polkiloo/gpsolutions/internal/pricing"
)

// CheckoutUseCase creates payment sessions for carts and tracks them until they settle.
type CheckoutUseCase struct {
	assignments repository.AssignmentRepository
	checkouts   repository.CheckoutRepository
	payments    payment.Client
	siteURL     string
	currency    string
	logger      *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(assignments repository.AssignmentRepository, checkouts repository.CheckoutRepository, payments payment.Client, cfg *config.Config, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		assignments: assignments,
		checkouts:   checkouts,
		payments:    payments,
		siteURL:     cfg.SiteURL,
		currency:    cfg.Currency,
		logger:      logger,
	}
}

// LineItems prices the session's stored assignments, one item per billable assignment.
func (u *CheckoutUseCase) LineItems(ctx context.Context, sessionID string) ([]model.LineItem, error) {
	assignments, err := u.assignments.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]model.LineItem, 0, len(assignments))
	for _, a := range assignments {
		cents := pricing.PriceCents(a)
		if cents <= 0 {
			continue
		}
		name := a.ProjectType
		if name == "" {
			name = "Assignment #" + strconv.FormatInt(a.ID, 10)
		}
		items = append(items, model.LineItem{
			Name:            name,
			Description:     a.Topic,
			Currency:        u.currency,
			UnitAmountCents: cents,
			Quantity:        1,
		})
	}
	return items, nil
}

// Checkout opens a payment session for everything in the session's cart and returns its URL.
func (u *CheckoutUseCase) Checkout(ctx context.Context, sessionID string) (string, error) {
	items, err := u.LineItems(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return u.CheckoutWithItems(ctx, sessionID, items)
}

// CheckoutWithItems opens a payment session for caller-supplied line items.
func (u *CheckoutUseCase) CheckoutWithItems(ctx context.Context, sessionID string, items []model.LineItem) (string, error) {
	if len(items) == 0 {
		return "", domainErrors.ErrEmptyCart
	}

	normalized := make([]model.LineItem, 0, len(items))
	var total int64
	for i, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return "", domainErrors.Validation(fmt.Sprintf("Line item %d has no name.", i+1))
		}
		if item.UnitAmountCents <= 0 {
			return "", domainErrors.Validation(fmt.Sprintf("Line item %d has no amount.", i+1))
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		if item.Currency == "" {
			item.Currency = u.currency
		}
		total += item.UnitAmountCents * item.Quantity
		normalized = append(normalized, item)
	}

	session, err := u.payments.CreateSession(ctx, payment.SessionRequest{
		Items:      normalized,
		SuccessURL: u.siteURL + "/checkout/success",
		CancelURL:  u.siteURL + "/checkout/cancel",
		Reference:  sessionID,
	})
	if err != nil {
		return "", err
	}
	if session.AmountTotal != nil {
		total = *session.AmountTotal
	}

	record, err := u.checkouts.Create(ctx, model.CheckoutSession{
		SessionID:   sessionID,
		ProviderID:  session.ID,
		URL:         session.URL,
		Status:      model.CheckoutStatusOpen,
		AmountCents: total,
		Currency:    normalized[0].Currency,
	})
	if err != nil {
		return "", err
	}

	u.logger.Info("checkout session created", "session", sessionID,
		"checkout_id", record.ID, "amount_cents", total, "items", len(normalized))
	return session.URL, nil
}

// OpenCheckouts returns a batch of payment sessions still awaiting an outcome.
func (u *CheckoutUseCase) OpenCheckouts(ctx context.Context, limit int) ([]model.CheckoutSession, error) {
	return u.checkouts.SelectOpenBatch(ctx, limit)
}

// PaymentStatus asks the provider about a payment session.
func (u *CheckoutUseCase) PaymentStatus(ctx context.Context, providerID string) (*model.PaymentSession, error) {
	return u.payments.FetchSession(ctx, providerID)
}

// Complete records a paid checkout as a sale and consumes the session's cart.
func (u *CheckoutUseCase) Complete(ctx context.Context, checkout model.CheckoutSession, amountCents int64) error {
	if amountCents <= 0 {
		amountCents = checkout.AmountCents
	}
	return u.checkouts.Complete(ctx, checkout.ID, amountCents)
}

// Expire marks an abandoned checkout.
func (u *CheckoutUseCase) Expire(ctx context.Context, checkout model.CheckoutSession) error {
	return u.checkouts.MarkExpired(ctx, checkout.ID)
}
