package app

import (
	"context"
	"errors"

	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/domain/repository"
	"github.com/polkiloo/gpsolutions/internal/usecase"
)

// QuoteFacade is the single entry point the HTTP layer and the reconciler use.
type QuoteFacade struct {
	staging     *usecase.StagingUseCase
	assignments *usecase.AssignmentUseCase
	checkout    *usecase.CheckoutUseCase
	sales       *usecase.SalesUseCase
	catalog     model.Catalog
	health      []repository.HealthChecker
}

type facadeParams struct {
	fx.In

	Staging     *usecase.StagingUseCase
	Assignments *usecase.AssignmentUseCase
	Checkout    *usecase.CheckoutUseCase
	Sales       *usecase.SalesUseCase
	Catalog     model.Catalog
	Health      []repository.HealthChecker `group:"health"`
}

func newQuoteFacade(p facadeParams) *QuoteFacade {
	return NewQuoteFacade(p.Staging, p.Assignments, p.Checkout, p.Sales, p.Catalog, p.Health...)
}

func NewQuoteFacade(staging *usecase.StagingUseCase, assignments *usecase.AssignmentUseCase, checkout *usecase.CheckoutUseCase, sales *usecase.SalesUseCase, catalog model.Catalog, health ...repository.HealthChecker) *QuoteFacade {
	return &QuoteFacade{
		staging:     staging,
		assignments: assignments,
		checkout:    checkout,
		sales:       sales,
		catalog:     catalog,
		health:      health,
	}
}

func (f *QuoteFacade) StagedTasks(ctx context.Context, sessionID string) ([]model.AssignmentTask, error) {
	return f.staging.List(ctx, sessionID)
}

func (f *QuoteFacade) StageWordCount(ctx context.Context, sessionID, raw string) (*model.AssignmentTask, error) {
	return f.staging.AddWordCount(ctx, sessionID, raw)
}

func (f *QuoteFacade) StageFiles(ctx context.Context, sessionID string, uploads []model.Upload) (*model.StageResult, error) {
	return f.staging.AddFiles(ctx, sessionID, uploads)
}

func (f *QuoteFacade) UnstageTask(ctx context.Context, sessionID string, taskID int64) error {
	return f.staging.Remove(ctx, sessionID, taskID)
}

func (f *QuoteFacade) ClearStaging(ctx context.Context, sessionID string) error {
	return f.staging.Clear(ctx, sessionID)
}

func (f *QuoteFacade) Finalize(ctx context.Context, sessionID string, draft model.AssignmentDraft) (*model.SingleAssignment, error) {
	return f.assignments.Finalize(ctx, sessionID, draft)
}

func (f *QuoteFacade) Assignments(ctx context.Context, sessionID string) ([]model.SingleAssignment, error) {
	return f.assignments.List(ctx, sessionID)
}

func (f *QuoteFacade) SaveAssignments(ctx context.Context, sessionID string, assignments []model.SingleAssignment) ([]model.SingleAssignment, error) {
	return f.assignments.Save(ctx, sessionID, assignments)
}

func (f *QuoteFacade) DeleteAssignment(ctx context.Context, sessionID string, id int64) ([]model.SingleAssignment, error) {
	return f.assignments.Delete(ctx, sessionID, id)
}

func (f *QuoteFacade) ClearAssignments(ctx context.Context, sessionID string) error {
	return f.assignments.Clear(ctx, sessionID)
}

func (f *QuoteFacade) ClearAssignmentStore(ctx context.Context) error {
	return f.assignments.ClearStore(ctx)
}

func (f *QuoteFacade) Cart(ctx context.Context, sessionID string) (*model.CartSummary, error) {
	return f.assignments.Cart(ctx, sessionID)
}

func (f *QuoteFacade) Checkout(ctx context.Context, sessionID string) (string, error) {
	return f.checkout.Checkout(ctx, sessionID)
}

func (f *QuoteFacade) CheckoutItems(ctx context.Context, sessionID string, items []model.LineItem) (string, error) {
	return f.checkout.CheckoutWithItems(ctx, sessionID, items)
}

func (f *QuoteFacade) Sales(ctx context.Context, period model.SalesPeriod) ([]model.SalesBucket, error) {
	return f.sales.Sales(ctx, period)
}

func (f *QuoteFacade) Catalog() model.Catalog {
	return f.catalog
}

// Health pings every backing store and joins the failures.
func (f *QuoteFacade) Health(ctx context.Context) error {
	var errs []error
	for _, h := range f.health {
		if err := h.HealthCheck(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *QuoteFacade) OpenCheckouts(ctx context.Context, limit int) ([]model.CheckoutSession, error) {
	return f.checkout.OpenCheckouts(ctx, limit)
}

func (f *QuoteFacade) PaymentStatus(ctx context.Context, providerID string) (*model.PaymentSession, error) {
	return f.checkout.PaymentStatus(ctx, providerID)
}

func (f *QuoteFacade) CompleteCheckout(ctx context.Context, checkout model.CheckoutSession, amountCents int64) error {
	return f.checkout.Complete(ctx, checkout, amountCents)
}

func (f *QuoteFacade) ExpireCheckout(ctx context.Context, checkout model.CheckoutSession) error {
	return f.checkout.Expire(ctx, checkout)
}
