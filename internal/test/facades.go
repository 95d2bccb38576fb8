package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// StagingFacadeStub provides controllable behaviour for staging endpoints.
type StagingFacadeStub struct {
	ListFn   func(context.Context, string) ([]model.AssignmentTask, error)
	WordsFn  func(context.Context, string, string) (*model.AssignmentTask, error)
	FilesFn  func(context.Context, string, []model.Upload) (*model.StageResult, error)
	RemoveFn func(context.Context, string, int64) error
	ClearFn  func(context.Context, string) error
}

// StagedTasks returns configured tasks or an empty list.
func (s StagingFacadeStub) StagedTasks(ctx context.Context, sessionID string) ([]model.AssignmentTask, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, sessionID)
	}
	return []model.AssignmentTask{}, nil
}

// StageWordCount echoes the raw count back as a task.
func (s StagingFacadeStub) StageWordCount(ctx context.Context, sessionID, raw string) (*model.AssignmentTask, error) {
	if s.WordsFn != nil {
		return s.WordsFn(ctx, sessionID, raw)
	}
	return &model.AssignmentTask{ID: 1, WordCount: raw}, nil
}

// StageFiles stages every upload as an estimated file task.
func (s StagingFacadeStub) StageFiles(ctx context.Context, sessionID string, uploads []model.Upload) (*model.StageResult, error) {
	if s.FilesFn != nil {
		return s.FilesFn(ctx, sessionID, uploads)
	}
	result := &model.StageResult{}
	for i, up := range uploads {
		result.Tasks = append(result.Tasks, model.AssignmentTask{
			ID:   int64(i + 1),
			File: &model.FileRef{Name: up.Name, Size: up.Size, Estimated: true},
		})
	}
	return result, nil
}

// UnstageTask delegates to override when provided.
func (s StagingFacadeStub) UnstageTask(ctx context.Context, sessionID string, taskID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, sessionID, taskID)
	}
	return nil
}

// ClearStaging delegates to override when provided.
func (s StagingFacadeStub) ClearStaging(ctx context.Context, sessionID string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, sessionID)
	}
	return nil
}

// AssignmentFacadeStub simulates assignment and cart operations.
type AssignmentFacadeStub struct {
	FinalizeFn   func(context.Context, string, model.AssignmentDraft) (*model.SingleAssignment, error)
	ListFn       func(context.Context, string) ([]model.SingleAssignment, error)
	SaveFn       func(context.Context, string, []model.SingleAssignment) ([]model.SingleAssignment, error)
	DeleteFn     func(context.Context, string, int64) ([]model.SingleAssignment, error)
	ClearFn      func(context.Context, string) error
	ClearStoreFn func(context.Context) error
	CartFn       func(context.Context, string) (*model.CartSummary, error)
}

// Finalize returns an assignment built from the draft.
func (s AssignmentFacadeStub) Finalize(ctx context.Context, sessionID string, draft model.AssignmentDraft) (*model.SingleAssignment, error) {
	if s.FinalizeFn != nil {
		return s.FinalizeFn(ctx, sessionID, draft)
	}
	return &model.SingleAssignment{
		ID:           1,
		ProjectType:  draft.ProjectType,
		Topic:        draft.Topic,
		UrgencyType:  model.UrgencyType(draft.UrgencyType),
		UrgencyValue: draft.UrgencyValue,
		SessionID:    sessionID,
	}, nil
}

// Assignments returns configured assignments or an empty list.
func (s AssignmentFacadeStub) Assignments(ctx context.Context, sessionID string) ([]model.SingleAssignment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, sessionID)
	}
	return []model.SingleAssignment{}, nil
}

// SaveAssignments returns the submitted list.
func (s AssignmentFacadeStub) SaveAssignments(ctx context.Context, sessionID string, assignments []model.SingleAssignment) ([]model.SingleAssignment, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, sessionID, assignments)
	}
	return assignments, nil
}

// DeleteAssignment returns an empty list unless overridden.
func (s AssignmentFacadeStub) DeleteAssignment(ctx context.Context, sessionID string, id int64) ([]model.SingleAssignment, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, sessionID, id)
	}
	return []model.SingleAssignment{}, nil
}

// ClearAssignments delegates to override when provided.
func (s AssignmentFacadeStub) ClearAssignments(ctx context.Context, sessionID string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, sessionID)
	}
	return nil
}

// ClearAssignmentStore delegates to override when provided.
func (s AssignmentFacadeStub) ClearAssignmentStore(ctx context.Context) error {
	if s.ClearStoreFn != nil {
		return s.ClearStoreFn(ctx)
	}
	return nil
}

// Cart returns an empty summary unless overridden.
func (s AssignmentFacadeStub) Cart(ctx context.Context, sessionID string) (*model.CartSummary, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, sessionID)
	}
	return &model.CartSummary{Quotes: []model.AssignmentQuote{}}, nil
}

// CheckoutFacadeStub simulates payment session creation.
type CheckoutFacadeStub struct {
	CheckoutFn func(context.Context, string) (string, error)
	ItemsFn    func(context.Context, string, []model.LineItem) (string, error)
}

// Checkout returns a fixed payment URL.
func (s CheckoutFacadeStub) Checkout(ctx context.Context, sessionID string) (string, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, sessionID)
	}
	return "https://checkout.example/session", nil
}

// CheckoutItems returns a fixed payment URL.
func (s CheckoutFacadeStub) CheckoutItems(ctx context.Context, sessionID string, items []model.LineItem) (string, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, sessionID, items)
	}
	return "https://checkout.example/items", nil
}

// SystemFacadeStub covers analytics, catalog and health endpoints.
type SystemFacadeStub struct {
	SalesFn   func(context.Context, model.SalesPeriod) ([]model.SalesBucket, error)
	CatalogV  model.Catalog
	HealthErr error
}

// Sales returns configured buckets or an empty list.
func (s SystemFacadeStub) Sales(ctx context.Context, period model.SalesPeriod) ([]model.SalesBucket, error) {
	if s.SalesFn != nil {
		return s.SalesFn(ctx, period)
	}
	return []model.SalesBucket{}, nil
}

// Catalog returns the configured catalog.
func (s SystemFacadeStub) Catalog() model.Catalog {
	return s.CatalogV
}

// Health returns the configured error.
func (s SystemFacadeStub) Health(context.Context) error {
	return s.HealthErr
}

// QuoteFacadeStub aggregates facade dependencies for HTTP layer tests.
type QuoteFacadeStub struct {
	StagingFacadeStub
	AssignmentFacadeStub
	CheckoutFacadeStub
	SystemFacadeStub
}

// SettleCall stores information about CompleteCheckout and ExpireCheckout invocations.
type SettleCall struct {
	CheckoutID  int64
	Completed   bool
	AmountCents int64
}

// WorkerFacadeStub mimics reconciler interactions with the application facade.
type WorkerFacadeStub struct {
	Batches    [][]model.CheckoutSession
	OpenFn     func(context.Context, int) ([]model.CheckoutSession, error)
	StatusFn   func(context.Context, string) (*model.PaymentSession, error)
	CompleteFn func(context.Context, model.CheckoutSession, int64) error
	Settled    []SettleCall
	mu         sync.Mutex
	openCalls  int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// OpenCheckouts returns batches from configured queue.
func (s *WorkerFacadeStub) OpenCheckouts(ctx context.Context, limit int) ([]model.CheckoutSession, error) {
	if s.OpenFn != nil {
		return s.OpenFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.openCalls, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// PaymentStatus reports a paid session unless overridden.
func (s *WorkerFacadeStub) PaymentStatus(ctx context.Context, providerID string) (*model.PaymentSession, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, providerID)
	}
	return &model.PaymentSession{ID: providerID, Status: model.PaymentSessionComplete, PaymentStatus: model.PaymentStatusPaid}, nil
}

// CompleteCheckout records completions.
func (s *WorkerFacadeStub) CompleteCheckout(ctx context.Context, checkout model.CheckoutSession, amountCents int64) error {
	if s.CompleteFn != nil {
		if err := s.CompleteFn(ctx, checkout, amountCents); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Settled = append(s.Settled, SettleCall{CheckoutID: checkout.ID, Completed: true, AmountCents: amountCents})
	return nil
}

// ExpireCheckout records expirations.
func (s *WorkerFacadeStub) ExpireCheckout(ctx context.Context, checkout model.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Settled = append(s.Settled, SettleCall{CheckoutID: checkout.ID})
	return nil
}
