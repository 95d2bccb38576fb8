package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/gpsolutions/internal/adapter/payment"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// CheckoutFacade exposes the subset of application functionality required by the worker.
type CheckoutFacade interface {
	OpenCheckouts(ctx context.Context, limit int) ([]model.CheckoutSession, error)
	PaymentStatus(ctx context.Context, providerID string) (*model.PaymentSession, error)
	CompleteCheckout(ctx context.Context, checkout model.CheckoutSession, amountCents int64) error
	ExpireCheckout(ctx context.Context, checkout model.CheckoutSession) error
}

// CheckoutReconciler polls the payment provider and settles open checkout sessions concurrently.
type CheckoutReconciler struct {
	facade       CheckoutFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.CheckoutSession
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCheckoutReconciler constructs the reconciler worker pool.
func NewCheckoutReconciler(facade CheckoutFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *CheckoutReconciler {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &CheckoutReconciler{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.CheckoutSession, batchSize*workers),
	}
}

// Start launches background reconciliation.
func (r *CheckoutReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *CheckoutReconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *CheckoutReconciler) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *CheckoutReconciler) fetchAndDispatch(ctx context.Context) {
	sessions, err := r.facade.OpenCheckouts(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("fetch open checkouts failed", slog.String("error", err.Error()))
		return
	}
	for _, s := range sessions {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- s:
		}
	}
}

func (r *CheckoutReconciler) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case checkout, ok := <-r.jobs:
			if !ok {
				return
			}
			r.reconcile(ctx, checkout)
		}
	}
}

func (r *CheckoutReconciler) reconcile(ctx context.Context, checkout model.CheckoutSession) {
	status, err := r.facade.PaymentStatus(ctx, checkout.ProviderID)
	if err != nil {
		var limited payment.TooManyRequestsError
		switch {
		case errors.As(err, &limited):
			r.logger.Warn("payment provider rate limited", slog.Duration("retry_after", limited.RetryAfter))
			sleep(ctx, limited.RetryAfter)
		case errors.Is(err, payment.ErrSessionNotFound):
			r.expire(ctx, checkout)
		default:
			r.logger.Error("payment status fetch failed",
				slog.String("provider_id", checkout.ProviderID), slog.String("error", err.Error()))
		}
		return
	}

	switch {
	case status.Status == model.PaymentSessionComplete && status.PaymentStatus == model.PaymentStatusPaid:
		var amount int64
		if status.AmountTotal != nil {
			amount = *status.AmountTotal
		}
		if err := r.facade.CompleteCheckout(ctx, checkout, amount); err != nil {
			r.logger.Error("complete checkout failed",
				slog.Int64("checkout_id", checkout.ID), slog.String("error", err.Error()))
			return
		}
		r.logger.Info("checkout completed", slog.Int64("checkout_id", checkout.ID), slog.String("session", checkout.SessionID))
	case status.Status == model.PaymentSessionExpired:
		r.expire(ctx, checkout)
	}
}

func (r *CheckoutReconciler) expire(ctx context.Context, checkout model.CheckoutSession) {
	if err := r.facade.ExpireCheckout(ctx, checkout); err != nil {
		r.logger.Error("expire checkout failed",
			slog.Int64("checkout_id", checkout.ID), slog.String("error", err.Error()))
	}
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
