package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/domain/repository"
)

// AssignmentRepositoryStub keeps assignments in memory, keyed by session.
type AssignmentRepositoryStub struct {
	ListFn   func(context.Context, string) ([]model.SingleAssignment, error)
	CreateFn func(context.Context, []model.SingleAssignment) error
	DeleteFn func(context.Context, string, int64) error
	ClearFn  func(context.Context, string) error
	Err      error

	mu          sync.Mutex
	Assignments []model.SingleAssignment
	Cleared     []string
}

// List returns stored assignments of the session, or all of them for an empty session.
func (s *AssignmentRepositoryStub) List(ctx context.Context, sessionID string) ([]model.SingleAssignment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, sessionID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.SingleAssignment{}
	for _, a := range s.Assignments {
		if sessionID == "" || a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Create appends assignments unless an id is already taken.
func (s *AssignmentRepositoryStub) Create(ctx context.Context, assignments []model.SingleAssignment) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, assignments)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range assignments {
		for _, existing := range s.Assignments {
			if existing.ID == a.ID {
				return domainErrors.ErrAlreadyExists
			}
		}
	}
	s.Assignments = append(s.Assignments, assignments...)
	return nil
}

// DeleteByID removes the matching assignment.
func (s *AssignmentRepositoryStub) DeleteByID(ctx context.Context, sessionID string, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, sessionID, id)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.Assignments {
		if a.ID == id && (sessionID == "" || a.SessionID == sessionID) {
			s.Assignments = append(s.Assignments[:i], s.Assignments[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ClearAll drops the session's assignments, or every assignment for an empty session.
func (s *AssignmentRepositoryStub) ClearAll(ctx context.Context, sessionID string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, sessionID)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cleared = append(s.Cleared, sessionID)
	kept := s.Assignments[:0]
	for _, a := range s.Assignments {
		if sessionID != "" && a.SessionID != sessionID {
			kept = append(kept, a)
		}
	}
	s.Assignments = kept
	return nil
}

// StagingRepositoryStub keeps staged tasks in memory with optional overrides.
type StagingRepositoryStub struct {
	ListFn  func(context.Context, string) ([]model.AssignmentTask, error)
	AddFn   func(context.Context, string, ...model.AssignmentTask) error
	ClearFn func(context.Context, string) error
	Err     error

	mu    sync.Mutex
	Tasks map[string][]model.AssignmentTask
}

// List returns a copy of the session's staged tasks.
func (s *StagingRepositoryStub) List(ctx context.Context, sessionID string) ([]model.AssignmentTask, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, sessionID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.AssignmentTask{}, s.Tasks[sessionID]...), nil
}

// Add appends tasks to the session.
func (s *StagingRepositoryStub) Add(ctx context.Context, sessionID string, tasks ...model.AssignmentTask) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, sessionID, tasks...)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Tasks == nil {
		s.Tasks = make(map[string][]model.AssignmentTask)
	}
	s.Tasks[sessionID] = append(s.Tasks[sessionID], tasks...)
	return nil
}

// Remove deletes one task or reports it missing.
func (s *StagingRepositoryStub) Remove(ctx context.Context, sessionID string, taskID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.Tasks[sessionID]
	for i, t := range tasks {
		if t.ID == taskID {
			s.Tasks[sessionID] = append(tasks[:i], tasks[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Clear drops the session's staged tasks.
func (s *StagingRepositoryStub) Clear(ctx context.Context, sessionID string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, sessionID)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Tasks, sessionID)
	return nil
}

// CompleteCall records a CheckoutRepository.Complete invocation.
type CompleteCall struct {
	ID          int64
	AmountCents int64
}

// CheckoutRepositoryStub records checkout persistence calls.
type CheckoutRepositoryStub struct {
	CreateFn   func(context.Context, model.CheckoutSession) (*model.CheckoutSession, error)
	SelectFn   func(context.Context, int) ([]model.CheckoutSession, error)
	CompleteFn func(context.Context, int64, int64) error
	ExpireFn   func(context.Context, int64) error

	mu        sync.Mutex
	Created   []model.CheckoutSession
	Completed []CompleteCall
	Expired   []int64
}

// Create stores the session and assigns the next identifier.
func (s *CheckoutRepositoryStub) Create(ctx context.Context, session model.CheckoutSession) (*model.CheckoutSession, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, session)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session.ID = int64(len(s.Created) + 1)
	s.Created = append(s.Created, session)
	return &session, nil
}

// SelectOpenBatch returns configured open sessions.
func (s *CheckoutRepositoryStub) SelectOpenBatch(ctx context.Context, limit int) ([]model.CheckoutSession, error) {
	if s.SelectFn != nil {
		return s.SelectFn(ctx, limit)
	}
	return nil, nil
}

// MarkExpired records the expired checkout.
func (s *CheckoutRepositoryStub) MarkExpired(ctx context.Context, id int64) error {
	if s.ExpireFn != nil {
		return s.ExpireFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Expired = append(s.Expired, id)
	return nil
}

// Complete records the completed checkout.
func (s *CheckoutRepositoryStub) Complete(ctx context.Context, id int64, amountCents int64) error {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, id, amountCents)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Completed = append(s.Completed, CompleteCall{ID: id, AmountCents: amountCents})
	return nil
}

// SalesRepositoryStub returns configured buckets.
type SalesRepositoryStub struct {
	Result  []model.SalesBucket
	Err     error
	Periods []model.SalesPeriod
}

// Buckets records the requested period.
func (s *SalesRepositoryStub) Buckets(ctx context.Context, period model.SalesPeriod) ([]model.SalesBucket, error) {
	s.Periods = append(s.Periods, period)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Result, nil
}

var (
	_ repository.AssignmentRepository = (*AssignmentRepositoryStub)(nil)
	_ repository.StagingRepository    = (*StagingRepositoryStub)(nil)
	_ repository.CheckoutRepository   = (*CheckoutRepositoryStub)(nil)
	_ repository.SalesRepository      = (*SalesRepositoryStub)(nil)
)
