package handlers

import (
	"context"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// StagingFacade covers tasks collected before an assignment is finalized.
type StagingFacade interface {
	StagedTasks(ctx context.Context, sessionID string) ([]model.AssignmentTask, error)
	StageWordCount(ctx context.Context, sessionID, raw string) (*model.AssignmentTask, error)
	StageFiles(ctx context.Context, sessionID string, uploads []model.Upload) (*model.StageResult, error)
	UnstageTask(ctx context.Context, sessionID string, taskID int64) error
	ClearStaging(ctx context.Context, sessionID string) error
}

// AssignmentFacade encapsulates assignment and cart operations exposed via HTTP.
type AssignmentFacade interface {
	Finalize(ctx context.Context, sessionID string, draft model.AssignmentDraft) (*model.SingleAssignment, error)
	Assignments(ctx context.Context, sessionID string) ([]model.SingleAssignment, error)
	SaveAssignments(ctx context.Context, sessionID string, assignments []model.SingleAssignment) ([]model.SingleAssignment, error)
	DeleteAssignment(ctx context.Context, sessionID string, id int64) ([]model.SingleAssignment, error)
	ClearAssignments(ctx context.Context, sessionID string) error
	ClearAssignmentStore(ctx context.Context) error
	Cart(ctx context.Context, sessionID string) (*model.CartSummary, error)
}

// CheckoutFacade opens payment sessions.
type CheckoutFacade interface {
	Checkout(ctx context.Context, sessionID string) (string, error)
	CheckoutItems(ctx context.Context, sessionID string, items []model.LineItem) (string, error)
}

// SystemFacade provides analytics, catalog and readiness data.
type SystemFacade interface {
	Sales(ctx context.Context, period model.SalesPeriod) ([]model.SalesBucket, error)
	Catalog() model.Catalog
	Health(ctx context.Context) error
}

// QuoteFacade aggregates the full set of operations used across handlers.
type QuoteFacade interface {
	StagingFacade
	AssignmentFacade
	CheckoutFacade
	SystemFacade
}
