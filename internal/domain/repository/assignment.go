package repository

import (
	"context"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// AssignmentRepository persists finalized assignments. An empty sessionID addresses every session.
type AssignmentRepository interface {
	List(ctx context.Context, sessionID string) ([]model.SingleAssignment, error)
	Create(ctx context.Context, assignments []model.SingleAssignment) error
	DeleteByID(ctx context.Context, sessionID string, id int64) error
	ClearAll(ctx context.Context, sessionID string) error
}
