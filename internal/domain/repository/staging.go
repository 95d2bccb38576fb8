package repository

import (
	"context"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// StagingRepository holds tasks a session has staged but not finalized yet.
type StagingRepository interface {
	List(ctx context.Context, sessionID string) ([]model.AssignmentTask, error)
	Add(ctx context.Context, sessionID string, tasks ...model.AssignmentTask) error
	Remove(ctx context.Context, sessionID string, taskID int64) error
	Clear(ctx context.Context, sessionID string) error
}
