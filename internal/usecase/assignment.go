package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/domain/repository"
	"github.com/polkiloo/gpsolutions/internal/pricing"
)

// AssignmentUseCase turns staged tasks into persisted assignments and prices the cart.
type AssignmentUseCase struct {
	assignments repository.AssignmentRepository
	staging     repository.StagingRepository
	ids         *IDGenerator
	logger      *slog.Logger
}

// NewAssignmentUseCase constructs AssignmentUseCase.
func NewAssignmentUseCase(assignments repository.AssignmentRepository, staging repository.StagingRepository, ids *IDGenerator, logger *slog.Logger) *AssignmentUseCase {
	return &AssignmentUseCase{assignments: assignments, staging: staging, ids: ids, logger: logger}
}

// Finalize validates the draft against the session's staged tasks and persists the assignment.
// Nothing is stored or cleared when validation fails.
func (u *AssignmentUseCase) Finalize(ctx context.Context, sessionID string, draft model.AssignmentDraft) (*model.SingleAssignment, error) {
	projectType := strings.TrimSpace(draft.ProjectType)
	if projectType == "" {
		return nil, domainErrors.Validation("Please select a project type.")
	}
	topic := strings.TrimSpace(draft.Topic)
	if topic == "" {
		return nil, domainErrors.Validation("Please select a topic.")
	}
	urgencyType, err := model.ParseUrgencyType(draft.UrgencyType)
	if err != nil {
		return nil, domainErrors.Validation("Please choose urgency in days or hours.")
	}
	urgencyValue := strings.TrimSpace(draft.UrgencyValue)
	if _, err := pricing.ParseUrgencyValue(urgencyValue); err != nil {
		return nil, domainErrors.Validation(fmt.Sprintf("Please enter urgency in %s.", urgencyType))
	}

	staged, err := u.staging.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(staged) == 0 {
		return nil, domainErrors.Validation("Add at least one task (file or word count).")
	}

	assignment := model.SingleAssignment{
		ID:           u.ids.Next(),
		ProjectType:  projectType,
		Topic:        topic,
		UrgencyType:  urgencyType,
		UrgencyValue: urgencyValue,
		Tasks:        staged,
		SessionID:    sessionID,
	}
	if err := u.assignments.Create(ctx, []model.SingleAssignment{assignment}); err != nil {
		return nil, err
	}

	if err := u.staging.Clear(ctx, sessionID); err != nil {
		u.logger.Warn("staging not cleared after finalize", "session", sessionID, "error", err)
	}
	return &assignment, nil
}

// Save appends client-built assignments to the session's store and returns the updated list.
// Urgency and word counts are validated and canonicalized; nothing is stored when any is invalid.
func (u *AssignmentUseCase) Save(ctx context.Context, sessionID string, assignments []model.SingleAssignment) ([]model.SingleAssignment, error) {
	batch := make([]model.SingleAssignment, 0, len(assignments))
	for _, a := range assignments {
		normalized, err := normalizeSaved(a)
		if err != nil {
			return nil, err
		}
		if normalized.ID == 0 {
			normalized.ID = u.ids.Next()
		}
		normalized.SessionID = sessionID
		batch = append(batch, normalized)
	}

	if len(batch) > 0 {
		if err := u.assignments.Create(ctx, batch); err != nil {
			return nil, err
		}
	}
	return u.assignments.List(ctx, sessionID)
}

// normalizeSaved applies the same boundary parsing to a client-built assignment
// that Finalize and AddWordCount apply to their inputs.
func normalizeSaved(a model.SingleAssignment) (model.SingleAssignment, error) {
	urgencyType, err := model.ParseUrgencyType(string(a.UrgencyType))
	if err != nil {
		return a, domainErrors.Validation("Please choose urgency in days or hours.")
	}
	a.UrgencyType = urgencyType
	a.UrgencyValue = strings.TrimSpace(a.UrgencyValue)
	if _, err := pricing.ParseUrgencyValue(a.UrgencyValue); err != nil {
		return a, domainErrors.Validation(fmt.Sprintf("Please enter urgency in %s.", urgencyType))
	}

	tasks := make([]model.AssignmentTask, 0, len(a.Tasks))
	for _, t := range a.Tasks {
		if t.IsDegenerate() {
			continue
		}
		if t.WordCount != "" {
			words, err := pricing.ParseWordCount(t.WordCount)
			if err != nil {
				return a, domainErrors.Validation("Enter a valid positive number for words.")
			}
			t.WordCount = strconv.FormatInt(words, 10)
		}
		tasks = append(tasks, t)
	}
	a.Tasks = tasks
	return a, nil
}

// List returns the session's assignments in insertion order.
func (u *AssignmentUseCase) List(ctx context.Context, sessionID string) ([]model.SingleAssignment, error) {
	return u.assignments.List(ctx, sessionID)
}

// Delete removes one assignment and returns what is left.
func (u *AssignmentUseCase) Delete(ctx context.Context, sessionID string, id int64) ([]model.SingleAssignment, error) {
	if err := u.assignments.DeleteByID(ctx, sessionID, id); err != nil {
		return nil, err
	}
	return u.assignments.List(ctx, sessionID)
}

// Clear removes every assignment of the session.
func (u *AssignmentUseCase) Clear(ctx context.Context, sessionID string) error {
	return u.assignments.ClearAll(ctx, sessionID)
}

// ClearStore wipes assignments of all sessions.
func (u *AssignmentUseCase) ClearStore(ctx context.Context) error {
	if err := u.assignments.ClearAll(ctx, ""); err != nil {
		return err
	}
	u.logger.Info("assignment store cleared")
	return nil
}

// Cart prices the session's assignments and totals its staged words.
func (u *AssignmentUseCase) Cart(ctx context.Context, sessionID string) (*model.CartSummary, error) {
	staged, err := u.staging.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	assignments, err := u.assignments.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary := pricing.Aggregate(staged, assignments)
	return &summary, nil
}
