package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/polkiloo/gpsolutions/internal/config"
	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/domain/repository"
	"github.com/polkiloo/gpsolutions/internal/extract"
	"github.com/polkiloo/gpsolutions/internal/pricing"
)

// WordCounter counts words across a batch of uploaded documents.
type WordCounter interface {
	Count(ctx context.Context, docs []extract.Document) ([]extract.Result, error)
}

// StagingUseCase manages tasks a session collects before finalizing an assignment.
type StagingUseCase struct {
	staging        repository.StagingRepository
	counter        WordCounter
	ids            *IDGenerator
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewStagingUseCase constructs StagingUseCase.
func NewStagingUseCase(staging repository.StagingRepository, counter WordCounter, ids *IDGenerator, cfg *config.Config, logger *slog.Logger) *StagingUseCase {
	return &StagingUseCase{
		staging:        staging,
		counter:        counter,
		ids:            ids,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
	}
}

// AddWordCount stages a task from a user-entered word count.
func (u *StagingUseCase) AddWordCount(ctx context.Context, sessionID, raw string) (*model.AssignmentTask, error) {
	if raw == "" {
		return nil, domainErrors.Validation("Enter a word count before adding.")
	}
	n, err := pricing.ParseWordCount(raw)
	if err != nil {
		return nil, domainErrors.Validation("Enter a valid positive number for words.")
	}

	task := model.AssignmentTask{ID: u.ids.Next(), WordCount: strconv.FormatInt(n, 10)}
	if err := u.staging.Add(ctx, sessionID, task); err != nil {
		return nil, err
	}
	return &task, nil
}

// AddFiles stages accepted uploads. Rejected files and extraction failures do not fail the batch.
func (u *StagingUseCase) AddFiles(ctx context.Context, sessionID string, uploads []model.Upload) (*model.StageResult, error) {
	result := &model.StageResult{Tasks: []model.AssignmentTask{}, Rejected: []model.Rejection{}, Warnings: []string{}}

	accepted := make([]model.Upload, 0, len(uploads))
	for _, up := range uploads {
		switch {
		case !extract.Accepts(up.Name):
			result.Rejected = append(result.Rejected, model.Rejection{
				Name:    up.Name,
				Err:     domainErrors.ErrUnsupportedFile,
				Message: fmt.Sprintf("Unsupported file type: %s", up.Name),
			})
		case u.maxUploadBytes > 0 && up.Size > u.maxUploadBytes:
			result.Rejected = append(result.Rejected, model.Rejection{
				Name:    up.Name,
				Err:     domainErrors.ErrFileTooLarge,
				Message: fmt.Sprintf("File too large (max %s): %s", formatLimit(u.maxUploadBytes), up.Name),
			})
		default:
			accepted = append(accepted, up)
		}
	}
	if len(accepted) == 0 {
		return result, nil
	}

	docs := make([]extract.Document, len(accepted))
	for i, up := range accepted {
		docs[i] = extract.Document{Name: up.Name, Data: up.Data}
	}
	counts, err := u.counter.Count(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}

	for i, up := range accepted {
		task := model.AssignmentTask{
			ID:   u.ids.Next(),
			File: &model.FileRef{Name: up.Name, Size: up.Size, Extension: extract.Extension(up.Name)},
		}
		if counts[i].Err != nil {
			task.File.Estimated = true
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s, added with default word count.", up.Name))
		} else {
			task.WordCount = strconv.Itoa(counts[i].Words)
		}
		result.Tasks = append(result.Tasks, task)
	}

	if err := u.staging.Add(ctx, sessionID, result.Tasks...); err != nil {
		return nil, err
	}
	u.logger.Debug("files staged", "session", sessionID,
		"staged", len(result.Tasks), "rejected", len(result.Rejected), "estimated", len(result.Warnings))
	return result, nil
}

// List returns the session's staged tasks in insertion order.
func (u *StagingUseCase) List(ctx context.Context, sessionID string) ([]model.AssignmentTask, error) {
	return u.staging.List(ctx, sessionID)
}

// Remove drops one staged task.
func (u *StagingUseCase) Remove(ctx context.Context, sessionID string, taskID int64) error {
	return u.staging.Remove(ctx, sessionID, taskID)
}

// Clear empties the session's staging list.
func (u *StagingUseCase) Clear(ctx context.Context, sessionID string) error {
	return u.staging.Clear(ctx, sessionID)
}

func formatLimit(n int64) string {
	if n >= 1<<20 && n%(1<<20) == 0 {
		return strconv.FormatInt(n>>20, 10) + "MB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}
