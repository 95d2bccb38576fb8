package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

const listAssignmentsQuery = `SELECT a.id, a.session_id, a.project_type, a.topic, a.urgency_type, a.urgency_value, a.created_at,
                              t.id, t.word_count, t.file_name, t.file_size, t.file_ext, t.estimated
                              FROM assignments a
                              LEFT JOIN assignment_tasks t ON t.assignment_id = a.id
                              WHERE ($1 = '' OR a.session_id = $1)
                              ORDER BY a.seq, t.position`

func (r *assignmentRepository) List(ctx context.Context, sessionID string) ([]model.SingleAssignment, error) {
	rows, err := r.storage.pool.Query(ctx, listAssignmentsQuery, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.SingleAssignment{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			a         model.SingleAssignment
			urgency   string
			taskID    *int64
			wordCount *string
			fileName  *string
			fileSize  *int64
			fileExt   *string
			estimated *bool
		)
		if err := rows.Scan(&a.ID, &a.SessionID, &a.ProjectType, &a.Topic, &urgency, &a.UrgencyValue, &a.CreatedAt,
			&taskID, &wordCount, &fileName, &fileSize, &fileExt, &estimated); err != nil {
			return nil, err
		}
		a.UrgencyType = model.UrgencyType(urgency)

		pos, ok := index[a.ID]
		if !ok {
			a.Tasks = []model.AssignmentTask{}
			result = append(result, a)
			pos = len(result) - 1
			index[a.ID] = pos
		}
		if taskID == nil {
			continue
		}

		task := model.AssignmentTask{ID: *taskID}
		if wordCount != nil {
			task.WordCount = *wordCount
		}
		if fileName != nil {
			task.File = &model.FileRef{Name: *fileName}
			if fileSize != nil {
				task.File.Size = *fileSize
			}
			if fileExt != nil {
				task.File.Extension = *fileExt
			}
			if estimated != nil {
				task.File.Estimated = *estimated
			}
		}
		result[pos].Tasks = append(result[pos].Tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignments []model.SingleAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	const insertAssignment = `INSERT INTO assignments (id, session_id, project_type, topic, urgency_type, urgency_value, created_at)
                              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	const insertTask = `INSERT INTO assignment_tasks (assignment_id, position, id, word_count, file_name, file_size, file_ext, estimated)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, a := range assignments {
			createdAt := a.CreatedAt
			if createdAt.IsZero() {
				createdAt = time.Now().UTC()
			}
			if _, err := tx.Exec(ctx, insertAssignment, a.ID, a.SessionID, a.ProjectType, a.Topic,
				string(a.UrgencyType), a.UrgencyValue, createdAt); err != nil {
				return err
			}

			for pos, t := range a.Tasks {
				var (
					wordCount *string
					fileName  *string
					fileSize  *int64
					fileExt   *string
					estimated bool
				)
				if t.WordCount != "" {
					wc := t.WordCount
					wordCount = &wc
				}
				if t.File != nil {
					name, size, ext := t.File.Name, t.File.Size, t.File.Extension
					fileName, fileSize, fileExt = &name, &size, &ext
					estimated = t.File.Estimated
				}
				if _, err := tx.Exec(ctx, insertTask, a.ID, pos, t.ID, wordCount, fileName, fileSize, fileExt, estimated); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *assignmentRepository) DeleteByID(ctx context.Context, sessionID string, id int64) error {
	const query = `DELETE FROM assignments WHERE id=$1 AND ($2 = '' OR session_id = $2)`
	tag, err := r.storage.pool.Exec(ctx, query, id, sessionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *assignmentRepository) ClearAll(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM assignments WHERE ($1 = '' OR session_id = $1)`
	tag, err := r.storage.pool.Exec(ctx, query, sessionID)
	if err != nil {
		return err
	}
	r.storage.logger.Debug("assignments cleared", "session_scoped", sessionID != "", "rows", tag.RowsAffected())
	return nil
}
