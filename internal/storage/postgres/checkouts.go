package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// Create stores a checkout session together with the highest assignment sequence the
// browser session had at that moment, so completion consumes only what was in the cart.
func (r *checkoutRepository) Create(ctx context.Context, session model.CheckoutSession) (*model.CheckoutSession, error) {
	const query = `INSERT INTO checkout_sessions (session_id, provider_id, url, status, amount_cents, currency, assignment_seq)
                   VALUES ($1, $2, $3, $4, $5, $6,
                           (SELECT COALESCE(MAX(seq), 0) FROM assignments WHERE session_id = $1))
                   RETURNING id, created_at, updated_at`
	if session.Status == "" {
		session.Status = model.CheckoutStatusOpen
	}
	err := r.storage.pool.QueryRow(ctx, query, session.SessionID, session.ProviderID, session.URL,
		string(session.Status), session.AmountCents, session.Currency).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &session, nil
}

func (r *checkoutRepository) SelectOpenBatch(ctx context.Context, limit int) ([]model.CheckoutSession, error) {
	const selectQuery = `SELECT id, session_id, provider_id, url, status, amount_cents, currency, created_at, updated_at
                         FROM checkout_sessions
                         WHERE status = 'OPEN'
                         ORDER BY updated_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`
	const touchQuery = `UPDATE checkout_sessions SET updated_at=NOW() WHERE id = ANY($1)`

	var sessions []model.CheckoutSession
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		var ids []int64
		for rows.Next() {
			var (
				s      model.CheckoutSession
				status string
			)
			if err := rows.Scan(&s.ID, &s.SessionID, &s.ProviderID, &s.URL, &status, &s.AmountCents, &s.Currency, &s.CreatedAt, &s.UpdatedAt); err != nil {
				return err
			}
			s.Status = model.CheckoutStatus(status)
			sessions = append(sessions, s)
			ids = append(ids, s.ID)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		rows.Close()

		if len(ids) == 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, touchQuery, ids); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *checkoutRepository) MarkExpired(ctx context.Context, id int64) error {
	const query = `UPDATE checkout_sessions SET status='EXPIRED', updated_at=NOW() WHERE id=$1 AND status='OPEN'`
	if _, err := r.storage.pool.Exec(ctx, query, id); err != nil {
		return err
	}
	return nil
}

// Complete marks the session paid, records the sale and consumes the browser session's
// assignments that existed when the checkout was created, in one transaction.
// Completing an already closed session is a no-op.
func (r *checkoutRepository) Complete(ctx context.Context, id int64, amountCents int64) error {
	const completeQuery = `UPDATE checkout_sessions SET status='COMPLETE', amount_cents=$2, updated_at=NOW()
                           WHERE id=$1 AND status='OPEN'
                           RETURNING session_id, assignment_seq`
	const insertSale = `INSERT INTO sales (checkout_id, amount_cents) VALUES ($1, $2)
                        ON CONFLICT (checkout_id) DO NOTHING`
	const consumeAssignments = `DELETE FROM assignments WHERE session_id=$1 AND seq <= $2`

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var (
			sessionID string
			lastSeq   int64
		)
		if err := tx.QueryRow(ctx, completeQuery, id, amountCents).Scan(&sessionID, &lastSeq); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		if _, err := tx.Exec(ctx, insertSale, id, amountCents); err != nil {
			return fmt.Errorf("record sale: %w", err)
		}
		if _, err := tx.Exec(ctx, consumeAssignments, sessionID, lastSeq); err != nil {
			return fmt.Errorf("consume assignments: %w", err)
		}
		return nil
	})
}

func (r *salesRepository) Buckets(ctx context.Context, period model.SalesPeriod) ([]model.SalesBucket, error) {
	const query = `SELECT to_char(date_trunc($1, created_at), $2) AS bucket, COUNT(*), COALESCE(SUM(amount_cents), 0)
                   FROM sales
                   GROUP BY bucket
                   ORDER BY bucket`

	unit, layout := "day", "YYYY-MM-DD"
	if period == model.SalesMonthly {
		unit, layout = "month", "YYYY-MM"
	}

	rows, err := r.storage.pool.Query(ctx, query, unit, layout)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.SalesBucket{}
	for rows.Next() {
		var b model.SalesBucket
		if err := rows.Scan(&b.Date, &b.Count, &b.RevenueCents); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
