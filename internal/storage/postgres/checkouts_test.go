package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

var checkoutColumns = []string{"id", "session_id", "provider_id", "url", "status", "amount_cents", "currency", "created_at", "updated_at"}

func TestCheckoutRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &checkoutRepository{storage: storage}

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO checkout_sessions .*assignment_seq.*SELECT COALESCE\(MAX\(seq\), 0\) FROM assignments WHERE session_id = \$1`).
		WithArgs("sess", "cs_1", "https://pay.local/cs_1", "OPEN", int64(2500), "usd").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	session, err := repo.Create(context.Background(), model.CheckoutSession{
		SessionID:   "sess",
		ProviderID:  "cs_1",
		URL:         "https://pay.local/cs_1",
		AmountCents: 2500,
		Currency:    "usd",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ID != 7 || session.Status != model.CheckoutStatusOpen {
		t.Fatalf("unexpected session: %+v", session)
	}

	mock.ExpectQuery("INSERT INTO checkout_sessions").WithArgs(
		pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
	).WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Create(context.Background(), model.CheckoutSession{ProviderID: "cs_1"}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	mock.ExpectQuery("INSERT INTO checkout_sessions").WithArgs(
		pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
	).WillReturnError(errors.New("other"))
	if _, err := repo.Create(context.Background(), model.CheckoutSession{ProviderID: "cs_2"}); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCheckoutRepositorySelectOpenBatch(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &checkoutRepository{storage: storage}

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, session_id, provider_id").WithArgs(5).WillReturnRows(
		pgxmockv3.NewRows(checkoutColumns).
			AddRow(int64(1), "s1", "cs_1", "u1", "OPEN", int64(100), "usd", now, now).
			AddRow(int64(2), "s2", "cs_2", "u2", "OPEN", int64(200), "usd", now, now),
	)
	mock.ExpectExec("UPDATE checkout_sessions SET updated_at").WithArgs([]int64{1, 2}).WillReturnResult(pgxmockv3.NewResult("UPDATE", 2))
	mock.ExpectCommit()

	sessions, err := repo.SelectOpenBatch(context.Background(), 5)
	if err != nil || len(sessions) != 2 || sessions[1].Status != model.CheckoutStatusOpen || sessions[1].ProviderID != "cs_2" {
		t.Fatalf("unexpected result: %v err=%v", sessions, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, session_id, provider_id").WithArgs(1).WillReturnRows(pgxmockv3.NewRows(checkoutColumns))
	mock.ExpectCommit()
	sessions, err = repo.SelectOpenBatch(context.Background(), 1)
	if err != nil || len(sessions) != 0 {
		t.Fatalf("expected empty batch: %v err=%v", sessions, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, session_id, provider_id").WithArgs(1).WillReturnError(errors.New("query"))
	mock.ExpectRollback()
	if _, err := repo.SelectOpenBatch(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, session_id, provider_id").WithArgs(1).WillReturnRows(
		pgxmockv3.NewRows(checkoutColumns).AddRow("bad", "s1", "cs_1", "u1", "OPEN", int64(100), "usd", now, now),
	)
	mock.ExpectRollback()
	if _, err := repo.SelectOpenBatch(context.Background(), 1); err == nil {
		t.Fatal("expected scan error")
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, session_id, provider_id").WithArgs(1).WillReturnRows(
		pgxmockv3.NewRows(checkoutColumns).AddRow(int64(1), "s1", "cs_1", "u1", "OPEN", int64(100), "usd", now, now),
	)
	mock.ExpectExec("UPDATE checkout_sessions SET updated_at").WithArgs([]int64{1}).WillReturnError(errors.New("update"))
	mock.ExpectRollback()
	if _, err := repo.SelectOpenBatch(context.Background(), 1); err == nil {
		t.Fatal("expected update error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCheckoutRepositorySelectOpenBatchRowsError(t *testing.T) {
	rows := &errorRows{err: errors.New("rows err")}
	tx := &rowsErrorTx{rows: rows}
	storage := &Storage{pool: &rowsErrorTxPool{tx: tx}}
	repo := &checkoutRepository{storage: storage}

	if _, err := repo.SelectOpenBatch(context.Background(), 1); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestCheckoutRepositoryMarkExpired(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &checkoutRepository{storage: storage}

	mock.ExpectExec("UPDATE checkout_sessions SET status='EXPIRED'").WithArgs(int64(3)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.MarkExpired(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE checkout_sessions SET status='EXPIRED'").WithArgs(int64(4)).WillReturnError(errors.New("boom"))
	if err := repo.MarkExpired(context.Background(), 4); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCheckoutRepositoryComplete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &checkoutRepository{storage: storage}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE checkout_sessions SET status='COMPLETE'").WithArgs(int64(7), int64(2500)).
		WillReturnRows(pgxmockv3.NewRows([]string{"session_id", "assignment_seq"}).AddRow("sess", int64(41)))
	mock.ExpectExec("INSERT INTO sales").WithArgs(int64(7), int64(2500)).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM assignments WHERE session_id=\$1 AND seq <= \$2`).WithArgs("sess", int64(41)).WillReturnResult(pgxmockv3.NewResult("DELETE", 2))
	mock.ExpectCommit()
	if err := repo.Complete(context.Background(), 7, 2500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE checkout_sessions SET status='COMPLETE'").WithArgs(int64(7), int64(2500)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectCommit()
	if err := repo.Complete(context.Background(), 7, 2500); err != nil {
		t.Fatalf("completing a closed session must be a no-op, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE checkout_sessions SET status='COMPLETE'").WithArgs(int64(8), int64(100)).
		WillReturnRows(pgxmockv3.NewRows([]string{"session_id", "assignment_seq"}).AddRow("sess", int64(3)))
	mock.ExpectExec("INSERT INTO sales").WithArgs(int64(8), int64(100)).WillReturnError(errors.New("insert"))
	mock.ExpectRollback()
	if err := repo.Complete(context.Background(), 8, 100); err == nil {
		t.Fatal("expected sale insert error")
	}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE checkout_sessions SET status='COMPLETE'").WithArgs(int64(9), int64(100)).WillReturnError(errors.New("update"))
	mock.ExpectRollback()
	if err := repo.Complete(context.Background(), 9, 100); err == nil {
		t.Fatal("expected update error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSalesRepositoryBuckets(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &salesRepository{storage: storage}

	mock.ExpectQuery("SELECT to_char").WithArgs("day", "YYYY-MM-DD").WillReturnRows(
		pgxmockv3.NewRows([]string{"bucket", "count", "sum"}).
			AddRow("2025-01-01", int64(2), int64(3000)).
			AddRow("2025-01-02", int64(1), int64(999)),
	)
	buckets, err := repo.Buckets(context.Background(), model.SalesDaily)
	if err != nil || len(buckets) != 2 || buckets[0].Count != 2 || buckets[1].RevenueCents != 999 {
		t.Fatalf("unexpected buckets: %v err=%v", buckets, err)
	}

	mock.ExpectQuery("SELECT to_char").WithArgs("month", "YYYY-MM").WillReturnRows(
		pgxmockv3.NewRows([]string{"bucket", "count", "sum"}),
	)
	buckets, err = repo.Buckets(context.Background(), model.SalesMonthly)
	if err != nil || buckets == nil || len(buckets) != 0 {
		t.Fatalf("expected empty buckets, got %v err=%v", buckets, err)
	}

	mock.ExpectQuery("SELECT to_char").WithArgs("day", "YYYY-MM-DD").WillReturnError(errors.New("query"))
	if _, err := repo.Buckets(context.Background(), model.SalesDaily); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("SELECT to_char").WithArgs("day", "YYYY-MM-DD").WillReturnRows(
		pgxmockv3.NewRows([]string{"bucket", "count", "sum"}).AddRow("2025-01-01", "bad", int64(1)),
	)
	if _, err := repo.Buckets(context.Background(), model.SalesDaily); err == nil {
		t.Fatal("expected scan error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
