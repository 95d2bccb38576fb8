package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/adapter/payment"
	"github.com/polkiloo/gpsolutions/internal/app"
	"github.com/polkiloo/gpsolutions/internal/config"
	"github.com/polkiloo/gpsolutions/internal/domain/repository"
	"github.com/polkiloo/gpsolutions/internal/storage/postgres"
	"github.com/polkiloo/gpsolutions/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		PaymentAPIAddress: "http://localhost",
		PaymentSecretKey:  "sk_test",
		SessionSecret:     "secret",
		SessionTTL:        time.Hour,
		StagingTTL:        time.Hour,
		SiteURL:           "http://localhost:3000",
		Currency:          "usd",
		MaxUploadBytes:    1 << 20,
		ExtractWorkers:    1,
		ReconcileInterval: time.Millisecond,
		ReconcileBatch:    1,
		WorkerPoolSize:    1,
		ShutdownTimeout:   time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var (
		facade *app.QuoteFacade
		engine *gin.Engine
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.AssignmentRepository(&test.AssignmentRepositoryStub{})),
			fx.Replace(repository.CheckoutRepository(&test.CheckoutRepositoryStub{})),
			fx.Replace(repository.SalesRepository(&test.SalesRepositoryStub{})),
			fx.Replace(payment.Client(&test.PaymentClientStub{})),
		),
		fx.Populate(&facade, &engine),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	if facade == nil {
		t.Fatal("expected quote facade instance")
	}
	if engine == nil {
		t.Fatal("expected router instance")
	}
	if got := facade.Catalog(); len(got.ProjectTypes) == 0 {
		t.Fatal("expected default catalog to be wired")
	}
}
