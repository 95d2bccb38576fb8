package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/gpsolutions/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		SiteURL:        "https://gps.example",
		Currency:       "usd",
		MaxUploadBytes: 10 << 20,
		ExtractWorkers: 2,
	}
}

func fixedIDs(t *testing.T, start int64) *IDGenerator {
	t.Helper()
	return &IDGenerator{now: func() time.Time { return time.UnixMilli(start) }}
}
