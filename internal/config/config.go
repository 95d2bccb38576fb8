package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	PaymentAPIAddress string
	PaymentSecretKey  string
	SiteURL           string
	Currency          string
	SessionSecret     string
	SessionTTL        time.Duration
	AdminKeyHash      string
	CatalogFile       string
	RedisAddress      string
	RedisPassword     string
	StagingTTL        time.Duration
	MaxUploadBytes    int64
	ExtractWorkers    int
	MaxTextBytes      int64
	ReconcileInterval time.Duration
	ReconcileBatch    int
	WorkerPoolSize    int
	ShutdownTimeout   time.Duration
	LogLevel          string
}

const (
	defaultEnvFile           = ".env"
	defaultRunAddress        = ":8080"
	defaultPaymentAPIAddress = "https://api.stripe.com"
	defaultSiteURL           = "http://localhost:3000"
	defaultCurrency          = "usd"
	defaultSessionSecret     = "change-me-in-production"
	defaultSessionTTL        = 7 * 24 * time.Hour
	defaultStagingTTL        = 24 * time.Hour
	defaultMaxUploadBytes    = 10 << 20
	defaultExtractWorkers    = 4
	defaultMaxTextBytes      = 32 << 20
	defaultReconcileInterval = 30 * time.Second
	defaultReconcileBatch    = 32
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
	defaultLogLevel          = "info"
)

// Load parses configuration from flags, environment variables and an optional .env file.
func Load() (*Config, error) {
	lookup, err := withDotEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], lookup)
}

type envLookup func(string) (string, bool)

// withDotEnv layers values from ENV_FILE (default .env) under the process environment.
// A missing file is not an error.
func withDotEnv(lookup envLookup) (envLookup, error) {
	path := getString(lookup, "ENV_FILE", defaultEnvFile)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		PaymentAPIAddress: getString(lookup, "PAYMENT_API_ADDRESS", defaultPaymentAPIAddress),
		PaymentSecretKey:  getString(lookup, "PAYMENT_SECRET_KEY", ""),
		SiteURL:           getString(lookup, "SITE_URL", defaultSiteURL),
		Currency:          getString(lookup, "CURRENCY", defaultCurrency),
		SessionSecret:     getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:        getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		AdminKeyHash:      getString(lookup, "ADMIN_KEY_HASH", ""),
		CatalogFile:       getString(lookup, "CATALOG_FILE", ""),
		RedisAddress:      getString(lookup, "REDIS_ADDRESS", ""),
		RedisPassword:     getString(lookup, "REDIS_PASSWORD", ""),
		StagingTTL:        getDuration(lookup, "STAGING_TTL", defaultStagingTTL),
		MaxUploadBytes:    getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		ExtractWorkers:    getInt(lookup, "EXTRACT_WORKERS", defaultExtractWorkers),
		MaxTextBytes:      getInt64(lookup, "EXTRACT_MAX_TEXT_BYTES", defaultMaxTextBytes),
		ReconcileInterval: getDuration(lookup, "RECONCILE_INTERVAL", defaultReconcileInterval),
		ReconcileBatch:    getInt(lookup, "RECONCILE_BATCH", defaultReconcileBatch),
		WorkerPoolSize:    getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("gpsolutions", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		reconcileIntervalStr = cfg.ReconcileInterval.String()
		shutdownTimeoutStr   = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PaymentAPIAddress, "p", cfg.PaymentAPIAddress, "Payment provider base URL")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Public site URL used for checkout redirects")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for staged tasks")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent reconcile workers")
	fs.IntVar(&cfg.ReconcileBatch, "reconcile-batch", cfg.ReconcileBatch, "Maximum checkout sessions per reconcile batch")
	fs.StringVar(&reconcileIntervalStr, "reconcile-interval", reconcileIntervalStr, "Interval between payment status polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ReconcileInterval, err = time.ParseDuration(reconcileIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reconcile interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.PaymentSecretKey, err = readSecretFile(lookup, "PAYMENT_SECRET_KEY_FILE", cfg.PaymentSecretKey); err != nil {
		return nil, fmt.Errorf("read payment secret file: %w", err)
	}

	if cfg.SessionSecret, err = readSecretFile(lookup, "SESSION_SECRET_FILE", cfg.SessionSecret); err != nil {
		return nil, fmt.Errorf("read session secret file: %w", err)
	}

	cfg.Currency = strings.ToLower(cfg.Currency)
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.StagingTTL <= 0 {
		cfg.StagingTTL = defaultStagingTTL
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.ExtractWorkers <= 0 {
		cfg.ExtractWorkers = defaultExtractWorkers
	}

	if cfg.MaxTextBytes <= 0 {
		cfg.MaxTextBytes = defaultMaxTextBytes
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ReconcileBatch <= 0 {
		cfg.ReconcileBatch = defaultReconcileBatch
	}

	if cfg.ReconcileInterval <= 0 {
		cfg.ReconcileInterval = defaultReconcileInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PaymentAPIAddress == "" {
		return nil, fmt.Errorf("payment API address must be provided")
	}

	if cfg.PaymentSecretKey == "" {
		return nil, fmt.Errorf("payment secret key must be provided")
	}

	return cfg, nil
}

func readSecretFile(lookup envLookup, key, current string) (string, error) {
	path, ok := lookup(key)
	if !ok || path == "" {
		return current, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
