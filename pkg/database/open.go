package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/folio-labs/portfolio/pkg/logger"

	_ "modernc.org/sqlite" // pure Go driver registered as "sqlite"
)

// Options tunes how a store is opened.
type Options struct {
	// AppEnv picks the query log verbosity: development and test log warnings.
	AppEnv string
	// Retries is how many extra attempts are made when the first open fails.
	Retries      int
	MaxOpenConns int
}

// Open dispatches on the DSN scheme and returns a pinged gorm handle.
func Open(ctx context.Context, dsn string, opts Options) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(ctx, dsn, opts)
	case strings.HasPrefix(dsn, "sqlite://"):
		return OpenSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), opts)
	case strings.HasPrefix(dsn, "file:"):
		return OpenSQLite(ctx, dsn, opts)
	case dsn == "":
		return nil, fmt.Errorf("database url is required")
	default:
		return nil, fmt.Errorf("unsupported database url scheme in %q", redact(dsn))
	}
}

// OpenPostgres opens PostgreSQL through the pgx stdlib pool with retry and pooling defaults.
func OpenPostgres(ctx context.Context, dsn string, opts Options) (*gorm.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}

	db, err := openWithRetry(ctx, opts, func() (*gorm.DB, error) {
		sqlDB := stdlib.OpenDB(*connCfg)
		sqlDB.SetMaxOpenConns(maxOpen)
		sqlDB.SetMaxIdleConns(maxOpen)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(opts))
		if err != nil {
			_ = sqlDB.Close()
		}
		return db, err
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return pinged(ctx, db)
}

// OpenSQLite opens a SQLite file with the modernc driver. SQLite allows a single
// writer, so the pool is capped at one connection.
func OpenSQLite(ctx context.Context, path string, opts Options) (*gorm.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"

	db, err := openWithRetry(ctx, opts, func() (*gorm.DB, error) {
		sqlDB, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(time.Hour)
		db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, gormConfig(opts))
		if err != nil {
			_ = sqlDB.Close()
		}
		return db, err
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return pinged(ctx, db)
}

func openWithRetry(ctx context.Context, opts Options, open func() (*gorm.DB, error)) (*gorm.DB, error) {
	b := backoff{
		maxRetries: opts.Retries,
		delay:      500 * time.Millisecond,
		maxDelay:   5 * time.Second,
	}
	for attempt := 0; ; attempt++ {
		db, err := open()
		if err == nil {
			return db, nil
		}
		if attempt >= b.maxRetries {
			return nil, err
		}
		logger.L().Sugar().Warnf("database open attempt %d failed: %v", attempt+1, err)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("open canceled: %w", ctx.Err())
		case <-time.After(b.nextDelay(attempt)):
		}
	}
}

func pinged(ctx context.Context, db *gorm.DB) (*gorm.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctxPing); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

func gormConfig(opts Options) *gorm.Config {
	level := gormlogger.Silent
	if opts.AppEnv == "development" || opts.AppEnv == "test" {
		level = gormlogger.Warn
	}
	return &gorm.Config{Logger: zapGormLogger{level: level}}
}

// redact hides credentials embedded in a connection string.
func redact(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return dsn
	}
	return dsn[:scheme+3] + "***" + dsn[at:]
}

type backoff struct {
	maxRetries int
	delay      time.Duration
	maxDelay   time.Duration
}

func (b backoff) nextDelay(attempt int) time.Duration {
	d := b.delay << attempt
	if d > b.maxDelay {
		return b.maxDelay
	}
	return d
}
