package pg

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/pgpasskit/pkg/logger"
)

// Connect establishes a PostgreSQL connection pool, resolving the
// password through the credential file when none is configured.
// Uses exponential backoff to handle transient network issues without
// overwhelming the database.
func Connect(ctx context.Context, cfg Config, log *slog.Logger) (*pgxpool.Pool, error) {
	if log == nil {
		log = slog.Default()
	}

	password := ResolvePassword(cfg, log)

	connConfig, err := pgxpool.ParseConfig(cfg.connString(password))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns
	connConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	connConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	connConfig.MaxConnLifetime = cfg.MaxConnLifetime

	// Exponential backoff: attempt 1 waits RetryInterval, attempt 2
	// waits 2x, attempt 3 waits 3x.
	for i := 0; i < cfg.RetryAttempts; i++ {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			log.Warn("database connection attempt failed",
				slog.Int("attempt", i+1),
				logger.Error(err))
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		// Verify with an actual ping to catch authentication and
		// permission issues, not just TCP reachability.
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			log.Warn("database ping failed",
				slog.Int("attempt", i+1),
				logger.Host(cfg.Host),
				logger.Port(cfg.Port),
				logger.Error(err))
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return pool, nil
	}

	return nil, ErrFailedToOpenDBConnection
}
