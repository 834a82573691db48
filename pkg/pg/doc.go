// Package pg provides a thin PostgreSQL connection layer on top of the
// pgx/v5 driver, with password resolution backed by the credential file
// subsystem in pkg/pgpass.
//
// # Architecture
//
// The package exposes four cooperating building blocks:
//
//   - Config — a declarative struct populated from environment
//     variables via github.com/caarlos0/env. It carries the discrete
//     connection parameters (host, port, database, user, password),
//     pool tuning and the credential file location.
//
//   - ResolvePassword — applies the lookup policy: an explicit
//     password wins; otherwise the credential file is searched for the
//     first entry matching host, port, database and user, and a
//     missing or unreadable file degrades to an empty password with a
//     warning rather than failing the connection attempt outright.
//
//   - Connect — opens a *pgxpool.Pool from Config, retrying with
//     exponential back-off until the database becomes available.
//
//   - Migrate — runs goose schema migrations through the same pool, so
//     the schema is current before the application serves traffic.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg, slog.Default())
//	if err != nil {
//		// handle error
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		// handle error
//	}
//
// # Error Handling
//
// Connection-level failures wrap the sentinel errors in errors.go.
// Helpers such as [IsDuplicateKeyError] and [IsForeignKeyViolationError]
// classify errors returned by pgx for use inside business logic.
// Passwords never appear in log output; diagnostics mask them.
package pg
