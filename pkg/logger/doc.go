// Package logger provides a slog.Logger factory and attribute helpers
// shared by the pgpasskit packages.
//
// The factory pairs JSON output with INFO level by default, which suits
// log aggregation in production; switch to text output for local
// debugging via WithFormat. Attribute helpers keep log keys consistent
// across packages, and [Password] guarantees credential values are
// masked before they reach any handler.
//
// # Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("pgpass")),
//	)
//	log.Debug("password resolved",
//		logger.Host("db.internal"),
//		logger.Password(passwd),
//	)
package logger
