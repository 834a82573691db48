package pg

import (
	"log/slog"

	"github.com/dmitrymomot/pgpasskit/pkg/logger"
	"github.com/dmitrymomot/pgpasskit/pkg/pgpass"
)

// ResolvePassword returns the password for the configured connection.
// An explicitly configured password is used verbatim. Otherwise the
// credential file is consulted; a missing or unreadable file degrades
// to an empty password with a warning. Whether an empty password is
// acceptable is for the server to decide, not this package.
func ResolvePassword(cfg Config, log *slog.Logger) string {
	if cfg.Password != "" {
		return cfg.Password
	}
	if log == nil {
		log = slog.Default()
	}

	opts := []pgpass.Option{pgpass.WithLogger(log)}
	if cfg.ForcePasswordFile {
		opts = append(opts, pgpass.WithForce())
	}

	file, err := pgpass.Open(cfg.PasswordFile, opts...)
	if err != nil {
		log.Warn("cannot use the credential file, falling back to an empty password",
			logger.Error(err))
		return ""
	}

	passwd, found, err := file.Lookup(cfg.Host, cfg.Port, cfg.Database, cfg.User)
	if err != nil {
		log.Warn("credential file lookup failed, falling back to an empty password",
			logger.Path(file.Path()),
			logger.Error(err))
		return ""
	}
	if !found {
		log.Debug("no credential entry matches the connection",
			logger.Path(file.Path()),
			logger.Host(cfg.Host),
			logger.Port(cfg.Port),
			logger.Database(cfg.Database),
			logger.Username(cfg.User))
		return ""
	}

	log.Debug("password resolved from the credential file",
		logger.Path(file.Path()),
		logger.Password(passwd))

	return passwd
}
