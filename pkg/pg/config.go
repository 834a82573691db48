package pg

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"` // Host is the PostgreSQL server host or IP address.
	Port     int    `env:"PG_PORT" envDefault:"5432"`      // Port is the PostgreSQL server TCP port.
	Database string `env:"PG_DATABASE,required"`           // Database is the database name on the server.
	User     string `env:"PG_USER,required"`               // User is the database user to connect as.
	Password string `env:"PG_PASSWORD"`                    // Password to connect with; empty means resolve via the credential file.

	PasswordFile      string `env:"PG_PASSFILE"`                          // PasswordFile is the credential file path; empty means $HOME/.pgpass.
	ForcePasswordFile bool   `env:"PG_PASSFILE_FORCE" envDefault:"false"` // ForcePasswordFile reads the credential file despite lax permissions.

	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`      // MaxOpenConns is the maximum number of open connections to the database.
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`       // MaxIdleConns is the maximum number of idle connections to the database.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // HealthCheckPeriod is the period between health checks.
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // MaxConnIdleTime is the maximum amount of time a connection may be idle to be reused.
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // MaxConnLifetime is the maximum amount of time a connection may be reused.

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the interval between retry attempts.

	MigrationsPath  string `env:"PG_MIGRATIONS_PATH" envDefault:"internal/db/migrations"` // MigrationsPath is the path to the migrations directory.
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`     // MigrationsTable is the name of the table used to store the migration version.
}

// connString assembles a keyword/value connection string from the
// discrete fields, carrying the already-resolved password.
func (c Config) connString(password string) string {
	parts := []string{
		"host=" + quoteDSN(c.Host),
		fmt.Sprintf("port=%d", c.Port),
		"dbname=" + quoteDSN(c.Database),
		"user=" + quoteDSN(c.User),
		"password=" + quoteDSN(password),
	}
	return strings.Join(parts, " ")
}

// quoteDSN wraps a keyword/value setting in single quotes, escaping
// backslashes and quotes so arbitrary values survive DSN parsing.
func quoteDSN(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
