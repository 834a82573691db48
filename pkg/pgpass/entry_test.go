package pgpass_test

import (
	"testing"

	"github.com/dmitrymomot/pgpasskit/pkg/pgpass"

	"github.com/stretchr/testify/assert"
)

func TestEntryMatches(t *testing.T) {
	t.Parallel()

	concrete := pgpass.Entry{
		Hostname: strPtr("db.internal"),
		Port:     intPtr(5432),
		Database: strPtr("billing"),
		Username: strPtr("app"),
		Password: "pw",
	}

	tests := []struct {
		name     string
		entry    pgpass.Entry
		host     string
		port     int
		database string
		username string
		want     bool
	}{
		{"exact match", concrete, "db.internal", 5432, "billing", "app", true},
		{"hostname is case-insensitive", concrete, "DB.Internal", 5432, "billing", "app", true},
		{"database is case-insensitive", concrete, "db.internal", 5432, "BILLING", "app", true},
		{"username is case-insensitive", concrete, "db.internal", 5432, "billing", "APP", true},
		{"different host", concrete, "other.internal", 5432, "billing", "app", false},
		{"different port", concrete, "db.internal", 5433, "billing", "app", false},
		{"different database", concrete, "db.internal", 5432, "analytics", "app", false},
		{"different username", concrete, "db.internal", 5432, "billing", "admin", false},
		{"all wildcards match anything", pgpass.Entry{Password: "pw"}, "x", 1, "y", "z", true},
		{
			"wildcard port with concrete host",
			pgpass.Entry{Hostname: strPtr("db.internal"), Password: "pw"},
			"db.internal", 9999, "any", "one", true,
		},
		{
			"empty field only matches empty value",
			pgpass.Entry{Hostname: strPtr(""), Password: "pw"},
			"db.internal", 5432, "billing", "app", false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.entry.Matches(tt.host, tt.port, tt.database, tt.username))
		})
	}
}
