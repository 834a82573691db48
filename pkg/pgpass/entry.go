package pgpass

import "strings"

// Entry is one parsed credential-file line. A nil field is a wildcard
// (the literal "*" in the file) and matches any value for that
// position; a non-nil field holds the already-unescaped value. The
// password is carried verbatim and is never a wildcard.
type Entry struct {
	Hostname *string
	Port     *int
	Database *string
	Username *string
	Password string
}

// Matches reports whether the entry applies to the given connection
// attempt. Hostname, database and username are compared
// case-insensitively; port is exact integer equality. Wildcard fields
// match anything.
func (e Entry) Matches(host string, port int, database, username string) bool {
	if e.Hostname != nil && !strings.EqualFold(*e.Hostname, host) {
		return false
	}
	if e.Port != nil && *e.Port != port {
		return false
	}
	if e.Database != nil && !strings.EqualFold(*e.Database, database) {
		return false
	}
	if e.Username != nil && !strings.EqualFold(*e.Username, username) {
		return false
	}
	return true
}
