package pgpass

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// fieldCount is the exact number of fields a valid entry carries:
	// hostname, port, database, username, password.
	fieldCount = 5

	// wildcard is the raw field value that matches anything.
	wildcard = "*"

	maxPort = 65535
)

// ParseLine parses a single credential-file line into an Entry.
//
// Blank lines and lines whose trimmed form starts with '#' return
// (nil, nil) and are ignored. Lines that do not split into exactly five
// fields, or whose port field is neither "*" nor a valid TCP port,
// return a soft error wrapping ErrMalformedLine or ErrInvalidPort;
// callers skip such lines and keep parsing.
//
// The separator is ':' unless it is directly preceded by a backslash.
// Splitting caps at five fields, so the password may carry unescaped
// colons. Fields are unescaped by replacing `\\` with `\` first and
// `\:` with ':' second; the password is unescaped the same way but a
// literal "*" password stays a literal password.
func ParseLine(line string) (*Entry, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	fields := splitFields(line)
	if len(fields) != fieldCount {
		return nil, errors.Join(ErrMalformedLine,
			fmt.Errorf("found %d fields instead of %d", len(fields), fieldCount))
	}

	entry := &Entry{Password: unescape(fields[4])}
	if fields[0] != wildcard {
		hostname := unescape(fields[0])
		entry.Hostname = &hostname
	}
	if fields[1] != wildcard {
		port, err := strconv.Atoi(fields[1])
		if err != nil || port < 1 || port > maxPort {
			return nil, errors.Join(ErrInvalidPort, fmt.Errorf("port %q", fields[1]))
		}
		entry.Port = &port
	}
	if fields[2] != wildcard {
		database := unescape(fields[2])
		entry.Database = &database
	}
	if fields[3] != wildcard {
		username := unescape(fields[3])
		entry.Username = &username
	}

	return entry, nil
}

// splitFields splits a line on unescaped colons, stopping after the
// fifth field. A colon directly preceded by a backslash is literal,
// even when that backslash is itself escaped; this mirrors the
// historical format, where escapes are resolved per field after the
// split.
func splitFields(line string) []string {
	fields := make([]string, 0, fieldCount)
	start := 0
	for i := 0; i < len(line) && len(fields) < fieldCount-1; i++ {
		if line[i] == ':' && (i == 0 || line[i-1] != '\\') {
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	return append(fields, line[start:])
}

// unescape resolves `\\` before `\:` so a backslash produced by the
// first pass is never mistaken for the start of a colon escape.
func unescape(field string) string {
	field = strings.ReplaceAll(field, `\\`, `\`)
	return strings.ReplaceAll(field, `\:`, ":")
}
