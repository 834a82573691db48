package pgpass

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is appended to the HOME directory when Open is
// called without an explicit path.
const DefaultFileName = ".pgpass"

// Option configures a credential file handle at open time.
type Option func(*File)

// WithForce trusts the credential file even when group or other
// permission bits are set.
func WithForce() Option {
	return func(f *File) { f.force = true }
}

// WithLogger routes diagnostics to the given logger instead of
// slog.Default(). Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(f *File) {
		if log != nil {
			f.log = log
		}
	}
}

// File is a handle to a credential file. It owns nothing beyond the
// resolved path: content is re-read and re-parsed on every call, never
// memoized, so a long-running process always observes the latest
// on-disk credentials at the cost of re-parsing per lookup. The
// zero-state handle makes concurrent use safe by construction.
type File struct {
	path  string
	force bool
	log   *slog.Logger
}

// Open resolves the credential file path and validates that it exists.
// An empty path falls back to $HOME/.pgpass, or the bare ".pgpass"
// relative name when HOME is not set. Existence is checked at open
// time only; the path may vanish before later reads, which re-validate
// independently.
func Open(path string, opts ...Option) (*File, error) {
	f := &File{log: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}

	if path == "" {
		home, ok := os.LookupEnv("HOME")
		if !ok {
			f.log.Warn("HOME is not set, falling back to a relative credential file path",
				slog.String("path", DefaultFileName))
			path = DefaultFileName
		} else {
			path = filepath.Join(home, DefaultFileName)
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrFileNotExists, err)
		}
		return nil, errors.Join(ErrFileNotReadable, err)
	}
	f.path = path

	return f, nil
}

// Path returns the resolved credential file path.
func (f *File) Path() string {
	return f.path
}

// read returns the full file content, or an empty string when the
// permission gate rejects the file and force is not set. The gate
// rejection is not an error: the file is treated as an empty
// credential set and the caller continues normally.
func (f *File) read() (string, error) {
	tooOpen, err := checkPermissions(f.path)
	if err != nil {
		return "", err
	}

	if tooOpen {
		if !f.force {
			f.log.Warn("group or others have permissions on the credential file, treating it as empty",
				slog.String("path", f.path))
			return "", nil
		}
		f.log.Debug("group or others have permissions on the credential file",
			slog.String("path", f.path))
	}

	content, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Join(ErrFileNotExists, err)
		}
		return "", errors.Join(ErrFileNotReadable, err)
	}

	return string(content), nil
}

// Entries reads and parses the credential file from scratch. Entries
// come back in file order; duplicates are kept as separate elements
// because Lookup relies on position for precedence. A malformed line
// is skipped with a warning naming the line number and never aborts
// the rest of the file.
func (f *File) Entries() ([]Entry, error) {
	content, err := f.read()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for nr, line := range strings.Split(content, "\n") {
		entry, err := ParseLine(line)
		if err != nil {
			f.log.Warn("skipping invalid credential entry",
				slog.String("path", f.path),
				slog.Int("line", nr+1),
				slog.Any("error", err))
			continue
		}
		if entry == nil {
			continue
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

// Lookup returns the password of the first entry, in file order, whose
// every non-wildcard field matches the connection attempt. An earlier
// line wins even when a later line matches more specifically; this
// precedence is part of the file format's contract. The boolean
// reports whether any entry matched.
func (f *File) Lookup(host string, port int, database, username string) (string, bool, error) {
	entries, err := f.Entries()
	if err != nil {
		return "", false, err
	}

	for _, entry := range entries {
		if entry.Matches(host, port, database, username) {
			return entry.Password, true, nil
		}
	}

	f.log.Debug("no matching credential entry",
		slog.String("path", f.path),
		slog.String("host", host),
		slog.Int("port", port),
		slog.String("database", database),
		slog.String("username", username))

	return "", false, nil
}
