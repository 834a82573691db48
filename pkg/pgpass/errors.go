package pgpass

import "errors"

var (
	// ErrFileNotExists is returned when the credential file path does not
	// exist at the time of the check. Fatal: surfaced to callers.
	ErrFileNotExists = errors.New("credential file does not exist")

	// ErrFileNotReadable is returned when the credential file exists but
	// the process cannot read it. Fatal: surfaced to callers.
	ErrFileNotReadable = errors.New("credential file is not readable")

	// ErrMalformedLine marks a line that does not split into exactly five
	// fields. Soft: the line is skipped with a warning, the rest of the
	// file is still parsed.
	ErrMalformedLine = errors.New("malformed credential entry")

	// ErrInvalidPort marks a line whose port field is neither "*" nor a
	// valid TCP port number. Soft: the line is skipped with a warning.
	ErrInvalidPort = errors.New("invalid port in credential entry")
)
