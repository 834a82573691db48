// Package pgpass resolves database passwords from the colon-delimited,
// line-oriented credential file historically known as .pgpass.
//
// A credential file holds one record per line:
//
//	hostname:port:database:username:password
//
// A "*" in any of the first four fields matches anything. A literal
// backslash is written as `\\`, a literal colon inside a field as `\:`.
// Lines starting with '#' are comments and blank lines are ignored.
//
// # Architecture
//
// The package is composed leaves-first from four small pieces:
//
//   - a permission gate that refuses to trust a file readable by group
//     or others (unless forced), treating it as an empty credential set
//     rather than failing,
//   - a line parser that turns one raw line into an Entry or a skip
//     decision, handling comments, escapes and malformed field counts,
//   - the File handle, which re-reads and re-parses the file on every
//     call so callers always see the latest on-disk credentials,
//   - the matcher, which scans entries in file order and returns the
//     password of the first entry whose non-wildcard fields all match.
//
// First match wins: an earlier line takes precedence even when a later
// line matches the connection attempt more specifically. This mirrors
// the documented behavior of the source file format.
//
// # Usage
//
//	file, err := pgpass.Open("") // resolves $HOME/.pgpass
//	if err != nil {
//		// file does not exist, decide whether that means "no password"
//	}
//
//	passwd, found, err := file.Lookup("db.internal", 5432, "billing", "app")
//	if err != nil {
//		// file vanished or became unreadable since Open
//	}
//	if found {
//		// use passwd
//	}
//
// # Error Handling
//
// Only two conditions surface as errors: [ErrFileNotExists] and
// [ErrFileNotReadable]. Everything else degrades softly — a
// world-readable file yields zero entries, a malformed or invalid line
// is skipped — with a warning on the configured logger. Hostname,
// database and username match case-insensitively; the port matches by
// exact integer equality.
//
// # Security
//
// The file must not grant any access to group or others. The gate can
// be overridden with [WithForce] for setups where the permission model
// does not apply (network filesystems, containers with remapped IDs).
// The package never writes to or changes the mode of the file.
package pgpass
