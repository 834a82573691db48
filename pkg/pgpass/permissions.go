package pgpass

import (
	"errors"
	"io/fs"
	"os"
)

// groupOtherBits covers every permission bit outside the owner class.
const groupOtherBits fs.FileMode = 0o077

// checkPermissions gates the credential file before any content is
// trusted. It reports tooOpen=true when group or other mode bits are
// set; a missing or unreadable file is fatal. The file mode is only
// inspected, never changed.
func checkPermissions(path string) (tooOpen bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, errors.Join(ErrFileNotExists, err)
		}
		return false, errors.Join(ErrFileNotReadable, err)
	}

	// Probe read access up front so an unreadable file fails the same
	// way regardless of its mode bits.
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Join(ErrFileNotReadable, err)
	}
	if err := f.Close(); err != nil {
		return false, errors.Join(ErrFileNotReadable, err)
	}

	return info.Mode().Perm()&groupOtherBits != 0, nil
}
