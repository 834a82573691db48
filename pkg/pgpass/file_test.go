package pgpass_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrymomot/pgpasskit/pkg/pgpass"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCredentialFile creates a credential file with owner-only
// permissions; tests loosen the mode explicitly where the gate is
// under test.
func writeCredentialFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".pgpass")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))
	return path
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()
		path := writeCredentialFile(t, "*:*:*:*:pw\n")
		file, err := pgpass.Open(path)
		require.NoError(t, err)
		assert.Equal(t, path, file.Path())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := pgpass.Open(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.ErrorIs(t, err, pgpass.ErrFileNotExists)
	})
}

func TestOpenDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".pgpass"), []byte("*:*:*:*:pw\n"), 0o600))

	file, err := pgpass.Open("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pgpass"), file.Path())
}

func TestOpenWithoutHome(t *testing.T) {
	// t.Setenv registers the restore; unsetting afterwards simulates an
	// environment without HOME.
	t.Setenv("HOME", "placeholder")
	require.NoError(t, os.Unsetenv("HOME"))

	dir := t.TempDir()
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prevDir)) })
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pgpass"), []byte("*:*:*:*:pw\n"), 0o600))

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))

	file, err := pgpass.Open("", pgpass.WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".pgpass"), file.Path())
	assert.Contains(t, buf.String(), "HOME")
}

func TestEntries(t *testing.T) {
	t.Parallel()

	t.Run("file order preserved, duplicates kept", func(t *testing.T) {
		t.Parallel()
		path := writeCredentialFile(t,
			"app:5432:vdc:glassfish:passwd1\n"+
				"app:5432:vdc:glassfish:passwd1\n"+
				"localhost:5432:*:glassfish:passwd6\n")

		file, err := pgpass.Open(path)
		require.NoError(t, err)

		entries, err := file.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, entries[0], entries[1])
		assert.Equal(t, "passwd6", entries[2].Password)
	})

	t.Run("comments and blank lines ignored", func(t *testing.T) {
		t.Parallel()
		path := writeCredentialFile(t,
			"# credentials for the staging cluster\n"+
				"\n"+
				"app:5432:vdc:glassfish:passwd1\n"+
				"   \n"+
				"  # trailing comment\n")

		file, err := pgpass.Open(path)
		require.NoError(t, err)

		entries, err := file.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "passwd1", entries[0].Password)
	})

	t.Run("malformed line does not abort the file", func(t *testing.T) {
		t.Parallel()
		path := writeCredentialFile(t,
			"localhost:5432:\n"+
				"app:5432:vdc:glassfish:passwd1\n"+
				"app:badport:vdc:glassfish:passwd2\n"+
				"app:5433:vdc:glassfish:passwd3\n")

		buf := &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(buf, nil))

		file, err := pgpass.Open(path, pgpass.WithLogger(log))
		require.NoError(t, err)

		entries, err := file.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "passwd1", entries[0].Password)
		assert.Equal(t, "passwd3", entries[1].Password)
		assert.Contains(t, buf.String(), "line=1")
		assert.Contains(t, buf.String(), "line=3")
	})

	t.Run("idempotent without file changes", func(t *testing.T) {
		t.Parallel()
		path := writeCredentialFile(t,
			"app:5432:vdc:glassfish:passwd1\n"+
				"*:*:*:*:fallback\n")

		file, err := pgpass.Open(path)
		require.NoError(t, err)

		first, err := file.Entries()
		require.NoError(t, err)
		second, err := file.Entries()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("file removed after open", func(t *testing.T) {
		t.Parallel()
		path := writeCredentialFile(t, "*:*:*:*:pw\n")
		file, err := pgpass.Open(path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		_, err = file.Entries()
		require.Error(t, err)
		assert.ErrorIs(t, err, pgpass.ErrFileNotExists)
	})

	t.Run("observes file changes between calls", func(t *testing.T) {
		t.Parallel()
		path := writeCredentialFile(t, "*:*:*:*:old\n")
		file, err := pgpass.Open(path)
		require.NoError(t, err)

		entries, err := file.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "old", entries[0].Password)

		require.NoError(t, os.WriteFile(path, []byte("*:*:*:*:new\n"), 0o600))

		entries, err = file.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "new", entries[0].Password)
	})
}

func TestEntriesPermissionGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode os.FileMode
	}{
		{"group readable", 0o640},
		{"other readable", 0o604},
		{"group and other readable", 0o644},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeCredentialFile(t, "app:5432:vdc:glassfish:passwd1\n")
			require.NoError(t, os.Chmod(path, tt.mode))

			buf := &bytes.Buffer{}
			log := slog.New(slog.NewTextHandler(buf, nil))

			file, err := pgpass.Open(path, pgpass.WithLogger(log))
			require.NoError(t, err)

			entries, err := file.Entries()
			require.NoError(t, err)
			assert.Empty(t, entries)
			assert.Contains(t, buf.String(), "permissions")

			forced, err := pgpass.Open(path, pgpass.WithForce())
			require.NoError(t, err)

			entries, err = forced.Entries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "passwd1", entries[0].Password)
		})
	}
}

func TestLookupPrecedence(t *testing.T) {
	t.Parallel()

	path := writeCredentialFile(t,
		"app:5432:vdc:glassfish:passwd1\n"+
			"app:5432:*:glassfish:passwd2\n"+
			"app:5432:*:uhu:passwd3\n"+
			"app:5432:*:*:passwd4\n"+
			"app:5434:*:glassfish:passwd5\n"+
			"localhost:5432:*:glassfish:passwd6\n")

	file, err := pgpass.Open(path)
	require.NoError(t, err)

	tests := []struct {
		name      string
		host      string
		port      int
		database  string
		username  string
		want      string
		wantFound bool
	}{
		{"exact entry wins", "app", 5432, "vdc", "glassfish", "passwd1", true},
		{"database wildcard", "app", 5432, "bla", "glassfish", "passwd2", true},
		{"other user", "app", 5432, "vdc", "uhu", "passwd3", true},
		{"catch-all user", "app", 5432, "bla", "itsme", "passwd4", true},
		{"other port", "app", 5434, "bla", "glassfish", "passwd5", true},
		{"no entry for user on other port", "app", 5434, "bla", "itsme", "", false},
		{"other host", "localhost", 5432, "bla", "glassfish", "passwd6", true},
		{"unknown host", "somewhere", 5432, "bla", "glassfish", "", false},
		{"case-insensitive lookup", "APP", 5432, "VDC", "GlassFish", "passwd1", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			passwd, found, err := file.Lookup(tt.host, tt.port, tt.database, tt.username)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, passwd)
		})
	}
}

func TestLookupEmptyPassword(t *testing.T) {
	t.Parallel()

	// An empty password is a legitimate value, distinct from "no entry
	// matched".
	path := writeCredentialFile(t, "app:5432:vdc:glassfish:\n")
	file, err := pgpass.Open(path)
	require.NoError(t, err)

	passwd, found, err := file.Lookup("app", 5432, "vdc", "glassfish")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "", passwd)
}
