package logger

import "log/slog"

// passwordMask replaces credential values wherever they would reach a
// log record.
const passwordMask = "*********"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records a file path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Host records the database host under the key "host".
func Host(host string) slog.Attr {
	return slog.String("host", host)
}

// Port records the database port under the key "port".
func Port(port int) slog.Attr {
	return slog.Int("port", port)
}

// Database records the database name under the key "database".
func Database(name string) slog.Attr {
	return slog.String("database", name)
}

// Username records the database user under the key "username".
func Username(name string) slog.Attr {
	return slog.String("username", name)
}

// Password records a password attribute with the value replaced by a
// fixed mask. The raw value never reaches the log output; an empty
// value is recorded as empty so "no password" stays distinguishable.
func Password(passwd string) slog.Attr {
	if passwd == "" {
		return slog.String("password", "")
	}
	return slog.String("password", passwordMask)
}
