package scheduledb

import "railplan.onerail.org/internal/appconf"

// Config holds configuration options for the Client
type Config struct {
	// DSN is either a SQLite path (a file path or ":memory:") or a
	// postgres:// connection string.
	DSN     string
	Env     appconf.Environment
	verbose bool
}

func NewConfig(dsn string, env appconf.Environment, verbose bool) Config {
	return Config{
		DSN:     dsn,
		Env:     env,
		verbose: verbose,
	}
}
