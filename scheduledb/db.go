package scheduledb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/lib/pq"  // Postgres driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"railplan.onerail.org/internal/appconf"
)

//go:embed schema.sql
var ddl string

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
)

func driverForDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return driverPostgres
	}
	return driverSQLite
}

// createDB opens the database behind the DSN and applies the schema.
func createDB(config Config) (*sql.DB, string, error) {
	driver := driverForDSN(config.DSN)

	if config.Env == appconf.Test && config.DSN != ":memory:" {
		return nil, "", fmt.Errorf("test environment must use an in-memory database, got %q", config.DSN)
	}

	db, err := sql.Open(driver, config.DSN)
	if err != nil {
		return nil, "", err
	}

	ctx := context.Background()
	if err := performDatabaseMigration(ctx, db); err != nil {
		return nil, "", fmt.Errorf("error performing database migration: %w", err)
	}

	return db, driver, nil
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	statements := strings.Split(ddl, "-- migrate") // Split DDL into individual statements
	for _, stmt := range statements {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $n for the postgres driver. Queries are
// written once with ? and adjusted here instead of being duplicated per
// driver.
func rebind(driver, query string) string {
	if driver != driverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
