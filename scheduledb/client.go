package scheduledb

import (
	"context"
	"database/sql"
	"fmt"
)

// Client is the main entry point for the schedule storage layer
type Client struct {
	config  Config
	DB      *sql.DB
	Queries *Queries
}

// NewClient opens the database for the configured DSN, runs the schema
// migration, and returns a ready-to-use Client.
func NewClient(config Config) (*Client, error) {
	db, driver, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("error creating schedule database: %w", err)
	}

	client := &Client{
		config:  config,
		DB:      db,
		Queries: newQueries(db, driver),
	}
	return client, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// IsEmpty reports whether the schedule tables hold no trains yet. Used to
// decide whether an initial import is needed.
func (c *Client) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM trains").Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// TableCounts returns the row count per schedule table.
func (c *Client) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, table := range []string{"stations", "trains", "train_stops", "seat_availability"} {
		var count int64
		err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("error counting %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}
