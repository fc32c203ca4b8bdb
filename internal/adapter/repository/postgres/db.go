package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=peekport sslmode=disable"
// The ping is retried until ctx is done so the server can start alongside the database.
func NewDB(ctx context.Context, connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		err = db.PingContext(ctx)
		if err == nil {
			return &DB{DB: db}, nil
		}
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		case <-ticker.C:
		}
	}
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// schema creates the planning tables when they are missing.
// Ratios are percentages; a portfolio without a saved target has NULL target columns.
const schema = `
CREATE TABLE IF NOT EXISTS portfolios (
	id                 UUID PRIMARY KEY,
	name               TEXT NOT NULL,
	portfolio_type     TEXT NOT NULL DEFAULT 'BALANCED',
	cash               NUMERIC(20, 4) NOT NULL DEFAULT 0,
	target_stock_ratio NUMERIC(7, 4),
	target_bond_ratio  NUMERIC(7, 4),
	target_cash_ratio  NUMERIC(7, 4)
);

CREATE TABLE IF NOT EXISTS holdings (
	id             BIGSERIAL PRIMARY KEY,
	portfolio_id   UUID NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
	symbol         TEXT NOT NULL,
	name           TEXT NOT NULL DEFAULT '',
	quantity       NUMERIC(20, 6) NOT NULL,
	purchase_price NUMERIC(20, 4) NOT NULL,
	current_price  NUMERIC(20, 4) NOT NULL,
	horizon        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS holdings_portfolio_id_idx ON holdings (portfolio_id);

CREATE TABLE IF NOT EXISTS goals (
	id             UUID PRIMARY KEY,
	portfolio_id   UUID NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
	name           TEXT NOT NULL,
	amount         NUMERIC(20, 4) NOT NULL,
	months_to_goal INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS goals_portfolio_id_idx ON goals (portfolio_id);
`

// Migrate creates the planning schema
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
