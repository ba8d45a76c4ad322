package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Connect opens the database behind the given URL and verifies it is
// reachable. postgres:// URLs go through pgx; anything else is treated
// as a SQLite path (file-based or :memory:).
func Connect(databaseURL string) (*sqlx.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		driver = "pgx"
	}

	db, err := sqlx.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == "pgx" {
		// Pool limits to avoid "too many clients" from PostgreSQL
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// SQLite takes one writer at a time; a single connection also keeps
		// :memory: databases from vanishing between pooled conns.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}
