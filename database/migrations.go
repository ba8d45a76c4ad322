package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

const moviesTablePostgres = `
CREATE TABLE IF NOT EXISTS movies (
	id SERIAL PRIMARY KEY,
	title VARCHAR(400) NOT NULL,
	year VARCHAR(50) DEFAULT '',
	description VARCHAR(400) DEFAULT '',
	rating DOUBLE PRECISION,
	ranking INTEGER,
	review VARCHAR(400) DEFAULT '',
	img_url TEXT DEFAULT ''
);
`

const moviesTableSQLite = `
CREATE TABLE IF NOT EXISTS movies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	year TEXT DEFAULT '',
	description TEXT DEFAULT '',
	rating REAL,
	ranking INTEGER,
	review TEXT DEFAULT '',
	img_url TEXT DEFAULT ''
);
`

// RunMigrations creates the movies table if it does not exist yet. The
// schema is small enough that hand-rolled DDL per driver beats carrying
// a migration tool.
func RunMigrations(db *sqlx.DB) error {
	ddl := moviesTableSQLite
	if db.DriverName() == "pgx" {
		ddl = moviesTablePostgres
	}

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to run movies migration: %w", err)
	}
	return nil
}
