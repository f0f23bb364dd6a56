package cmd

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// CreateDbIfNotExists connects to the maintenance database and creates the
// application database when it is missing. First boot against a fresh
// PostgreSQL instance needs this before GORM can migrate the schema.
func CreateDbIfNotExists(host, port, user, password, dbName, sslMode string) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking database existence: %w", err)
	}
	if exists {
		return nil
	}

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(dbName)))
	if err != nil {
		return fmt.Errorf("creating database %s: %w", dbName, err)
	}

	return nil
}
