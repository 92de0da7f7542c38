package storefront

import (
	"database/sql"
)

// Executor interface abstracts database operations.
type Executor interface {
	Exec(query string, args ...any) error
	Query(query string, args ...any) (Rows, error)
	QueryRow(query string, args ...any) Scanner
}

// Scanner interface abstracts scanning a row.
type Scanner interface {
	Scan(dest ...any) error
}

// Rows interface abstracts scanning multiple rows.
type Rows interface {
	Scan(dest ...any) error
	Next() bool
	Close() error
	Err() error
}

// DBExecutor adapts a *sql.DB to Executor.
type DBExecutor struct {
	DB *sql.DB
}

func (e DBExecutor) Exec(query string, args ...any) error {
	_, err := e.DB.Exec(query, args...)
	return err
}

func (e DBExecutor) Query(query string, args ...any) (Rows, error) {
	return e.DB.Query(query, args...)
}

func (e DBExecutor) QueryRow(query string, args ...any) Scanner {
	return e.DB.QueryRow(query, args...)
}
