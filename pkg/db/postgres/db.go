package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func NewDBConn(opts *PostgresConfig) (*sqlx.DB, error) {
	if opts.DBName == "" {
		return nil, fmt.Errorf("postgres database name is required")
	}
	db, err := sqlx.Connect("postgres", GetConnString(opts))
	if err != nil {
		return nil, err
	}
	return db, nil
}
