package database

import (
	"fmt"
	"time"

	"tala-trivia/internal/config"

	_ "github.com/jackc/pgx/v4/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
)

// NewSQLXDB opens the Postgres pool described by cfg and verifies it with a ping.
func NewSQLXDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := (&config.Config{DB: cfg}).GetDSN()
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
