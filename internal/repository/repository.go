package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"tala-trivia/internal/domain"

	"github.com/jackc/pgconn"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const pgUniqueViolation = "23505"

// uniqueViolation reports the violated constraint name when err is a
// Postgres unique violation.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// duplicateFieldError turns a unique violation on one of fields into a 400.
// The field is picked by matching the constraint name.
func duplicateFieldError(constraint string, fields ...string) error {
	for _, f := range fields {
		if strings.Contains(constraint, f) {
			return domain.NewFieldError(f, "already exists")
		}
	}
	if len(fields) > 0 {
		return domain.NewFieldError(fields[0], "already exists")
	}
	return domain.NewFieldError("id", "already exists")
}

func normalizePage(p domain.Pagination) domain.Pagination {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

const pgForeignKeyViolation = "23503"

func foreignKeyViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
