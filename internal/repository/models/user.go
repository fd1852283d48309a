package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	ID           string    `db:"id"` // ULID
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Entity struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	UserID    sql.NullString `db:"user_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// PlayerRow is a player joined with its entity.
type PlayerRow struct {
	ID              string         `db:"id"`
	EntityID        string         `db:"entity_id"`
	Role            string         `db:"role"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	EntityName      string         `db:"entity_name"`
	EntityEmail     string         `db:"entity_email"`
	EntityUserID    sql.NullString `db:"entity_user_id"`
	EntityCreatedAt time.Time      `db:"entity_created_at"`
	EntityUpdatedAt time.Time      `db:"entity_updated_at"`
}
