package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/repository/models"
	"tala-trivia/internal/util"

	"github.com/jmoiron/sqlx"
)

const playerSelect = `SELECT p.id, p.entity_id, p.role, p.created_at, p.updated_at,
       e.name AS entity_name, e.email AS entity_email, e.user_id AS entity_user_id,
       e.created_at AS entity_created_at, e.updated_at AS entity_updated_at
  FROM players p
  JOIN entities e ON e.id = p.entity_id`

type sqlxPlayerRepository struct {
	db *sqlx.DB
}

func NewSQLXPlayerRepository(db *sqlx.DB) domain.PlayerRepository {
	return &sqlxPlayerRepository{db: db}
}

func toDomainPlayer(m *models.PlayerRow) *domain.Player {
	if m == nil {
		return nil
	}
	return &domain.Player{
		ID:   m.ID,
		Role: domain.Role(m.Role),
		Entity: domain.Entity{
			ID:        m.EntityID,
			Name:      m.EntityName,
			Email:     m.EntityEmail,
			UserID:    m.EntityUserID.String,
			CreatedAt: m.EntityCreatedAt,
			UpdatedAt: m.EntityUpdatedAt,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreatePlayer inserts the entity profile and the player row. Callers run it
// inside a transaction so both rows land together.
func (r *sqlxPlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	if player.Entity.ID == "" {
		player.Entity.ID = util.NewULID()
	}
	if player.ID == "" {
		player.ID = util.NewULID()
	}
	player.CreatedAt, player.UpdatedAt = now, now
	player.Entity.CreatedAt, player.Entity.UpdatedAt = now, now

	entity := models.Entity{
		ID:        player.Entity.ID,
		Name:      player.Entity.Name,
		Email:     player.Entity.Email,
		UserID:    util.StringToNullString(player.Entity.UserID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := exec.NamedExecContext(ctx,
		`INSERT INTO entities (id, name, email, user_id, created_at, updated_at)
		 VALUES (:id, :name, :email, :user_id, :created_at, :updated_at)`, entity); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return duplicateFieldError(constraint, "email", "user_id")
		}
		return fmt.Errorf("failed to create entity: %w", err)
	}

	if _, err := exec.ExecContext(ctx,
		`INSERT INTO players (id, entity_id, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		player.ID, player.Entity.ID, string(player.Role), now, now); err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *sqlxPlayerRepository) GetPlayerByID(ctx context.Context, id string) (*domain.Player, error) {
	var row models.PlayerRow
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, playerSelect+` WHERE p.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return toDomainPlayer(&row), nil
}

func (r *sqlxPlayerRepository) ListPlayers(ctx context.Context, page domain.Pagination) ([]domain.Player, int, error) {
	page = normalizePage(page)
	exec := GetExecutor(ctx, r.db)

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM players`); err != nil {
		return nil, 0, fmt.Errorf("failed to count players: %w", err)
	}

	var rows []models.PlayerRow
	if err := exec.SelectContext(ctx, &rows, playerSelect+` ORDER BY p.created_at, p.id LIMIT $1 OFFSET $2`, page.Limit, page.Offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list players: %w", err)
	}

	players := make([]domain.Player, 0, len(rows))
	for i := range rows {
		players = append(players, *toDomainPlayer(&rows[i]))
	}
	return players, total, nil
}

// UpdatePlayer changes the player's role and its entity's name and email.
func (r *sqlxPlayerRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	result, err := exec.ExecContext(ctx,
		`UPDATE players SET role = $1, updated_at = $2 WHERE id = $3`,
		string(player.Role), now, player.ID)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("player %s not found", player.ID))
	}

	if _, err := exec.ExecContext(ctx,
		`UPDATE entities SET name = $1, email = $2, updated_at = $3 WHERE id = $4`,
		player.Entity.Name, player.Entity.Email, now, player.Entity.ID); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return duplicateFieldError(constraint, "email")
		}
		return fmt.Errorf("failed to update entity: %w", err)
	}
	player.UpdatedAt, player.Entity.UpdatedAt = now, now
	return nil
}
