package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const participationSelect = `SELECT p.id, p.user_id, p.trivia_id, p.score, p.completed, p.created_at, p.updated_at,
       u.username, t.name AS trivia_name
  FROM participations p
  JOIN users u ON u.id = p.user_id
  JOIN trivias t ON t.id = p.trivia_id`

const participationReturning = `RETURNING id, user_id, trivia_id, score, completed, created_at, updated_at`

type sqlxParticipationRepository struct {
	db *sqlx.DB
}

func NewSQLXParticipationRepository(db *sqlx.DB) domain.ParticipationRepository {
	return &sqlxParticipationRepository{db: db}
}

func toDomainParticipation(m *models.Participation) *domain.Participation {
	return &domain.Participation{
		ID:         m.ID,
		UserID:     m.UserID,
		TriviaID:   m.TriviaID,
		TriviaName: m.TriviaName,
		Username:   m.Username,
		Score:      m.Score,
		Completed:  m.Completed,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// filterClause renders the WHERE clause for f with positional args.
func filterClause(f domain.ParticipationFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if f.TriviaID != 0 {
		args = append(args, f.TriviaID)
		conds = append(conds, fmt.Sprintf("p.trivia_id = $%d", len(args)))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("p.user_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *sqlxParticipationRepository) CreateParticipation(ctx context.Context, p *domain.Participation) error {
	now := time.Now()
	var row models.Participation
	err := GetExecutor(ctx, r.db).GetContext(ctx, &row,
		`INSERT INTO participations (user_id, trivia_id, score, completed, created_at, updated_at)
		 VALUES ($1, $2, 0, $3, $4, $4) `+participationReturning,
		p.UserID, p.TriviaID, p.Completed, now)
	if err != nil {
		if constraint, ok := foreignKeyViolation(err); ok {
			field := "trivia_id"
			if strings.Contains(constraint, "user") {
				field = "user_id"
			}
			return domain.NewFieldError(field, "does not exist")
		}
		return fmt.Errorf("failed to create participation: %w", err)
	}
	p.ID, p.Score, p.CreatedAt, p.UpdatedAt = row.ID, row.Score, row.CreatedAt, row.UpdatedAt
	return nil
}

func (r *sqlxParticipationRepository) GetParticipationByID(ctx context.Context, id int64) (*domain.Participation, error) {
	var row models.Participation
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, participationSelect+` WHERE p.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}
	return toDomainParticipation(&row), nil
}

func (r *sqlxParticipationRepository) ListParticipations(ctx context.Context, filter domain.ParticipationFilter, page domain.Pagination) ([]domain.Participation, int, error) {
	page = normalizePage(page)
	exec := GetExecutor(ctx, r.db)
	where, args := filterClause(filter)

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM participations p`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count participations: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY p.id LIMIT $%d OFFSET $%d", participationSelect, where, len(args)+1, len(args)+2)
	var rows []models.Participation
	if err := exec.SelectContext(ctx, &rows, query, append(args, page.Limit, page.Offset)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list participations: %w", err)
	}
	return toDomainParticipations(rows), total, nil
}

func (r *sqlxParticipationRepository) ListForRanking(ctx context.Context, filter domain.ParticipationFilter) ([]domain.Participation, error) {
	where, args := filterClause(filter)
	var rows []models.Participation
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, participationSelect+where+` ORDER BY p.id`, args...); err != nil {
		return nil, fmt.Errorf("failed to load participations for ranking (%s): %w", filter.Mode(), err)
	}
	return toDomainParticipations(rows), nil
}

func (r *sqlxParticipationRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Participation, error) {
	return r.updateReturning(ctx,
		`UPDATE participations SET completed = $1, updated_at = now() WHERE id = $2 `+participationReturning,
		completed, id)
}

func (r *sqlxParticipationRepository) AddScore(ctx context.Context, id int64, points int) (*domain.Participation, error) {
	return r.updateReturning(ctx,
		`UPDATE participations SET score = score + $1, updated_at = now() WHERE id = $2 `+participationReturning,
		points, id)
}

func (r *sqlxParticipationRepository) updateReturning(ctx context.Context, query string, args ...interface{}) (*domain.Participation, error) {
	var row models.Participation
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update participation: %w", err)
	}
	return toDomainParticipation(&row), nil
}

// LockUserTrivia takes a transaction-scoped advisory lock on (userID, triviaID).
// It must be called inside a transaction.
func (r *sqlxParticipationRepository) LockUserTrivia(ctx context.Context, userID string, triviaID int64) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, $2))`, userID, triviaID); err != nil {
		return fmt.Errorf("failed to lock participation for user %s trivia %d: %w", userID, triviaID, err)
	}
	return nil
}

func (r *sqlxParticipationRepository) LatestParticipation(ctx context.Context, userID string, triviaID int64) (*domain.Participation, error) {
	var row models.Participation
	err := GetExecutor(ctx, r.db).GetContext(ctx, &row,
		participationSelect+` WHERE p.user_id = $1 AND p.trivia_id = $2 ORDER BY p.id DESC LIMIT 1`,
		userID, triviaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest participation: %w", err)
	}
	return toDomainParticipation(&row), nil
}

func toDomainParticipations(rows []models.Participation) []domain.Participation {
	out := make([]domain.Participation, 0, len(rows))
	for i := range rows {
		out = append(out, *toDomainParticipation(&rows[i]))
	}
	return out
}
