package repository

import (
	"context"
	"fmt"
	"time"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const answerColumns = `id, user_id, question_id, selected_option_id, trivia_id, participation_id, points, created_at`

type sqlxAnswerRepository struct {
	db *sqlx.DB
}

func NewSQLXAnswerRepository(db *sqlx.DB) domain.AnswerRepository {
	return &sqlxAnswerRepository{db: db}
}

func toDomainAnswer(m *models.UserAnswer) domain.UserAnswer {
	return domain.UserAnswer{
		ID:               m.ID,
		UserID:           m.UserID,
		QuestionID:       m.QuestionID,
		SelectedOptionID: m.SelectedOptionID,
		TriviaID:         m.TriviaID,
		ParticipationID:  m.ParticipationID,
		Points:           m.Points,
		CreatedAt:        m.CreatedAt,
	}
}

func (r *sqlxAnswerRepository) CreateAnswer(ctx context.Context, a *domain.UserAnswer) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	var id int64
	err := GetExecutor(ctx, r.db).GetContext(ctx, &id,
		`INSERT INTO user_answers (user_id, question_id, selected_option_id, trivia_id, participation_id, points, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		a.UserID, a.QuestionID, a.SelectedOptionID, a.TriviaID, a.ParticipationID, a.Points, a.CreatedAt)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.NewDuplicateAnswerError(a.QuestionID, a.ParticipationID)
		}
		return fmt.Errorf("failed to create user answer: %w", err)
	}
	a.ID = id
	return nil
}

// ListAnswers returns answers newest first. An empty userID lists everyone's.
func (r *sqlxAnswerRepository) ListAnswers(ctx context.Context, userID string, page domain.Pagination) ([]domain.UserAnswer, int, error) {
	page = normalizePage(page)
	exec := GetExecutor(ctx, r.db)

	where := ""
	args := []interface{}{}
	if userID != "" {
		where = " WHERE user_id = $1"
		args = append(args, userID)
	}

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM user_answers`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count user answers: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM user_answers%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		answerColumns, where, len(args)+1, len(args)+2)
	var rows []models.UserAnswer
	if err := exec.SelectContext(ctx, &rows, query, append(args, page.Limit, page.Offset)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list user answers: %w", err)
	}

	answers := make([]domain.UserAnswer, 0, len(rows))
	for i := range rows {
		answers = append(answers, toDomainAnswer(&rows[i]))
	}
	return answers, total, nil
}
