package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const triviaColumns = `id, name, description, created_at, updated_at`

type sqlxTriviaRepository struct {
	db *sqlx.DB
}

func NewSQLXTriviaRepository(db *sqlx.DB) domain.TriviaRepository {
	return &sqlxTriviaRepository{db: db}
}

func toDomainTrivia(m *models.Trivia) *domain.Trivia {
	return &domain.Trivia{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Questions:   []domain.Question{},
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreateTrivia inserts the trivia and links questionIDs in the given order.
func (r *sqlxTriviaRepository) CreateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	var row models.Trivia
	if err := exec.GetContext(ctx, &row,
		`INSERT INTO trivias (name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $3) RETURNING `+triviaColumns,
		t.Name, t.Description, now); err != nil {
		return fmt.Errorf("failed to create trivia: %w", err)
	}
	t.ID, t.CreatedAt, t.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt

	return r.linkQuestions(ctx, exec, t.ID, questionIDs)
}

func (r *sqlxTriviaRepository) linkQuestions(ctx context.Context, exec DBTX, triviaID int64, questionIDs []int64) error {
	for pos, qid := range questionIDs {
		if _, err := exec.ExecContext(ctx,
			`INSERT INTO trivia_questions (trivia_id, question_id, position) VALUES ($1, $2, $3)
			 ON CONFLICT (trivia_id, question_id) DO NOTHING`,
			triviaID, qid, pos); err != nil {
			if _, ok := foreignKeyViolation(err); ok {
				return domain.NewFieldError("question_ids", fmt.Sprintf("question %d does not exist", qid))
			}
			return fmt.Errorf("failed to link question %d: %w", qid, err)
		}
	}
	return nil
}

func (r *sqlxTriviaRepository) GetTriviaByID(ctx context.Context, id int64) (*domain.Trivia, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.Trivia
	if err := exec.GetContext(ctx, &row, `SELECT `+triviaColumns+` FROM trivias WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trivia: %w", err)
	}

	t := toDomainTrivia(&row)
	questions, err := r.questionsOf(ctx, exec, []int64{t.ID})
	if err != nil {
		return nil, err
	}
	t.Questions = questions[t.ID]
	return t, nil
}

func (r *sqlxTriviaRepository) ListTrivias(ctx context.Context, page domain.Pagination) ([]domain.Trivia, int, error) {
	page = normalizePage(page)
	exec := GetExecutor(ctx, r.db)

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM trivias`); err != nil {
		return nil, 0, fmt.Errorf("failed to count trivias: %w", err)
	}

	var rows []models.Trivia
	if err := exec.SelectContext(ctx, &rows,
		`SELECT `+triviaColumns+` FROM trivias ORDER BY id LIMIT $1 OFFSET $2`, page.Limit, page.Offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list trivias: %w", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	questions, err := r.questionsOf(ctx, exec, ids)
	if err != nil {
		return nil, 0, err
	}

	trivias := make([]domain.Trivia, 0, len(rows))
	for i := range rows {
		t := toDomainTrivia(&rows[i])
		if qs, ok := questions[t.ID]; ok {
			t.Questions = qs
		}
		trivias = append(trivias, *t)
	}
	return trivias, total, nil
}

// UpdateTrivia rewrites name and description. A non-nil questionIDs replaces
// the linked question set.
func (r *sqlxTriviaRepository) UpdateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	result, err := exec.ExecContext(ctx,
		`UPDATE trivias SET name = $1, description = $2, updated_at = $3 WHERE id = $4`,
		t.Name, t.Description, now, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update trivia: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("trivia %d not found", t.ID))
	}
	t.UpdatedAt = now

	if questionIDs == nil {
		return nil
	}
	if _, err := exec.ExecContext(ctx, `DELETE FROM trivia_questions WHERE trivia_id = $1`, t.ID); err != nil {
		return fmt.Errorf("failed to unlink questions: %w", err)
	}
	return r.linkQuestions(ctx, exec, t.ID, questionIDs)
}

func (r *sqlxTriviaRepository) ContainsQuestion(ctx context.Context, triviaID, questionID int64) (bool, error) {
	var exists bool
	err := GetExecutor(ctx, r.db).GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM trivia_questions WHERE trivia_id = $1 AND question_id = $2)`,
		triviaID, questionID)
	if err != nil {
		return false, fmt.Errorf("failed to check trivia question: %w", err)
	}
	return exists, nil
}

type triviaQuestionRow struct {
	TriviaID int64 `db:"trivia_id"`
	models.Question
}

// questionsOf loads the questions of each trivia in link order, with options.
func (r *sqlxTriviaRepository) questionsOf(ctx context.Context, exec DBTX, triviaIDs []int64) (map[int64][]domain.Question, error) {
	result := make(map[int64][]domain.Question, len(triviaIDs))
	if len(triviaIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(
		`SELECT tq.trivia_id, q.id, q.question_text, q.difficulty, q.created_at, q.updated_at
		   FROM trivia_questions tq
		   JOIN questions q ON q.id = tq.question_id
		  WHERE tq.trivia_id IN (?)
		  ORDER BY tq.trivia_id, tq.position, q.id`, triviaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build trivia question query: %w", err)
	}

	var rows []triviaQuestionRow
	if err := exec.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load trivia questions: %w", err)
	}

	qids := make([]int64, 0, len(rows))
	seen := make(map[int64]bool, len(rows))
	for _, row := range rows {
		if !seen[row.ID] {
			seen[row.ID] = true
			qids = append(qids, row.ID)
		}
	}
	opts, err := loadOptions(ctx, r.db, exec, qids)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		row := &rows[i]
		result[row.TriviaID] = append(result[row.TriviaID], *toDomainQuestion(&row.Question, opts[row.ID]))
	}
	return result, nil
}
