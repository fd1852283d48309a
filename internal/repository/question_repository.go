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

const questionColumns = `id, question_text, difficulty, created_at, updated_at`

type sqlxQuestionRepository struct {
	db *sqlx.DB
}

func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

func toDomainQuestion(m *models.Question, opts []models.AnswerOption) *domain.Question {
	q := &domain.Question{
		ID:           m.ID,
		QuestionText: m.QuestionText,
		Difficulty:   domain.Difficulty(m.Difficulty),
		Options:      make([]domain.AnswerOption, 0, len(opts)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, o := range opts {
		q.Options = append(q.Options, domain.AnswerOption{
			ID:         o.ID,
			QuestionID: o.QuestionID,
			OptionText: o.OptionText,
			IsCorrect:  o.IsCorrect,
		})
	}
	return q
}

// CreateQuestion inserts the question and its options; run it in a transaction.
func (r *sqlxQuestionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	var row models.Question
	err := exec.GetContext(ctx, &row,
		`INSERT INTO questions (question_text, difficulty, created_at, updated_at)
		 VALUES ($1, $2, $3, $3) RETURNING `+questionColumns,
		q.QuestionText, string(q.Difficulty), now)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return duplicateFieldError(constraint, "question_text")
		}
		return fmt.Errorf("failed to create question: %w", err)
	}
	q.ID, q.CreatedAt, q.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt

	for i := range q.Options {
		if err := r.insertOption(ctx, exec, q.ID, &q.Options[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *sqlxQuestionRepository) insertOption(ctx context.Context, exec DBTX, questionID int64, opt *domain.AnswerOption) error {
	var id int64
	if err := exec.GetContext(ctx, &id,
		`INSERT INTO answer_options (question_id, option_text, is_correct) VALUES ($1, $2, $3) RETURNING id`,
		questionID, opt.OptionText, opt.IsCorrect); err != nil {
		return fmt.Errorf("failed to create answer option: %w", err)
	}
	opt.ID, opt.QuestionID = id, questionID
	return nil
}

func (r *sqlxQuestionRepository) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.Question
	if err := exec.GetContext(ctx, &row, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	opts, err := loadOptions(ctx, r.db, exec, []int64{row.ID})
	if err != nil {
		return nil, err
	}
	return toDomainQuestion(&row, opts[row.ID]), nil
}

func (r *sqlxQuestionRepository) ListQuestions(ctx context.Context, page domain.Pagination) ([]domain.Question, int, error) {
	page = normalizePage(page)
	exec := GetExecutor(ctx, r.db)

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM questions`); err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows,
		`SELECT `+questionColumns+` FROM questions ORDER BY id LIMIT $1 OFFSET $2`, page.Limit, page.Offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	questions, err := withOptions(ctx, r.db, exec, rows)
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// UpdateQuestion rewrites text and difficulty and reconciles options:
// options with an id are updated, options without one are inserted and
// stored options missing from q are removed. Options that were already
// answered cannot be removed.
func (r *sqlxQuestionRepository) UpdateQuestion(ctx context.Context, q *domain.Question) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	result, err := exec.ExecContext(ctx,
		`UPDATE questions SET question_text = $1, difficulty = $2, updated_at = $3 WHERE id = $4`,
		q.QuestionText, string(q.Difficulty), now, q.ID)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return duplicateFieldError(constraint, "question_text")
		}
		return fmt.Errorf("failed to update question: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("question %d not found", q.ID))
	}
	q.UpdatedAt = now

	kept := make([]int64, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt.ID != 0 {
			kept = append(kept, opt.ID)
		}
	}

	if len(kept) == 0 {
		_, err = exec.ExecContext(ctx, `DELETE FROM answer_options WHERE question_id = $1`, q.ID)
	} else {
		var query string
		var args []interface{}
		query, args, err = sqlx.In(`DELETE FROM answer_options WHERE question_id = ? AND id NOT IN (?)`, q.ID, kept)
		if err != nil {
			return fmt.Errorf("failed to build option cleanup: %w", err)
		}
		_, err = exec.ExecContext(ctx, r.db.Rebind(query), args...)
	}
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return domain.NewFieldError("options", "options that were already answered cannot be removed")
		}
		return fmt.Errorf("failed to remove answer options: %w", err)
	}

	for i := range q.Options {
		opt := &q.Options[i]
		if opt.ID == 0 {
			if err := r.insertOption(ctx, exec, q.ID, opt); err != nil {
				return err
			}
			continue
		}
		res, err := exec.ExecContext(ctx,
			`UPDATE answer_options SET option_text = $1, is_correct = $2 WHERE id = $3 AND question_id = $4`,
			opt.OptionText, opt.IsCorrect, opt.ID, q.ID)
		if err != nil {
			return fmt.Errorf("failed to update answer option: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		} else if n == 0 {
			return domain.NewFieldError("options.id", fmt.Sprintf("option %d does not belong to question %d", opt.ID, q.ID))
		}
		opt.QuestionID = q.ID
	}
	return nil
}

// loadOptions fetches the options of every question in ids, keyed by question.
func loadOptions(ctx context.Context, db *sqlx.DB, exec DBTX, ids []int64) (map[int64][]models.AnswerOption, error) {
	byQuestion := make(map[int64][]models.AnswerOption, len(ids))
	if len(ids) == 0 {
		return byQuestion, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, question_id, option_text, is_correct FROM answer_options WHERE question_id IN (?) ORDER BY question_id, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build option query: %w", err)
	}

	var opts []models.AnswerOption
	if err := exec.SelectContext(ctx, &opts, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load answer options: %w", err)
	}
	for _, o := range opts {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], o)
	}
	return byQuestion, nil
}

func withOptions(ctx context.Context, db *sqlx.DB, exec DBTX, rows []models.Question) ([]domain.Question, error) {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	opts, err := loadOptions(ctx, db, exec, ids)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, *toDomainQuestion(&rows[i], opts[rows[i].ID]))
	}
	return questions, nil
}
