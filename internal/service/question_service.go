package service

import (
	"context"
	"fmt"
	"strings"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/logger"

	"go.uber.org/zap"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, q *domain.Question) error
	GetQuestion(ctx context.Context, id int64) (*domain.Question, error)
	ListQuestions(ctx context.Context, page domain.Pagination) ([]domain.Question, int, error)
	UpdateQuestion(ctx context.Context, q *domain.Question) error
}

type questionServiceImpl struct {
	questionRepo domain.QuestionRepository
	tx           domain.TransactionManager
}

func NewQuestionService(questionRepo domain.QuestionRepository, tx domain.TransactionManager) QuestionService {
	return &questionServiceImpl{questionRepo: questionRepo, tx: tx}
}

func normalizeQuestion(q *domain.Question) {
	q.QuestionText = strings.TrimSpace(q.QuestionText)
	if d, ok := domain.ParseDifficulty(string(q.Difficulty)); ok {
		q.Difficulty = d
	}
	for i := range q.Options {
		q.Options[i].OptionText = strings.TrimSpace(q.Options[i].OptionText)
	}
}

// CreateQuestion stores a question with its options. Exactly one option
// must be correct.
func (s *questionServiceImpl) CreateQuestion(ctx context.Context, q *domain.Question) error {
	normalizeQuestion(q)
	if err := q.Validate(); err != nil {
		return err
	}
	if err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.questionRepo.CreateQuestion(ctx, q)
	}); err != nil {
		return err
	}
	logger.Get().Info("Question created", zap.Int64("questionID", q.ID), zap.String("difficulty", string(q.Difficulty)))
	return nil
}

func (s *questionServiceImpl) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	q, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get question", err)
	}
	if q == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("question %d not found", id))
	}
	return q, nil
}

func (s *questionServiceImpl) ListQuestions(ctx context.Context, page domain.Pagination) ([]domain.Question, int, error) {
	questions, total, err := s.questionRepo.ListQuestions(ctx, page)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to list questions", err)
	}
	return questions, total, nil
}

func (s *questionServiceImpl) UpdateQuestion(ctx context.Context, q *domain.Question) error {
	normalizeQuestion(q)
	if err := q.Validate(); err != nil {
		return err
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.questionRepo.UpdateQuestion(ctx, q)
	})
}
