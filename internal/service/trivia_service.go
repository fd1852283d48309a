package service

import (
	"context"
	"fmt"
	"strings"

	"tala-trivia/internal/domain"
)

type TriviaService interface {
	CreateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) error
	GetTrivia(ctx context.Context, id int64) (*domain.Trivia, error)
	ListTrivias(ctx context.Context, page domain.Pagination) ([]domain.Trivia, int, error)
	// UpdateTrivia keeps the current questions when questionIDs is nil.
	UpdateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) (*domain.Trivia, error)
}

type triviaServiceImpl struct {
	triviaRepo domain.TriviaRepository
	tx         domain.TransactionManager
	ranking    RankingInvalidator
}

// NewTriviaService wires the trivia store. ranking may be nil.
func NewTriviaService(triviaRepo domain.TriviaRepository, tx domain.TransactionManager, ranking RankingInvalidator) TriviaService {
	return &triviaServiceImpl{triviaRepo: triviaRepo, tx: tx, ranking: ranking}
}

// dedupeIDs keeps the first occurrence of each id. A nil input stays nil.
func dedupeIDs(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *triviaServiceImpl) CreateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) error {
	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return err
	}
	ids := dedupeIDs(questionIDs)
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.triviaRepo.CreateTrivia(ctx, t, ids); err != nil {
			return err
		}
		created, err := s.triviaRepo.GetTriviaByID(ctx, t.ID)
		if err != nil {
			return err
		}
		if created != nil {
			*t = *created
		}
		return nil
	})
}

func (s *triviaServiceImpl) GetTrivia(ctx context.Context, id int64) (*domain.Trivia, error) {
	t, err := s.triviaRepo.GetTriviaByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get trivia", err)
	}
	if t == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("trivia %d not found", id))
	}
	return t, nil
}

func (s *triviaServiceImpl) ListTrivias(ctx context.Context, page domain.Pagination) ([]domain.Trivia, int, error) {
	trivias, total, err := s.triviaRepo.ListTrivias(ctx, page)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to list trivias", err)
	}
	return trivias, total, nil
}

func (s *triviaServiceImpl) UpdateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) (*domain.Trivia, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	var updated *domain.Trivia
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.triviaRepo.UpdateTrivia(ctx, t, dedupeIDs(questionIDs)); err != nil {
			return err
		}
		var err error
		updated, err = s.triviaRepo.GetTriviaByID(ctx, t.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("trivia %d not found", t.ID))
	}
	// Cached rankings carry the trivia name.
	if s.ranking != nil {
		s.ranking.Invalidate(ctx)
	}
	return updated, nil
}
