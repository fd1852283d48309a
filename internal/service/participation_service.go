package service

import (
	"context"
	"fmt"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/logger"

	"go.uber.org/zap"
)

type ParticipationService interface {
	// CreateParticipation starts a participation for userID, or for the
	// caller when userID is empty. Only admins may act for others.
	CreateParticipation(ctx context.Context, caller domain.Caller, triviaID int64, userID string, completed bool) (*domain.Participation, error)
	GetParticipation(ctx context.Context, caller domain.Caller, id int64) (*domain.Participation, error)
	ListParticipations(ctx context.Context, caller domain.Caller, filter domain.ParticipationFilter, page domain.Pagination) ([]domain.Participation, int, error)
	SetCompleted(ctx context.Context, caller domain.Caller, id int64, completed bool) (*domain.Participation, error)
}

type participationServiceImpl struct {
	participationRepo domain.ParticipationRepository
	triviaRepo        domain.TriviaRepository
	userRepo          domain.UserRepository
	tx                domain.TransactionManager
	ranking           RankingInvalidator
}

func NewParticipationService(
	participationRepo domain.ParticipationRepository,
	triviaRepo domain.TriviaRepository,
	userRepo domain.UserRepository,
	tx domain.TransactionManager,
	ranking RankingInvalidator,
) ParticipationService {
	return &participationServiceImpl{
		participationRepo: participationRepo,
		triviaRepo:        triviaRepo,
		userRepo:          userRepo,
		tx:                tx,
		ranking:           ranking,
	}
}

func (s *participationServiceImpl) CreateParticipation(ctx context.Context, caller domain.Caller, triviaID int64, userID string, completed bool) (*domain.Participation, error) {
	if userID == "" {
		userID = caller.UserID
	}
	if !caller.CanActFor(userID) {
		return nil, domain.NewForbiddenError("only admins can create participations for other users")
	}

	trivia, err := s.triviaRepo.GetTriviaByID(ctx, triviaID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get trivia", err)
	}
	if trivia == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("trivia %d not found", triviaID))
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("user %s not found", userID))
	}

	p := &domain.Participation{
		UserID:     userID,
		TriviaID:   triviaID,
		TriviaName: trivia.Name,
		Username:   user.Username,
		Completed:  completed,
	}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.participationRepo.CreateParticipation(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Participation created",
		zap.Int64("participationID", p.ID),
		zap.String("userID", userID),
		zap.Int64("triviaID", triviaID))
	if s.ranking != nil {
		s.ranking.Invalidate(ctx)
	}
	return p, nil
}

func (s *participationServiceImpl) GetParticipation(ctx context.Context, caller domain.Caller, id int64) (*domain.Participation, error) {
	p, err := s.participationRepo.GetParticipationByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get participation", err)
	}
	if p == nil || !caller.CanActFor(p.UserID) {
		return nil, domain.NewNotFoundError(fmt.Sprintf("participation %d not found", id))
	}
	return p, nil
}

// ListParticipations pins non-admin callers to their own participations.
func (s *participationServiceImpl) ListParticipations(ctx context.Context, caller domain.Caller, filter domain.ParticipationFilter, page domain.Pagination) ([]domain.Participation, int, error) {
	if !caller.Role.IsAdmin() {
		if filter.UserID != "" && filter.UserID != caller.UserID {
			return nil, 0, domain.NewForbiddenError("cannot list participations of another user")
		}
		filter.UserID = caller.UserID
	}
	items, total, err := s.participationRepo.ListParticipations(ctx, filter, page)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to list participations", err)
	}
	return items, total, nil
}

func (s *participationServiceImpl) SetCompleted(ctx context.Context, caller domain.Caller, id int64, completed bool) (*domain.Participation, error) {
	existing, err := s.GetParticipation(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	var updated *domain.Participation
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.participationRepo.SetCompleted(ctx, id, completed)
		return err
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("participation %d not found", id))
	}
	updated.Username, updated.TriviaName = existing.Username, existing.TriviaName
	return updated, nil
}
