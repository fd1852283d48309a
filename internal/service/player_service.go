package service

import (
	"context"
	"fmt"
	"strings"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, req dto.CreatePlayerRequest) (*domain.Player, error)
	GetPlayer(ctx context.Context, id string) (*domain.Player, error)
	ListPlayers(ctx context.Context, page domain.Pagination) ([]domain.Player, int, error)
	UpdatePlayer(ctx context.Context, id string, req dto.UpdatePlayerRequest) (*domain.Player, error)
}

type playerServiceImpl struct {
	playerRepo domain.PlayerRepository
	userRepo   domain.UserRepository
	tx         domain.TransactionManager
}

func NewPlayerService(playerRepo domain.PlayerRepository, userRepo domain.UserRepository, tx domain.TransactionManager) PlayerService {
	return &playerServiceImpl{playerRepo: playerRepo, userRepo: userRepo, tx: tx}
}

func (s *playerServiceImpl) CreatePlayer(ctx context.Context, req dto.CreatePlayerRequest) (*domain.Player, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	player := &domain.Player{
		Role: role,
		Entity: domain.Entity{
			Name:   strings.TrimSpace(req.Name),
			Email:  strings.ToLower(strings.TrimSpace(req.Email)),
			UserID: req.UserID,
		},
	}
	if err := player.Validate(); err != nil {
		return nil, err
	}

	if req.UserID != "" {
		user, err := s.userRepo.GetUserByID(ctx, req.UserID)
		if err != nil {
			return nil, domain.NewInternalError("failed to look up user", err)
		}
		if user == nil {
			return nil, domain.NewFieldError("user_id", "does not exist")
		}
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.playerRepo.CreatePlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

func (s *playerServiceImpl) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	player, err := s.playerRepo.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get player", err)
	}
	if player == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("player %s not found", id))
	}
	return player, nil
}

func (s *playerServiceImpl) ListPlayers(ctx context.Context, page domain.Pagination) ([]domain.Player, int, error) {
	players, total, err := s.playerRepo.ListPlayers(ctx, page)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to list players", err)
	}
	return players, total, nil
}

func (s *playerServiceImpl) UpdatePlayer(ctx context.Context, id string, req dto.UpdatePlayerRequest) (*domain.Player, error) {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		player.Entity.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		player.Entity.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		if player.Role, err = domain.ParseRole(*req.Role); err != nil {
			return nil, err
		}
	}
	if err := player.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.playerRepo.UpdatePlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}
