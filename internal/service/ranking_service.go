package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"tala-trivia/internal/cache"
	"tala-trivia/internal/domain"
	"tala-trivia/internal/logger"
	"tala-trivia/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RankingInvalidator is notified whenever a score changes.
type RankingInvalidator interface {
	Invalidate(ctx context.Context)
}

type RankingService interface {
	RankingInvalidator
	GetRanking(ctx context.Context, filter domain.ParticipationFilter) ([]domain.LeaderboardEntry, error)
}

type rankingServiceImpl struct {
	participationRepo domain.ParticipationRepository
	cache             domain.Cache
	ttl               time.Duration
	metrics           *metrics.Metrics
	group             singleflight.Group
}

// NewRankingService builds the leaderboard service. cache may be nil, in
// which case every call reads the participations directly.
func NewRankingService(participationRepo domain.ParticipationRepository, c domain.Cache, ttl time.Duration, m *metrics.Metrics) RankingService {
	return &rankingServiceImpl{
		participationRepo: participationRepo,
		cache:             c,
		ttl:               ttl,
		metrics:           m,
	}
}

func (s *rankingServiceImpl) compute(ctx context.Context, filter domain.ParticipationFilter) ([]domain.LeaderboardEntry, error) {
	participations, err := s.participationRepo.ListForRanking(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("failed to load participations", err)
	}
	return domain.Rank(participations), nil
}

func (s *rankingServiceImpl) version(ctx context.Context) (int64, error) {
	raw, err := s.cache.Get(ctx, cache.RankingVersionKey())
	if errors.Is(err, domain.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// GetRanking returns the leaderboard for filter. Results are cached per
// ranking version; any cache failure falls back to computing directly.
func (s *rankingServiceImpl) GetRanking(ctx context.Context, filter domain.ParticipationFilter) ([]domain.LeaderboardEntry, error) {
	if s.cache == nil {
		return s.compute(ctx, filter)
	}

	version, err := s.version(ctx)
	if err != nil {
		logger.Get().Warn("Ranking cache version lookup failed", zap.Error(err))
		s.metrics.ObserveRankingCache("error")
		return s.compute(ctx, filter)
	}
	key := cache.RankingKey(version, filter.TriviaID, filter.UserID)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var entries []domain.LeaderboardEntry
		if jsonErr := json.Unmarshal([]byte(cached), &entries); jsonErr == nil {
			s.metrics.ObserveRankingCache("hit")
			if entries == nil {
				entries = []domain.LeaderboardEntry{}
			}
			return entries, nil
		}
		logger.Get().Warn("Discarding unreadable ranking cache entry", zap.String("key", key))
		s.metrics.ObserveRankingCache("error")
	case errors.Is(err, domain.ErrCacheMiss):
		s.metrics.ObserveRankingCache("miss")
	default:
		logger.Get().Warn("Ranking cache read failed", zap.String("key", key), zap.Error(err))
		s.metrics.ObserveRankingCache("error")
		return s.compute(ctx, filter)
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		entries, err := s.compute(ctx, filter)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(entries)
		if err != nil {
			return entries, nil
		}
		if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
			logger.Get().Warn("Ranking cache write failed", zap.String("key", key), zap.Error(err))
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.LeaderboardEntry), nil
}

// Invalidate bumps the ranking version so every cached leaderboard goes stale.
func (s *rankingServiceImpl) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(ctx, cache.RankingVersionKey()); err != nil {
		logger.Get().Warn("Failed to bump ranking version", zap.Error(err))
	}
}
