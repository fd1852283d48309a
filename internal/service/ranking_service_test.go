package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tala-trivia/internal/adapter"
	"tala-trivia/internal/cache"
	"tala-trivia/internal/domain"
	"tala-trivia/internal/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rankingParticipations() []domain.Participation {
	return []domain.Participation{
		{ID: 1, UserID: "u1", Username: "ana", TriviaID: 1, TriviaName: "Labor law", Score: 3},
		{ID: 2, UserID: "u2", Username: "ben", TriviaID: 1, TriviaName: "Labor law", Score: 5},
		{ID: 3, UserID: "u1", Username: "ana", TriviaID: 2, TriviaName: "Safety", Score: 4},
	}
}

func newMiniredisCache(t *testing.T) (*miniredis.Miniredis, domain.Cache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, adapter.NewRedisCacheAdapter(client)
}

func TestRankingService_ComputesAndCaches(t *testing.T) {
	mr, c := newMiniredisCache(t)
	repo := new(MockParticipationRepository)
	m := metrics.NewMetrics(prometheus.NewRegistry())
	svc := NewRankingService(repo, c, time.Minute, m)

	repo.On("ListForRanking", mock.Anything, domain.ParticipationFilter{}).Return(rankingParticipations(), nil).Once()

	first, err := svc.GetRanking(context.Background(), domain.ParticipationFilter{})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "u1", first[0].UserID)
	assert.Equal(t, 7, first[0].TotalScore)
	assert.Len(t, first[0].Trivias, 2)
	assert.True(t, mr.Exists(cache.RankingKey(0, 0, "")))

	second, err := svc.GetRanking(context.Background(), domain.ParticipationFilter{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	repo.AssertNumberOfCalls(t, "ListForRanking", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RankingCache.WithLabelValues("miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RankingCache.WithLabelValues("hit")))
}

func TestRankingService_InvalidateBumpsVersion(t *testing.T) {
	mr, c := newMiniredisCache(t)
	repo := new(MockParticipationRepository)
	svc := NewRankingService(repo, c, time.Minute, nil)
	filter := domain.ParticipationFilter{TriviaID: 1}

	before := []domain.Participation{{ID: 1, UserID: "u1", Username: "ana", TriviaID: 1, TriviaName: "Labor law", Score: 3}}
	after := []domain.Participation{{ID: 1, UserID: "u1", Username: "ana", TriviaID: 1, TriviaName: "Labor law", Score: 6}}
	repo.On("ListForRanking", mock.Anything, filter).Return(before, nil).Once()
	repo.On("ListForRanking", mock.Anything, filter).Return(after, nil).Once()

	ranking, err := svc.GetRanking(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 3, ranking[0].TotalScore)

	svc.Invalidate(context.Background())
	version, err := mr.Get(cache.RankingVersionKey())
	require.NoError(t, err)
	assert.Equal(t, "1", version)

	ranking, err = svc.GetRanking(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 6, ranking[0].TotalScore)
	repo.AssertExpectations(t)
}

func TestRankingService_EmptyResult(t *testing.T) {
	_, c := newMiniredisCache(t)
	repo := new(MockParticipationRepository)
	svc := NewRankingService(repo, c, time.Minute, nil)
	filter := domain.ParticipationFilter{TriviaID: 404}

	repo.On("ListForRanking", mock.Anything, filter).Return([]domain.Participation{}, nil).Once()

	for i := 0; i < 2; i++ {
		ranking, err := svc.GetRanking(context.Background(), filter)
		require.NoError(t, err)
		assert.NotNil(t, ranking)
		assert.Empty(t, ranking)
	}
	repo.AssertExpectations(t)
}

func TestRankingService_CacheFailureFallsBack(t *testing.T) {
	c := new(MockCache)
	repo := new(MockParticipationRepository)
	m := metrics.NewMetrics(prometheus.NewRegistry())
	svc := NewRankingService(repo, c, time.Minute, m)

	c.On("Get", mock.Anything, cache.RankingVersionKey()).Return("", errors.New("connection refused"))
	repo.On("ListForRanking", mock.Anything, domain.ParticipationFilter{UserID: "u1"}).Return(rankingParticipations()[:1], nil)

	ranking, err := svc.GetRanking(context.Background(), domain.ParticipationFilter{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, 3, ranking[0].TotalScore)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RankingCache.WithLabelValues("error")))
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRankingService_NilCache(t *testing.T) {
	repo := new(MockParticipationRepository)
	svc := NewRankingService(repo, nil, time.Minute, nil)

	repo.On("ListForRanking", mock.Anything, domain.ParticipationFilter{}).Return(rankingParticipations(), nil).Twice()

	for i := 0; i < 2; i++ {
		ranking, err := svc.GetRanking(context.Background(), domain.ParticipationFilter{})
		require.NoError(t, err)
		assert.Len(t, ranking, 2)
	}
	svc.Invalidate(context.Background())
	repo.AssertExpectations(t)
}

func TestRankingService_RepositoryError(t *testing.T) {
	_, c := newMiniredisCache(t)
	repo := new(MockParticipationRepository)
	svc := NewRankingService(repo, c, time.Minute, nil)

	repo.On("ListForRanking", mock.Anything, domain.ParticipationFilter{}).Return(nil, errors.New("db down"))

	_, err := svc.GetRanking(context.Background(), domain.ParticipationFilter{})
	assert.True(t, domain.IsCode(err, domain.CodeInternal))
}
