package service

import (
	"context"
	"time"

	"tala-trivia/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, page domain.Pagination) ([]domain.User, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- MockPlayerRepository ---
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) CreatePlayer(ctx context.Context, p *domain.Player) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetPlayerByID(ctx context.Context, id string) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) ListPlayers(ctx context.Context, page domain.Pagination) ([]domain.Player, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Player), args.Int(1), args.Error(2)
}

func (m *MockPlayerRepository) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListQuestions(ctx context.Context, page domain.Pagination) ([]domain.Question, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Question), args.Int(1), args.Error(2)
}

func (m *MockQuestionRepository) UpdateQuestion(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

// --- MockTriviaRepository ---
type MockTriviaRepository struct {
	mock.Mock
}

func (m *MockTriviaRepository) CreateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) error {
	args := m.Called(ctx, t, questionIDs)
	return args.Error(0)
}

func (m *MockTriviaRepository) GetTriviaByID(ctx context.Context, id int64) (*domain.Trivia, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trivia), args.Error(1)
}

func (m *MockTriviaRepository) ListTrivias(ctx context.Context, page domain.Pagination) ([]domain.Trivia, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Trivia), args.Int(1), args.Error(2)
}

func (m *MockTriviaRepository) UpdateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) error {
	args := m.Called(ctx, t, questionIDs)
	return args.Error(0)
}

func (m *MockTriviaRepository) ContainsQuestion(ctx context.Context, triviaID, questionID int64) (bool, error) {
	args := m.Called(ctx, triviaID, questionID)
	return args.Bool(0), args.Error(1)
}

// --- MockParticipationRepository ---
type MockParticipationRepository struct {
	mock.Mock
}

func (m *MockParticipationRepository) CreateParticipation(ctx context.Context, p *domain.Participation) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParticipationRepository) GetParticipationByID(ctx context.Context, id int64) (*domain.Participation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participation), args.Error(1)
}

func (m *MockParticipationRepository) ListParticipations(ctx context.Context, filter domain.ParticipationFilter, page domain.Pagination) ([]domain.Participation, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Participation), args.Int(1), args.Error(2)
}

func (m *MockParticipationRepository) ListForRanking(ctx context.Context, filter domain.ParticipationFilter) ([]domain.Participation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participation), args.Error(1)
}

func (m *MockParticipationRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Participation, error) {
	args := m.Called(ctx, id, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participation), args.Error(1)
}

func (m *MockParticipationRepository) LockUserTrivia(ctx context.Context, userID string, triviaID int64) error {
	args := m.Called(ctx, userID, triviaID)
	return args.Error(0)
}

func (m *MockParticipationRepository) LatestParticipation(ctx context.Context, userID string, triviaID int64) (*domain.Participation, error) {
	args := m.Called(ctx, userID, triviaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participation), args.Error(1)
}

func (m *MockParticipationRepository) AddScore(ctx context.Context, id int64, points int) (*domain.Participation, error) {
	args := m.Called(ctx, id, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participation), args.Error(1)
}

// --- MockAnswerRepository ---
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) CreateAnswer(ctx context.Context, a *domain.UserAnswer) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnswerRepository) ListAnswers(ctx context.Context, userID string, page domain.Pagination) ([]domain.UserAnswer, int, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.UserAnswer), args.Int(1), args.Error(2)
}

// --- MockTransactionManager ---
// WithTransaction runs fn directly; the returned error is whatever fn returns.
type MockTransactionManager struct{}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockRankingInvalidator ---
type MockRankingInvalidator struct {
	mock.Mock
}

func (m *MockRankingInvalidator) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

var (
	_ domain.UserRepository          = (*MockUserRepository)(nil)
	_ domain.PlayerRepository        = (*MockPlayerRepository)(nil)
	_ domain.QuestionRepository      = (*MockQuestionRepository)(nil)
	_ domain.TriviaRepository        = (*MockTriviaRepository)(nil)
	_ domain.ParticipationRepository = (*MockParticipationRepository)(nil)
	_ domain.AnswerRepository        = (*MockAnswerRepository)(nil)
	_ domain.TransactionManager      = (*MockTransactionManager)(nil)
	_ domain.Cache                   = (*MockCache)(nil)
	_ RankingInvalidator             = (*MockRankingInvalidator)(nil)
)
