package handler_test

import (
	"context"
	"time"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/service"
)

// --- Manual Mocks ---

type MockUserService struct {
	CreateUserFunc func(ctx context.Context, caller *domain.Caller, req dto.CreateUserRequest) (*domain.User, error)
	GetUserFunc    func(ctx context.Context, id string) (*domain.User, error)
}

func (m *MockUserService) CreateUser(ctx context.Context, caller *domain.Caller, req dto.CreateUserRequest) (*domain.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, caller, req)
	}
	panic("MockUserService.CreateUserFunc not implemented")
}
func (m *MockUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	panic("MockUserService.GetUserFunc not implemented")
}
func (m *MockUserService) ListUsers(ctx context.Context, page domain.Pagination) ([]domain.User, int, error) {
	panic("MockUserService.ListUsers not implemented")
}
func (m *MockUserService) UpdateUser(ctx context.Context, caller domain.Caller, id string, req dto.UpdateUserRequest) (*domain.User, error) {
	panic("MockUserService.UpdateUser not implemented")
}

type MockPlayerService struct{}

func (m *MockPlayerService) CreatePlayer(ctx context.Context, req dto.CreatePlayerRequest) (*domain.Player, error) {
	panic("MockPlayerService.CreatePlayer not implemented")
}
func (m *MockPlayerService) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	panic("MockPlayerService.GetPlayer not implemented")
}
func (m *MockPlayerService) ListPlayers(ctx context.Context, page domain.Pagination) ([]domain.Player, int, error) {
	return []domain.Player{}, 0, nil
}
func (m *MockPlayerService) UpdatePlayer(ctx context.Context, id string, req dto.UpdatePlayerRequest) (*domain.Player, error) {
	panic("MockPlayerService.UpdatePlayer not implemented")
}

type MockQuestionService struct {
	CreateQuestionFunc func(ctx context.Context, q *domain.Question) error
	GetQuestionFunc    func(ctx context.Context, id int64) (*domain.Question, error)
	ListQuestionsFunc  func(ctx context.Context, page domain.Pagination) ([]domain.Question, int, error)
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, q *domain.Question) error {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, q)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.GetQuestionFunc not implemented")
}
func (m *MockQuestionService) ListQuestions(ctx context.Context, page domain.Pagination) ([]domain.Question, int, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) UpdateQuestion(ctx context.Context, q *domain.Question) error {
	panic("MockQuestionService.UpdateQuestion not implemented")
}

type MockTriviaService struct{}

func (m *MockTriviaService) CreateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) error {
	panic("MockTriviaService.CreateTrivia not implemented")
}
func (m *MockTriviaService) GetTrivia(ctx context.Context, id int64) (*domain.Trivia, error) {
	panic("MockTriviaService.GetTrivia not implemented")
}
func (m *MockTriviaService) ListTrivias(ctx context.Context, page domain.Pagination) ([]domain.Trivia, int, error) {
	panic("MockTriviaService.ListTrivias not implemented")
}
func (m *MockTriviaService) UpdateTrivia(ctx context.Context, t *domain.Trivia, questionIDs []int64) (*domain.Trivia, error) {
	panic("MockTriviaService.UpdateTrivia not implemented")
}

type MockAnswerService struct {
	SubmitAnswerFunc func(ctx context.Context, caller domain.Caller, req dto.AnswerRequest) (*service.AnswerResult, error)
	SubmitTriviaFunc func(ctx context.Context, caller domain.Caller, triviaID int64, req dto.SubmitTriviaRequest) (*service.SubmissionResult, error)
}

func (m *MockAnswerService) SubmitAnswer(ctx context.Context, caller domain.Caller, req dto.AnswerRequest) (*service.AnswerResult, error) {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, caller, req)
	}
	panic("MockAnswerService.SubmitAnswerFunc not implemented")
}
func (m *MockAnswerService) SubmitTrivia(ctx context.Context, caller domain.Caller, triviaID int64, req dto.SubmitTriviaRequest) (*service.SubmissionResult, error) {
	if m.SubmitTriviaFunc != nil {
		return m.SubmitTriviaFunc(ctx, caller, triviaID, req)
	}
	panic("MockAnswerService.SubmitTriviaFunc not implemented")
}
func (m *MockAnswerService) ListAnswers(ctx context.Context, caller domain.Caller, userID string, page domain.Pagination) ([]domain.UserAnswer, int, error) {
	panic("MockAnswerService.ListAnswers not implemented")
}

type MockParticipationService struct {
	ListParticipationsFunc func(ctx context.Context, caller domain.Caller, filter domain.ParticipationFilter, page domain.Pagination) ([]domain.Participation, int, error)
	SetCompletedFunc       func(ctx context.Context, caller domain.Caller, id int64, completed bool) (*domain.Participation, error)
}

func (m *MockParticipationService) CreateParticipation(ctx context.Context, caller domain.Caller, triviaID int64, userID string, completed bool) (*domain.Participation, error) {
	panic("MockParticipationService.CreateParticipation not implemented")
}
func (m *MockParticipationService) GetParticipation(ctx context.Context, caller domain.Caller, id int64) (*domain.Participation, error) {
	panic("MockParticipationService.GetParticipation not implemented")
}
func (m *MockParticipationService) ListParticipations(ctx context.Context, caller domain.Caller, filter domain.ParticipationFilter, page domain.Pagination) ([]domain.Participation, int, error) {
	if m.ListParticipationsFunc != nil {
		return m.ListParticipationsFunc(ctx, caller, filter, page)
	}
	panic("MockParticipationService.ListParticipationsFunc not implemented")
}
func (m *MockParticipationService) SetCompleted(ctx context.Context, caller domain.Caller, id int64, completed bool) (*domain.Participation, error) {
	if m.SetCompletedFunc != nil {
		return m.SetCompletedFunc(ctx, caller, id, completed)
	}
	panic("MockParticipationService.SetCompletedFunc not implemented")
}

type MockRankingService struct {
	GetRankingFunc func(ctx context.Context, filter domain.ParticipationFilter) ([]domain.LeaderboardEntry, error)
}

func (m *MockRankingService) GetRanking(ctx context.Context, filter domain.ParticipationFilter) ([]domain.LeaderboardEntry, error) {
	if m.GetRankingFunc != nil {
		return m.GetRankingFunc(ctx, filter)
	}
	panic("MockRankingService.GetRankingFunc not implemented")
}
func (m *MockRankingService) Invalidate(ctx context.Context) {}

type MockCache struct {
	PingErr error
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) { return "", domain.ErrCacheMiss }
func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}
func (m *MockCache) Delete(ctx context.Context, key string) error      { return nil }
func (m *MockCache) Ping(ctx context.Context) error                     { return m.PingErr }
func (m *MockCache) Incr(ctx context.Context, key string) (int64, error) { return 1, nil }

type MockPinger struct {
	Err error
}

func (m *MockPinger) PingContext(ctx context.Context) error { return m.Err }

var (
	_ service.UserService          = (*MockUserService)(nil)
	_ service.PlayerService        = (*MockPlayerService)(nil)
	_ service.QuestionService      = (*MockQuestionService)(nil)
	_ service.TriviaService        = (*MockTriviaService)(nil)
	_ service.AnswerService        = (*MockAnswerService)(nil)
	_ service.ParticipationService = (*MockParticipationService)(nil)
	_ service.RankingService       = (*MockRankingService)(nil)
	_ domain.Cache                 = (*MockCache)(nil)
)
