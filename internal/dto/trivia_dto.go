package dto

import (
	"time"

	"tala-trivia/internal/domain"
)

// OptionRequest is one answer option of a question. ID is set only when
// updating an existing option.
type OptionRequest struct {
	ID         int64  `json:"id,omitempty"`
	OptionText string `json:"option_text" validate:"required,max=255"`
	IsCorrect  bool   `json:"is_correct"`
}

// QuestionRequest is the body of POST /questions and PUT /questions/{id}.
// @Description Question with nested answer options
type QuestionRequest struct {
	QuestionText string          `json:"question_text" validate:"required,max=255"`
	Difficulty   string          `json:"difficulty" validate:"required,difficulty"`
	Options      []OptionRequest `json:"options" validate:"required,min=2,max=10,dive"`
}

func (r QuestionRequest) ToDomain(id int64) *domain.Question {
	d, _ := domain.ParseDifficulty(r.Difficulty)
	q := &domain.Question{ID: id, QuestionText: r.QuestionText, Difficulty: d}
	for _, o := range r.Options {
		q.Options = append(q.Options, domain.AnswerOption{ID: o.ID, QuestionID: id, OptionText: o.OptionText, IsCorrect: o.IsCorrect})
	}
	return q
}

// OptionResponse omits is_correct unless the caller is an admin.
type OptionResponse struct {
	ID         int64  `json:"id"`
	OptionText string `json:"option_text"`
	IsCorrect  *bool  `json:"is_correct,omitempty"`
}

type QuestionResponse struct {
	ID           int64            `json:"id"`
	QuestionText string           `json:"question_text"`
	Difficulty   string           `json:"difficulty"`
	Options      []OptionResponse `json:"options"`
}

func NewQuestionResponse(q *domain.Question, revealAnswers bool) QuestionResponse {
	resp := QuestionResponse{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Difficulty:   string(q.Difficulty),
		Options:      make([]OptionResponse, 0, len(q.Options)),
	}
	for _, o := range q.Options {
		opt := OptionResponse{ID: o.ID, OptionText: o.OptionText}
		if revealAnswers {
			correct := o.IsCorrect
			opt.IsCorrect = &correct
		}
		resp.Options = append(resp.Options, opt)
	}
	return resp
}

// TriviaRequest is the body of POST /trivias and PUT /trivias/{id}. On update
// an absent question_ids keeps the current questions.
type TriviaRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	QuestionIDs []int64 `json:"question_ids" validate:"omitempty,max=200,dive,gt=0"`
}

type TriviaResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Questions   []QuestionResponse `json:"questions"`
	CreatedAt   time.Time          `json:"created_at"`
}

func NewTriviaResponse(t *domain.Trivia, revealAnswers bool) TriviaResponse {
	resp := TriviaResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Questions:   make([]QuestionResponse, 0, len(t.Questions)),
		CreatedAt:   t.CreatedAt,
	}
	for i := range t.Questions {
		resp.Questions = append(resp.Questions, NewQuestionResponse(&t.Questions[i], revealAnswers))
	}
	return resp
}

// CreateParticipationRequest opens a participation. UserID defaults to the
// caller; only admins may name someone else.
type CreateParticipationRequest struct {
	TriviaID  int64  `json:"trivia_id" validate:"required,gt=0"`
	UserID    string `json:"user_id" validate:"omitempty,ulid"`
	Completed bool   `json:"completed"`
}

// UpdateParticipationRequest only toggles completion; score is never writable.
type UpdateParticipationRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type ParticipationResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	TriviaID   int64     `json:"trivia_id"`
	TriviaName string    `json:"trivia_name,omitempty"`
	Score      int       `json:"score"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewParticipationResponse(p *domain.Participation) ParticipationResponse {
	return ParticipationResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Username:   p.Username,
		TriviaID:   p.TriviaID,
		TriviaName: p.TriviaName,
		Score:      p.Score,
		Completed:  p.Completed,
		CreatedAt:  p.CreatedAt,
	}
}

// AnswerRequest is the body of POST /answers.
// @Description Submit one answer for scoring
type AnswerRequest struct {
	TriviaID        int64 `json:"trivia_id" validate:"required,gt=0"`
	QuestionID      int64 `json:"question_id" validate:"required,gt=0"`
	SelectedOption  int64 `json:"selected_option" validate:"required,gt=0"`
	ParticipationID int64 `json:"participation_id,omitempty" validate:"omitempty,gt=0"`
}

type AnswerResponse struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	QuestionID      int64     `json:"question_id"`
	SelectedOption  int64     `json:"selected_option"`
	TriviaID        int64     `json:"trivia_id"`
	ParticipationID int64     `json:"participation_id"`
	Points          int       `json:"points"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewAnswerResponse(a *domain.UserAnswer) AnswerResponse {
	return AnswerResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		QuestionID:      a.QuestionID,
		SelectedOption:  a.SelectedOptionID,
		TriviaID:        a.TriviaID,
		ParticipationID: a.ParticipationID,
		Points:          a.Points,
		CreatedAt:       a.CreatedAt,
	}
}

// ScoredAnswerResponse is returned after an answer is scored.
type ScoredAnswerResponse struct {
	Answer        AnswerResponse        `json:"answer"`
	Correct       bool                  `json:"correct"`
	Participation ParticipationResponse `json:"participation"`
}

type SubmissionItem struct {
	QuestionID     int64 `json:"question_id" validate:"required,gt=0"`
	SelectedOption int64 `json:"selected_option" validate:"required,gt=0"`
}

// SubmitTriviaRequest is the body of POST /trivias/{id}/submit.
type SubmitTriviaRequest struct {
	ParticipationID int64            `json:"participation_id,omitempty" validate:"omitempty,gt=0"`
	Answers         []SubmissionItem `json:"answers" validate:"required,min=1,max=200,dive"`
}

type SubmitTriviaResponse struct {
	Participation ParticipationResponse `json:"participation"`
	Answers       []AnswerResponse      `json:"answers"`
	Correct       int                   `json:"correct"`
}

// RankingResponse wraps the leaderboard.
type RankingResponse struct {
	TriviaID int64                     `json:"trivia_id,omitempty"`
	UserID   string                    `json:"user_id,omitempty"`
	Ranking  []domain.LeaderboardEntry `json:"ranking"`
}

// ListResponse is the envelope of every list endpoint.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Details interface{}         `json:"details,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}
