package domain

import "context"

type QuestionRepository interface {
	CreateQuestion(ctx context.Context, q *Question) error
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)
	ListQuestions(ctx context.Context, page Pagination) ([]Question, int, error)
	// UpdateQuestion replaces the question's text, difficulty and options.
	UpdateQuestion(ctx context.Context, q *Question) error
}

type TriviaRepository interface {
	CreateTrivia(ctx context.Context, t *Trivia, questionIDs []int64) error
	GetTriviaByID(ctx context.Context, id int64) (*Trivia, error)
	ListTrivias(ctx context.Context, page Pagination) ([]Trivia, int, error)
	UpdateTrivia(ctx context.Context, t *Trivia, questionIDs []int64) error
	ContainsQuestion(ctx context.Context, triviaID, questionID int64) (bool, error)
}

type ParticipationRepository interface {
	CreateParticipation(ctx context.Context, p *Participation) error
	GetParticipationByID(ctx context.Context, id int64) (*Participation, error)
	ListParticipations(ctx context.Context, filter ParticipationFilter, page Pagination) ([]Participation, int, error)
	// ListForRanking returns every participation matching filter ordered by id.
	ListForRanking(ctx context.Context, filter ParticipationFilter) ([]Participation, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (*Participation, error)
	// LockUserTrivia serializes participation resolution for (userID, triviaID)
	// until the surrounding transaction ends.
	LockUserTrivia(ctx context.Context, userID string, triviaID int64) error
	LatestParticipation(ctx context.Context, userID string, triviaID int64) (*Participation, error)
	// AddScore atomically increments the participation score.
	AddScore(ctx context.Context, id int64, points int) (*Participation, error)
}

type AnswerRepository interface {
	// CreateAnswer returns a DUPLICATE_ANSWER error when the question was
	// already answered within the same participation.
	CreateAnswer(ctx context.Context, a *UserAnswer) error
	ListAnswers(ctx context.Context, userID string, page Pagination) ([]UserAnswer, int, error)
}

// TransactionManager runs fn inside a database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
