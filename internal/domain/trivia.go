package domain

import (
	"strings"
	"time"
)

// Difficulty is the tier of a question and determines its point value.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty accepts the three known tiers, case-insensitively.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	default:
		return "", false
	}
}

// Question is a multiple choice question with its options.
type Question struct {
	ID           int64
	QuestionText string
	Difficulty   Difficulty
	Options      []AnswerOption
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the question before it is stored.
func (q *Question) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(q.QuestionText) == "" {
		errs = append(errs, NewMissingFieldError("question_text"))
	} else if len(q.QuestionText) > 255 {
		errs = append(errs, FieldError{Field: "question_text", Message: "must be at most 255 characters"})
	}
	if _, ok := ParseDifficulty(string(q.Difficulty)); !ok {
		errs = append(errs, FieldError{Field: "difficulty", Message: "must be one of: easy, medium, hard"})
	}
	if len(q.Options) < 2 {
		errs = append(errs, FieldError{Field: "options", Message: "at least two options are required"})
	}
	if q.CorrectOptionCount() != 1 {
		errs = append(errs, FieldError{Field: "options", Message: "exactly one option must be correct"})
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt.OptionText) == "" {
			errs = append(errs, NewMissingFieldError("options.option_text"))
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (q *Question) CorrectOptionCount() int {
	n := 0
	for _, opt := range q.Options {
		if opt.IsCorrect {
			n++
		}
	}
	return n
}

// OptionByID returns the option with the given id, if it belongs to q.
func (q *Question) OptionByID(id int64) (AnswerOption, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return AnswerOption{}, false
}

type AnswerOption struct {
	ID         int64
	QuestionID int64
	OptionText string
	IsCorrect  bool
}

// Trivia is a named set of questions.
type Trivia struct {
	ID          int64
	Name        string
	Description string
	Questions   []Question
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Trivia) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, NewMissingFieldError("name"))
	} else if len(t.Name) > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "must be at most 100 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Participation is a scored attempt by a user at a trivia.
type Participation struct {
	ID         int64
	UserID     string
	TriviaID   int64
	TriviaName string
	Username   string
	Score      int
	Completed  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ParticipationFilter selects participations for listing and ranking.
// Zero values mean "any".
type ParticipationFilter struct {
	TriviaID int64
	UserID   string
}

// Mode names which of the four filter variants is in effect.
func (f ParticipationFilter) Mode() string {
	switch {
	case f.TriviaID != 0 && f.UserID != "":
		return "trivia_user"
	case f.TriviaID != 0:
		return "trivia"
	case f.UserID != "":
		return "user"
	default:
		return "all"
	}
}

// UserAnswer is an append-only record of one answer submission.
type UserAnswer struct {
	ID               int64
	UserID           string
	QuestionID       int64
	SelectedOptionID int64
	TriviaID         int64
	ParticipationID  int64
	Points           int
	CreatedAt        time.Time
}

// Pagination bounds list queries.
type Pagination struct {
	Limit  int
	Offset int
}
