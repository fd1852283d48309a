package models

import "time"

type Question struct {
	ID           int64     `db:"id"`
	QuestionText string    `db:"question_text"`
	Difficulty   string    `db:"difficulty"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type AnswerOption struct {
	ID         int64  `db:"id"`
	QuestionID int64  `db:"question_id"`
	OptionText string `db:"option_text"`
	IsCorrect  bool   `db:"is_correct"`
}

type Trivia struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Participation carries the username and trivia name joined in for listings
// and rankings.
type Participation struct {
	ID         int64     `db:"id"`
	UserID     string    `db:"user_id"`
	TriviaID   int64     `db:"trivia_id"`
	Score      int       `db:"score"`
	Completed  bool      `db:"completed"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	Username   string    `db:"username"`
	TriviaName string    `db:"trivia_name"`
}

type UserAnswer struct {
	ID               int64     `db:"id"`
	UserID           string    `db:"user_id"`
	QuestionID       int64     `db:"question_id"`
	SelectedOptionID int64     `db:"selected_option_id"`
	TriviaID         int64     `db:"trivia_id"`
	ParticipationID  int64     `db:"participation_id"`
	Points           int       `db:"points"`
	CreatedAt        time.Time `db:"created_at"`
}
