package domain

import "fmt"

var difficultyPoints = map[Difficulty]int{
	DifficultyEasy:   1,
	DifficultyMedium: 2,
	DifficultyHard:   3,
}

// PointsFor returns the value of a correct answer at difficulty d.
func PointsFor(d Difficulty) (int, error) {
	points, ok := difficultyPoints[d]
	if !ok {
		return 0, NewDataIntegrityError(fmt.Sprintf("unknown difficulty %q", string(d))).
			WithContext("difficulty", string(d))
	}
	return points, nil
}

// ScoreAnswer returns the points awarded for selecting option on q.
// An unknown difficulty is reported even when the option is incorrect.
func ScoreAnswer(q *Question, option AnswerOption) (int, error) {
	points, err := PointsFor(q.Difficulty)
	if err != nil {
		return 0, err
	}
	if !option.IsCorrect {
		return 0, nil
	}
	return points, nil
}

// ValidateAnswer checks the cross-entity rules the schema cannot express:
// the option belongs to the question and the question has exactly one
// correct option. It returns the stored option on success.
func ValidateAnswer(q *Question, optionID int64) (AnswerOption, error) {
	option, ok := q.OptionByID(optionID)
	if !ok {
		return AnswerOption{}, NewDataIntegrityError(
			fmt.Sprintf("option %d does not belong to question %d", optionID, q.ID)).
			WithContext("question_id", q.ID).
			WithContext("selected_option", optionID)
	}
	if n := q.CorrectOptionCount(); n != 1 {
		return AnswerOption{}, NewDataIntegrityError(
			fmt.Sprintf("question %d has %d correct options, expected exactly one", q.ID, n)).
			WithContext("question_id", q.ID)
	}
	return option, nil
}
