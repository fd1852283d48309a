package service

import (
	"context"
	"fmt"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/logger"
	"tala-trivia/internal/metrics"

	"go.uber.org/zap"
)

// AnswerResult is the outcome of scoring one answer.
type AnswerResult struct {
	Answer        domain.UserAnswer
	Correct       bool
	Participation domain.Participation
}

// SubmissionResult is the outcome of scoring a whole trivia at once.
type SubmissionResult struct {
	Participation domain.Participation
	Answers       []domain.UserAnswer
	Correct       int
}

type AnswerService interface {
	SubmitAnswer(ctx context.Context, caller domain.Caller, req dto.AnswerRequest) (*AnswerResult, error)
	SubmitTrivia(ctx context.Context, caller domain.Caller, triviaID int64, req dto.SubmitTriviaRequest) (*SubmissionResult, error)
	// ListAnswers lists userID's answers, or everyone's when userID is empty.
	// Non-admins only ever see their own.
	ListAnswers(ctx context.Context, caller domain.Caller, userID string, page domain.Pagination) ([]domain.UserAnswer, int, error)
}

type answerServiceImpl struct {
	answerRepo        domain.AnswerRepository
	questionRepo      domain.QuestionRepository
	triviaRepo        domain.TriviaRepository
	participationRepo domain.ParticipationRepository
	tx                domain.TransactionManager
	ranking           RankingInvalidator
	metrics           *metrics.Metrics
}

func NewAnswerService(
	answerRepo domain.AnswerRepository,
	questionRepo domain.QuestionRepository,
	triviaRepo domain.TriviaRepository,
	participationRepo domain.ParticipationRepository,
	tx domain.TransactionManager,
	ranking RankingInvalidator,
	m *metrics.Metrics,
) AnswerService {
	return &answerServiceImpl{
		answerRepo:        answerRepo,
		questionRepo:      questionRepo,
		triviaRepo:        triviaRepo,
		participationRepo: participationRepo,
		tx:                tx,
		ranking:           ranking,
		metrics:           m,
	}
}

// resolveParticipation must run inside a transaction. An explicit id must
// belong to (userID, triviaID); otherwise the latest participation is used
// and one is created when none exists.
func (s *answerServiceImpl) resolveParticipation(ctx context.Context, userID string, triviaID, participationID int64) (*domain.Participation, error) {
	if participationID != 0 {
		p, err := s.participationRepo.GetParticipationByID(ctx, participationID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.UserID != userID || p.TriviaID != triviaID {
			return nil, domain.NewParticipationNotFoundError(userID, triviaID).
				WithContext("participation_id", participationID)
		}
		return p, nil
	}

	if err := s.participationRepo.LockUserTrivia(ctx, userID, triviaID); err != nil {
		return nil, err
	}
	p, err := s.participationRepo.LatestParticipation(ctx, userID, triviaID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = &domain.Participation{UserID: userID, TriviaID: triviaID}
	if err := s.participationRepo.CreateParticipation(ctx, p); err != nil {
		return nil, err
	}
	logger.Get().Info("Participation created on first answer",
		zap.Int64("participationID", p.ID),
		zap.String("userID", userID),
		zap.Int64("triviaID", triviaID))
	return p, nil
}

func (s *answerServiceImpl) reload(ctx context.Context, id int64) (*domain.Participation, error) {
	p, err := s.participationRepo.GetParticipationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("participation %d not found", id))
	}
	return p, nil
}

// SubmitAnswer scores one answer and adds the points to the caller's
// participation. The answer and the score change commit together.
func (s *answerServiceImpl) SubmitAnswer(ctx context.Context, caller domain.Caller, req dto.AnswerRequest) (*AnswerResult, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("question %d not found", req.QuestionID))
	}

	inTrivia, err := s.triviaRepo.ContainsQuestion(ctx, req.TriviaID, req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to check trivia questions", err)
	}
	if !inTrivia {
		trivia, err := s.triviaRepo.GetTriviaByID(ctx, req.TriviaID)
		if err != nil {
			return nil, domain.NewInternalError("failed to get trivia", err)
		}
		if trivia == nil {
			return nil, domain.NewNotFoundError(fmt.Sprintf("trivia %d not found", req.TriviaID))
		}
		return nil, domain.NewFieldError("question_id", "is not part of this trivia")
	}

	option, err := domain.ValidateAnswer(question, req.SelectedOption)
	if err != nil {
		return nil, err
	}
	points, err := domain.ScoreAnswer(question, option)
	if err != nil {
		return nil, err
	}

	result := &AnswerResult{Correct: option.IsCorrect}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.resolveParticipation(ctx, caller.UserID, req.TriviaID, req.ParticipationID)
		if err != nil {
			return err
		}

		answer := domain.UserAnswer{
			UserID:           caller.UserID,
			QuestionID:       question.ID,
			SelectedOptionID: option.ID,
			TriviaID:         req.TriviaID,
			ParticipationID:  p.ID,
			Points:           points,
		}
		if err := s.answerRepo.CreateAnswer(ctx, &answer); err != nil {
			return err
		}
		result.Answer = answer

		if points > 0 {
			updated, err := s.participationRepo.AddScore(ctx, p.ID, points)
			if err != nil {
				return err
			}
			if updated == nil {
				return domain.NewParticipationNotFoundError(caller.UserID, req.TriviaID)
			}
		}

		p, err = s.reload(ctx, p.ID)
		if err != nil {
			return err
		}
		result.Participation = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveAnswer(string(question.Difficulty), points)
	if s.ranking != nil {
		s.ranking.Invalidate(ctx)
	}
	logger.Get().Info("Answer scored",
		zap.String("userID", caller.UserID),
		zap.Int64("questionID", question.ID),
		zap.Int64("participationID", result.Participation.ID),
		zap.Int("points", points))
	return result, nil
}

// SubmitTrivia scores a batch of answers for one trivia and marks the
// participation completed. Either every answer is stored or none is.
func (s *answerServiceImpl) SubmitTrivia(ctx context.Context, caller domain.Caller, triviaID int64, req dto.SubmitTriviaRequest) (*SubmissionResult, error) {
	trivia, err := s.triviaRepo.GetTriviaByID(ctx, triviaID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get trivia", err)
	}
	if trivia == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("trivia %d not found", triviaID))
	}

	questions := make(map[int64]*domain.Question, len(trivia.Questions))
	for i := range trivia.Questions {
		questions[trivia.Questions[i].ID] = &trivia.Questions[i]
	}

	var errs domain.ValidationErrors
	seen := make(map[int64]struct{}, len(req.Answers))
	for i, item := range req.Answers {
		field := fmt.Sprintf("answers[%d].question_id", i)
		if _, ok := questions[item.QuestionID]; !ok {
			errs = append(errs, domain.FieldError{Field: field, Message: "is not part of this trivia"})
			continue
		}
		if _, dup := seen[item.QuestionID]; dup {
			errs = append(errs, domain.FieldError{Field: field, Message: "is answered more than once"})
			continue
		}
		seen[item.QuestionID] = struct{}{}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	type scored struct {
		question *domain.Question
		option   domain.AnswerOption
		points   int
	}
	items := make([]scored, 0, len(req.Answers))
	for _, item := range req.Answers {
		q := questions[item.QuestionID]
		option, err := domain.ValidateAnswer(q, item.SelectedOption)
		if err != nil {
			return nil, err
		}
		points, err := domain.ScoreAnswer(q, option)
		if err != nil {
			return nil, err
		}
		items = append(items, scored{question: q, option: option, points: points})
	}

	result := &SubmissionResult{Answers: make([]domain.UserAnswer, 0, len(items))}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.resolveParticipation(ctx, caller.UserID, triviaID, req.ParticipationID)
		if err != nil {
			return err
		}

		total := 0
		for _, it := range items {
			answer := domain.UserAnswer{
				UserID:           caller.UserID,
				QuestionID:       it.question.ID,
				SelectedOptionID: it.option.ID,
				TriviaID:         triviaID,
				ParticipationID:  p.ID,
				Points:           it.points,
			}
			if err := s.answerRepo.CreateAnswer(ctx, &answer); err != nil {
				return err
			}
			result.Answers = append(result.Answers, answer)
			total += it.points
			if it.option.IsCorrect {
				result.Correct++
			}
		}

		if total > 0 {
			if _, err := s.participationRepo.AddScore(ctx, p.ID, total); err != nil {
				return err
			}
		}
		if _, err := s.participationRepo.SetCompleted(ctx, p.ID, true); err != nil {
			return err
		}

		p, err = s.reload(ctx, p.ID)
		if err != nil {
			return err
		}
		result.Participation = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		s.metrics.ObserveAnswer(string(it.question.Difficulty), it.points)
	}
	if s.ranking != nil {
		s.ranking.Invalidate(ctx)
	}
	logger.Get().Info("Trivia submitted",
		zap.String("userID", caller.UserID),
		zap.Int64("triviaID", triviaID),
		zap.Int("answers", len(items)),
		zap.Int("score", result.Participation.Score))
	return result, nil
}

func (s *answerServiceImpl) ListAnswers(ctx context.Context, caller domain.Caller, userID string, page domain.Pagination) ([]domain.UserAnswer, int, error) {
	if !caller.Role.IsAdmin() {
		if userID != "" && userID != caller.UserID {
			return nil, 0, domain.NewForbiddenError("cannot list answers of another user")
		}
		userID = caller.UserID
	}
	answers, total, err := s.answerRepo.ListAnswers(ctx, userID, page)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to list answers", err)
	}
	return answers, total, nil
}
