package handler

import (
	"tala-trivia/internal/dto"
	"tala-trivia/internal/service"
	"tala-trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AnswerHandler struct {
	answerService service.AnswerService
	validator     *validation.Validator
}

func NewAnswerHandler(answerService service.AnswerService, v *validation.Validator) *AnswerHandler {
	return &AnswerHandler{answerService: answerService, validator: v}
}

// ListAnswers lists answers. Non-admins only see their own.
// @Summary List answers
// @Tags answers
// @Security ApiKeyAuth
// @Produce json
// @Param user_id query string false "Filter by user (admins only)"
// @Success 200 {object} dto.ListResponse[dto.AnswerResponse]
// @Router /answers [get]
func (h *AnswerHandler) ListAnswers(c *fiber.Ctx) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	p, page, err := parsePagination(c)
	if err != nil {
		return err
	}
	answers, total, err := h.answerService.ListAnswers(c.UserContext(), cl, c.Query("user_id"), p)
	if err != nil {
		return err
	}
	items := make([]dto.AnswerResponse, 0, len(answers))
	for i := range answers {
		items = append(items, dto.NewAnswerResponse(&answers[i]))
	}
	return c.JSON(listResponse(items, total, page, p))
}

// SubmitAnswer scores one answer and updates the caller's participation.
// @Summary Submit answer
// @Tags answers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.AnswerRequest true "Answer"
// @Success 201 {object} dto.ScoredAnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Question, trivia or participation not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate answer or data integrity error"
// @Router /answers [post]
func (h *AnswerHandler) SubmitAnswer(c *fiber.Ctx) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.AnswerRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	res, err := h.answerService.SubmitAnswer(c.UserContext(), cl, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ScoredAnswerResponse{
		Answer:        dto.NewAnswerResponse(&res.Answer),
		Correct:       res.Correct,
		Participation: dto.NewParticipationResponse(&res.Participation),
	})
}
