package handler

import (
	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/middleware"
	"tala-trivia/internal/service"
	"tala-trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type TriviaHandler struct {
	triviaService service.TriviaService
	answerService service.AnswerService
	validator     *validation.Validator
}

func NewTriviaHandler(triviaService service.TriviaService, answerService service.AnswerService, v *validation.Validator) *TriviaHandler {
	return &TriviaHandler{triviaService: triviaService, answerService: answerService, validator: v}
}

// ListTrivias
// @Summary List trivias
// @Tags trivias
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.TriviaResponse]
// @Router /trivias [get]
func (h *TriviaHandler) ListTrivias(c *fiber.Ctx) error {
	p, page, err := parsePagination(c)
	if err != nil {
		return err
	}
	trivias, total, err := h.triviaService.ListTrivias(c.UserContext(), p)
	if err != nil {
		return err
	}
	reveal := isAdmin(c)
	items := make([]dto.TriviaResponse, 0, len(trivias))
	for i := range trivias {
		items = append(items, dto.NewTriviaResponse(&trivias[i], reveal))
	}
	return c.JSON(listResponse(items, total, page, p))
}

// CreateTrivia
// @Summary Create trivia
// @Tags trivias
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.TriviaRequest true "Trivia"
// @Success 201 {object} dto.TriviaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /trivias [post]
func (h *TriviaHandler) CreateTrivia(c *fiber.Ctx) error {
	var req dto.TriviaRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	t := &domain.Trivia{Name: req.Name, Description: req.Description}
	if err := h.triviaService.CreateTrivia(c.UserContext(), t, req.QuestionIDs); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTriviaResponse(t, true))
}

// GetTrivia
// @Summary Get trivia
// @Tags trivias
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Trivia ID"
// @Success 200 {object} dto.TriviaResponse
// @Router /trivias/{id} [get]
func (h *TriviaHandler) GetTrivia(c *fiber.Ctx) error {
	t, err := h.triviaService.GetTrivia(c.UserContext(), middleware.IDParam(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTriviaResponse(t, isAdmin(c)))
}

// UpdateTrivia
// @Summary Update trivia
// @Description An absent question_ids keeps the current questions.
// @Tags trivias
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Trivia ID"
// @Param request body dto.TriviaRequest true "Trivia"
// @Success 200 {object} dto.TriviaResponse
// @Router /trivias/{id} [put]
func (h *TriviaHandler) UpdateTrivia(c *fiber.Ctx) error {
	var req dto.TriviaRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	t := &domain.Trivia{ID: middleware.IDParam(c, "id"), Name: req.Name, Description: req.Description}
	updated, err := h.triviaService.UpdateTrivia(c.UserContext(), t, req.QuestionIDs)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTriviaResponse(updated, true))
}

// SubmitTrivia scores every answer of one trivia in a single request and
// marks the participation completed.
// @Summary Submit trivia answers
// @Tags trivias
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Trivia ID"
// @Param request body dto.SubmitTriviaRequest true "Answers"
// @Success 201 {object} dto.SubmitTriviaResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trivias/{id}/submit [post]
func (h *TriviaHandler) SubmitTrivia(c *fiber.Ctx) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.SubmitTriviaRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	res, err := h.answerService.SubmitTrivia(c.UserContext(), cl, middleware.IDParam(c, "id"), req)
	if err != nil {
		return err
	}
	answers := make([]dto.AnswerResponse, 0, len(res.Answers))
	for i := range res.Answers {
		answers = append(answers, dto.NewAnswerResponse(&res.Answers[i]))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubmitTriviaResponse{
		Participation: dto.NewParticipationResponse(&res.Participation),
		Answers:       answers,
		Correct:       res.Correct,
	})
}
