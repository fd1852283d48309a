package handler

import (
	"tala-trivia/internal/dto"
	"tala-trivia/internal/middleware"
	"tala-trivia/internal/service"
	"tala-trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler serves questions. is_correct is only shown to admins.
type QuestionHandler struct {
	questionService service.QuestionService
	validator       *validation.Validator
}

func NewQuestionHandler(questionService service.QuestionService, v *validation.Validator) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, validator: v}
}

// ListQuestions
// @Summary List questions
// @Tags questions
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.QuestionResponse]
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	p, page, err := parsePagination(c)
	if err != nil {
		return err
	}
	questions, total, err := h.questionService.ListQuestions(c.UserContext(), p)
	if err != nil {
		return err
	}
	reveal := isAdmin(c)
	items := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		items = append(items, dto.NewQuestionResponse(&questions[i], reveal))
	}
	return c.JSON(listResponse(items, total, page, p))
}

// CreateQuestion
// @Summary Create question
// @Description Exactly one option must be correct.
// @Tags questions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.QuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	q := req.ToDomain(0)
	if err := h.questionService.CreateQuestion(c.UserContext(), q); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuestionResponse(q, true))
}

// GetQuestion
// @Summary Get question
// @Tags questions
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	q, err := h.questionService.GetQuestion(c.UserContext(), middleware.IDParam(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuestionResponse(q, isAdmin(c)))
}

// UpdateQuestion replaces text, difficulty and options. Options carrying an
// id are updated, new ones inserted and omitted ones removed.
// @Summary Update question
// @Tags questions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.QuestionRequest true "Question"
// @Success 200 {object} dto.QuestionResponse
// @Router /questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	id := middleware.IDParam(c, "id")
	if err := h.questionService.UpdateQuestion(c.UserContext(), req.ToDomain(id)); err != nil {
		return err
	}
	q, err := h.questionService.GetQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuestionResponse(q, true))
}
