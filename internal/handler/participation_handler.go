package handler

import (
	"strconv"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/middleware"
	"tala-trivia/internal/service"
	"tala-trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ParticipationHandler struct {
	participationService service.ParticipationService
	validator            *validation.Validator
}

func NewParticipationHandler(participationService service.ParticipationService, v *validation.Validator) *ParticipationHandler {
	return &ParticipationHandler{participationService: participationService, validator: v}
}

func participationFilter(c *fiber.Ctx) (domain.ParticipationFilter, error) {
	f := domain.ParticipationFilter{UserID: c.Query("user_id")}
	if raw := c.Query("trivia_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return f, domain.ValidationErrors{domain.NewInvalidFormatError("trivia_id", raw)}
		}
		f.TriviaID = id
	}
	return f, nil
}

// ListParticipations
// @Summary List participations
// @Tags participations
// @Security ApiKeyAuth
// @Produce json
// @Param trivia_id query int false "Filter by trivia"
// @Param user_id query string false "Filter by user"
// @Success 200 {object} dto.ListResponse[dto.ParticipationResponse]
// @Router /participations [get]
func (h *ParticipationHandler) ListParticipations(c *fiber.Ctx) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	filter, err := participationFilter(c)
	if err != nil {
		return err
	}
	p, page, err := parsePagination(c)
	if err != nil {
		return err
	}
	participations, total, err := h.participationService.ListParticipations(c.UserContext(), cl, filter, p)
	if err != nil {
		return err
	}
	items := make([]dto.ParticipationResponse, 0, len(participations))
	for i := range participations {
		items = append(items, dto.NewParticipationResponse(&participations[i]))
	}
	return c.JSON(listResponse(items, total, page, p))
}

// CreateParticipation
// @Summary Start participation
// @Tags participations
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateParticipationRequest true "Participation"
// @Success 201 {object} dto.ParticipationResponse
// @Router /participations [post]
func (h *ParticipationHandler) CreateParticipation(c *fiber.Ctx) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.CreateParticipationRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	p, err := h.participationService.CreateParticipation(c.UserContext(), cl, req.TriviaID, req.UserID, req.Completed)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewParticipationResponse(p))
}

// GetParticipation
// @Summary Get participation
// @Tags participations
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Participation ID"
// @Success 200 {object} dto.ParticipationResponse
// @Router /participations/{id} [get]
func (h *ParticipationHandler) GetParticipation(c *fiber.Ctx) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	p, err := h.participationService.GetParticipation(c.UserContext(), cl, middleware.IDParam(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewParticipationResponse(p))
}

// UpdateParticipation only changes completed; the score is never writable.
// @Summary Update participation
// @Tags participations
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Participation ID"
// @Param request body dto.UpdateParticipationRequest true "Completion"
// @Success 200 {object} dto.ParticipationResponse
// @Router /participations/{id} [put]
func (h *ParticipationHandler) UpdateParticipation(c *fiber.Ctx) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.UpdateParticipationRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	p, err := h.participationService.SetCompleted(c.UserContext(), cl, middleware.IDParam(c, "id"), *req.Completed)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewParticipationResponse(p))
}
