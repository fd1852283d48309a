package handler

import (
	"tala-trivia/internal/dto"
	"tala-trivia/internal/service"
	"tala-trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PlayerHandler struct {
	playerService service.PlayerService
	validator     *validation.Validator
}

func NewPlayerHandler(playerService service.PlayerService, v *validation.Validator) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, validator: v}
}

// ListPlayers
// @Summary List players
// @Tags players
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.PlayerResponse]
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *fiber.Ctx) error {
	p, page, err := parsePagination(c)
	if err != nil {
		return err
	}
	players, total, err := h.playerService.ListPlayers(c.UserContext(), p)
	if err != nil {
		return err
	}
	items := make([]dto.PlayerResponse, 0, len(players))
	for i := range players {
		items = append(items, dto.NewPlayerResponse(&players[i]))
	}
	return c.JSON(listResponse(items, total, page, p))
}

// CreatePlayer
// @Summary Create player
// @Tags players
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePlayerRequest true "Player"
// @Success 201 {object} dto.PlayerResponse
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *fiber.Ctx) error {
	var req dto.CreatePlayerRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	player, err := h.playerService.CreatePlayer(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPlayerResponse(player))
}

// GetPlayer
// @Summary Get player
// @Tags players
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Player ULID"
// @Success 200 {object} dto.PlayerResponse
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *fiber.Ctx) error {
	player, err := h.playerService.GetPlayer(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPlayerResponse(player))
}

// UpdatePlayer
// @Summary Update player
// @Tags players
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Player ULID"
// @Param request body dto.UpdatePlayerRequest true "Changes"
// @Success 200 {object} dto.PlayerResponse
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *fiber.Ctx) error {
	var req dto.UpdatePlayerRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	player, err := h.playerService.UpdatePlayer(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPlayerResponse(player))
}
