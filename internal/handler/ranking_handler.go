package handler

import (
	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/middleware"
	"tala-trivia/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RankingHandler struct {
	rankingService service.RankingService
}

func NewRankingHandler(rankingService service.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

func (h *RankingHandler) respond(c *fiber.Ctx, filter domain.ParticipationFilter) error {
	ranking, err := h.rankingService.GetRanking(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.RankingResponse{TriviaID: filter.TriviaID, UserID: filter.UserID, Ranking: ranking})
}

// GetRanking returns the global leaderboard.
// @Summary Global ranking
// @Tags rankings
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.RankingResponse
// @Router /rankings [get]
func (h *RankingHandler) GetRanking(c *fiber.Ctx) error {
	return h.respond(c, domain.ParticipationFilter{})
}

// GetTriviaRanking
// @Summary Ranking of one trivia
// @Description An unknown trivia yields an empty ranking.
// @Tags rankings
// @Security ApiKeyAuth
// @Produce json
// @Param trivia_id path int true "Trivia ID"
// @Success 200 {object} dto.RankingResponse
// @Router /rankings/{trivia_id} [get]
func (h *RankingHandler) GetTriviaRanking(c *fiber.Ctx) error {
	return h.respond(c, domain.ParticipationFilter{TriviaID: middleware.IDParam(c, "trivia_id")})
}

// GetTriviaUserRanking
// @Summary Ranking of one user in one trivia
// @Tags rankings
// @Security ApiKeyAuth
// @Produce json
// @Param trivia_id path int true "Trivia ID"
// @Param user_id path string true "User ULID"
// @Success 200 {object} dto.RankingResponse
// @Router /rankings/{trivia_id}/{user_id} [get]
func (h *RankingHandler) GetTriviaUserRanking(c *fiber.Ctx) error {
	return h.respond(c, domain.ParticipationFilter{
		TriviaID: middleware.IDParam(c, "trivia_id"),
		UserID:   c.Params("user_id"),
	})
}

// GetUserRanking
// @Summary Ranking of one user across trivias
// @Tags rankings
// @Security ApiKeyAuth
// @Produce json
// @Param user_id path string true "User ULID"
// @Success 200 {object} dto.RankingResponse
// @Router /rankings/user/{user_id} [get]
func (h *RankingHandler) GetUserRanking(c *fiber.Ctx) error {
	return h.respond(c, domain.ParticipationFilter{UserID: c.Params("user_id")})
}
