package handler

import (
	"tala-trivia/internal/domain"
	"tala-trivia/internal/middleware"
	"tala-trivia/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler mounted under /api.
type Handlers struct {
	Users          *UserHandler
	Players        *PlayerHandler
	Questions      *QuestionHandler
	Trivias        *TriviaHandler
	Answers        *AnswerHandler
	Participations *ParticipationHandler
	Rankings       *RankingHandler
}

// RegisterRoutes mounts the API on router.
func RegisterRoutes(router fiber.Router, h Handlers, auth service.AuthService, vm *middleware.ValidationMiddleware) {
	api := router.Group("/api")
	protected := middleware.Protected(auth)
	admin := middleware.RequireRole(domain.RoleAdmin)
	id := vm.ValidateIDParam("id")
	ulid := vm.ValidateULIDParam("id")

	users := api.Group("/users")
	users.Post("/", middleware.OptionalAuth(auth), h.Users.CreateUser)
	users.Get("/", protected, h.Users.ListUsers)
	users.Get("/:id", protected, ulid, h.Users.GetUser)
	users.Put("/:id", protected, ulid, h.Users.UpdateUser)

	players := api.Group("/players", protected)
	players.Get("/", h.Players.ListPlayers)
	players.Post("/", admin, h.Players.CreatePlayer)
	players.Get("/:id", ulid, h.Players.GetPlayer)
	players.Put("/:id", admin, ulid, h.Players.UpdatePlayer)

	questions := api.Group("/questions", protected)
	questions.Get("/", h.Questions.ListQuestions)
	questions.Post("/", admin, h.Questions.CreateQuestion)
	questions.Get("/:id", id, h.Questions.GetQuestion)
	questions.Put("/:id", admin, id, h.Questions.UpdateQuestion)

	trivias := api.Group("/trivias", protected)
	trivias.Get("/", h.Trivias.ListTrivias)
	trivias.Post("/", admin, h.Trivias.CreateTrivia)
	trivias.Get("/:id", id, h.Trivias.GetTrivia)
	trivias.Put("/:id", admin, id, h.Trivias.UpdateTrivia)
	trivias.Post("/:id/submit", id, h.Trivias.SubmitTrivia)

	answers := api.Group("/answers", protected)
	answers.Get("/", h.Answers.ListAnswers)
	answers.Post("/", h.Answers.SubmitAnswer)

	participations := api.Group("/participations", protected)
	participations.Get("/", h.Participations.ListParticipations)
	participations.Post("/", h.Participations.CreateParticipation)
	participations.Get("/:id", id, h.Participations.GetParticipation)
	participations.Put("/:id", id, h.Participations.UpdateParticipation)

	// /user/:user_id must be registered before /:trivia_id/:user_id.
	rankings := api.Group("/rankings", protected)
	rankings.Get("/", h.Rankings.GetRanking)
	rankings.Get("/user/:user_id", vm.ValidateULIDParam("user_id"), h.Rankings.GetUserRanking)
	rankings.Get("/:trivia_id", vm.ValidateIDParam("trivia_id"), h.Rankings.GetTriviaRanking)
	rankings.Get("/:trivia_id/:user_id", vm.ValidateIDParam("trivia_id"), vm.ValidateULIDParam("user_id"), h.Rankings.GetTriviaUserRanking)
}
