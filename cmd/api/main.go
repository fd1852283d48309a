// @title TalaTrivia API
// @version 1.0
// @description Trivia backend: users, questions, trivias, scored answers and rankings.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "tala-trivia/cmd/api/docs"
	"tala-trivia/internal/adapter"
	"tala-trivia/internal/cache"
	"tala-trivia/internal/config"
	"tala-trivia/internal/database"
	"tala-trivia/internal/domain"
	"tala-trivia/internal/handler"
	"tala-trivia/internal/logger"
	"tala-trivia/internal/metrics"
	"tala-trivia/internal/middleware"
	"tala-trivia/internal/repository"
	"tala-trivia/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const dbStatsInterval = 15 * time.Second

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		if err != nil {
			status = middleware.StatusFromError(err)
		}

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXDB(cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("host", cfg.DB.Host), zap.String("name", cfg.DB.DBName))

	// Redis is optional; without it rankings are computed on every request.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address == "" {
		appLogger.Warn("Redis address not configured, ranking cache disabled")
	} else if redisClient, err := cache.NewRedisClient(cfg.Redis); err != nil {
		appLogger.Warn("Failed to connect to Redis, ranking cache disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize repositories
	txManager := repository.NewTransactionManagerAdapter(db)
	userRepository := repository.NewSQLXUserRepository(db)
	playerRepository := repository.NewSQLXPlayerRepository(db)
	questionRepository := repository.NewSQLXQuestionRepository(db)
	triviaRepository := repository.NewSQLXTriviaRepository(db)
	participationRepository := repository.NewSQLXParticipationRepository(db)
	answerRepository := repository.NewSQLXAnswerRepository(db)

	// Initialize services
	authService, err := service.NewAuthService(cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	rankingService := service.NewRankingService(participationRepository, cacheAdapter, cfg.Ranking.CacheTTL, appMetrics)
	userService := service.NewUserService(userRepository, authService)
	playerService := service.NewPlayerService(playerRepository, userRepository, txManager)
	questionService := service.NewQuestionService(questionRepository, txManager)
	triviaService := service.NewTriviaService(triviaRepository, txManager, rankingService)
	participationService := service.NewParticipationService(participationRepository, triviaRepository, userRepository, txManager, rankingService)
	answerService := service.NewAnswerService(answerRepository, questionRepository, triviaRepository, participationRepository, txManager, rankingService, appMetrics)

	// Initialize handlers
	vm := middleware.NewValidationMiddleware()
	v := vm.Validator()
	handlers := handler.Handlers{
		Users:          handler.NewUserHandler(userService, v),
		Players:        handler.NewPlayerHandler(playerService, v),
		Questions:      handler.NewQuestionHandler(questionService, v),
		Trivias:        handler.NewTriviaHandler(triviaService, answerService, v),
		Answers:        handler.NewAnswerHandler(answerService, v),
		Participations: handler.NewParticipationHandler(participationService, v),
		Rankings:       handler.NewRankingHandler(rankingService),
	}
	healthHandler := handler.NewHealthHandler(db, cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(metrics.Middleware(appMetrics, middleware.StatusFromError))

	app.Get("/healthz", healthHandler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, handlers, authService, vm)

	statsCtx, stopStats := context.WithCancel(context.Background())
	defer stopStats()
	go func() {
		ticker := time.NewTicker(dbStatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-statsCtx.Done():
				return
			case <-ticker.C:
				appMetrics.RecordDBStats(db.Stats())
			}
		}
	}()

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
