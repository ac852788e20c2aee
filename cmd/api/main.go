package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/interview-assistant/internal/config"
	"alfredoptarigan/interview-assistant/internal/handlers"
	"alfredoptarigan/interview-assistant/internal/repositories"
	"alfredoptarigan/interview-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize database (optional)
	var (
		resumeRepo   repositories.ResumeRepository
		questionRepo repositories.QuestionRepository
	)
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		resumeRepo = repositories.NewResumeRepository(db)
		questionRepo = repositories.NewQuestionRepository(db)
		log.Println("✅ Repositories initialized successfully")
	} else {
		log.Println("ℹ️  Database disabled, uploads and questions will not be recorded")
	}

	// Initialize services
	var storageService services.StorageService
	if cfg.Storage.PersistUploads {
		var err error
		storageService, err = newStorage(ctx, cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize storage: %v", err)
		}
		if err := storageService.EnsureUploadDir(); err != nil {
			log.Fatalf("❌ Failed to prepare upload storage: %v", err)
		}
	}

	parser := services.NewDocumentParserService(cfg.Storage.VerifySignature)
	ingestor := services.NewResumeIngestor(parser, storageService, resumeRepo)

	llmService, err := services.NewLLMService(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
	}

	interviewService := services.NewInterviewService(llmService, questionRepo, services.InterviewOptions{
		Temperature:          cfg.LLM.Temperature,
		Timeout:              cfg.LLM.Timeout,
		RequireResumeForChat: cfg.Session.RequireResumeForChat,
	})
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	sessions := handlers.NewSessionStore(cfg.Session)
	uploadHandler := handlers.NewUploadHandler(ingestor, sessions)
	chatHandler := handlers.NewChatHandler(interviewService, sessions)
	jobHandler := handlers.NewJobHandler(sessions)
	questionHandler := handlers.NewQuestionHandler(interviewService, sessions)
	resumeHandler := handlers.NewResumeHandler(resumeRepo, sessions)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	llmLimiter := newLLMLimiter(cfg.RateLimit)

	// Routes
	app.Get("/", handlers.HandleIndex)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Post("/upload_resume", uploadHandler.HandleUploadResume)
	app.Get("/resumes/:id", resumeHandler.HandleGetResume)
	app.Post("/set-job", jobHandler.HandleSetJob)
	app.Post("/chat", llmLimiter, chatHandler.HandleChat)
	app.Post("/generate_question", llmLimiter, questionHandler.HandleGenerateQuestion)
	app.Get("/questions", questionHandler.HandleListQuestions)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func newStorage(ctx context.Context, cfg *config.Config) (services.StorageService, error) {
	if cfg.Storage.Driver == config.StorageDriverS3 {
		return services.NewS3StorageService(ctx, cfg.Storage.S3)
	}
	return services.NewStorageService(cfg.Storage.UploadPath), nil
}

func newLLMLimiter(cfg config.RateLimitConfig) fiber.Handler {
	if !cfg.Enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please slow down.",
			})
		},
	})
}
