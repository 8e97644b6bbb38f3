package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kyawphyoaung/ai-career-copilot/internal/config"
	"github.com/kyawphyoaung/ai-career-copilot/internal/handlers"
	"github.com/kyawphyoaung/ai-career-copilot/internal/repositories"
	"github.com/kyawphyoaung/ai-career-copilot/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	profileRepo := repositories.NewProfileRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Generation.Timeout,
		cfg.Generation.RetryMaxAttempts,
		cfg.Generation.RetryInitialDelay,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize generator
	generatorService := services.NewGeneratorService(
		profileRepo,
		appRepo,
		geminiService,
		cfg.Generation.FollowUpAfter,
	)
	log.Println("✅ Generator service initialized")

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(profileRepo, generatorService)
	applicationHandler := handlers.NewApplicationHandler(appRepo, profileRepo)
	profileHandler := handlers.NewProfileHandler(
		profileRepo,
		storageService,
		resumeParser,
		cfg.Storage.MaxFileSize,
	)
	dashboardHandler := handlers.NewDashboardHandler(appRepo, profileRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Career Copilot API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/generate", generateHandler.HandleGenerate)
	api.Get("/applications", applicationHandler.HandleList)
	api.Get("/applications/:id", applicationHandler.HandleGet)
	api.Patch("/applications/:id/status", applicationHandler.HandleUpdateStatus)
	api.Patch("/applications/:id/follow-up", applicationHandler.HandleUpdateFollowUp)
	api.Get("/profile", profileHandler.HandleGet)
	api.Put("/profile", profileHandler.HandleUpsert)
	api.Post("/profile/resume", profileHandler.HandleImportResume)
	api.Get("/dashboard", dashboardHandler.HandleDashboard)
	api.Get("/follow-ups/pending", dashboardHandler.HandlePendingFollowUps)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Career Copilot API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/generate",
				"GET /api/v1/applications",
				"GET /api/v1/applications/:id",
				"PATCH /api/v1/applications/:id/status",
				"PATCH /api/v1/applications/:id/follow-up",
				"GET /api/v1/profile",
				"PUT /api/v1/profile",
				"POST /api/v1/profile/resume",
				"GET /api/v1/dashboard",
				"GET /api/v1/follow-ups/pending",
			},
		})
	})

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

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
