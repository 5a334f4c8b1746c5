package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dubtrack/internal/config"
	"dubtrack/internal/handlers"
	"dubtrack/internal/middleware"
	"dubtrack/internal/models"
	"dubtrack/internal/repositories"
	"dubtrack/internal/services"
	"dubtrack/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Println("WARNING: JWT_SECRET is not set; using the development default. Do not run this in production.")
	}

	// --- Database ---
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Create the profiles, videos, and avatar_generations tables if absent.
	if err := db.AutoMigrate(&models.User{}, &models.Video{}, &models.AvatarGeneration{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Notifies the external processing system about new records. Leaving
	// RABBITMQ_URL empty runs the server without a broker.
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; event publishing disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	videoRepo := repositories.NewGORMVideoRepository(db)
	generationRepo := repositories.NewGORMAvatarGenerationRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	videoService := services.NewVideoService(videoRepo, mqClient)
	generationService := services.NewAvatarGenerationService(generationRepo, mqClient)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	videoHandler := handlers.NewVideoHandler(videoService)
	generationHandler := handlers.NewAvatarGenerationHandler(generationService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New()) // the browser frontend is served from another origin

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- API Routes ---
	// Public routes must be registered before the protected group: the
	// group's auth middleware has an empty prefix and guards everything
	// that comes after it.
	authRequired := middleware.AuthRequired(authService)

	authHandler.RegisterRoutes(app, authRequired)

	protected := app.Group("", authRequired)
	videoHandler.RegisterRoutes(protected)
	generationHandler.RegisterRoutes(protected)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured backing store. GORM manages a shared
// connection pool, so one handle serves all requests.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DatabaseDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{})
	}
}
