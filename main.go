package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inventaris/internal/handlers"
	"inventaris/internal/i18n"
	"inventaris/internal/models"
	"inventaris/internal/repositories"
	"inventaris/internal/services"
	"inventaris/internal/validation"
	"inventaris/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "file:inventaris.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("DEFAULT_LOCALE", i18n.DefaultLocale)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	dbDriver := viper.GetString("DATABASE_DRIVER")
	dbDSN := viper.GetString("DATABASE_DSN")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	defaultLocale := viper.GetString("DEFAULT_LOCALE")

	// --- Database ---
	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the repository relies on.
	db, err := openDatabase(dbDriver, dbDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var events services.ProductEventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, product events disabled")
	}

	// --- Wiring ---
	catalog := i18n.NewCatalog(defaultLocale)
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, validation.NewEngine(), events)
	productHandler := handlers.NewProductHandler(productService)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.NewErrorHandler(catalog),
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
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

// openDatabase opens the configured storage backend. SQLite keeps local
// development dependency-free; PostgreSQL is the production target.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
}
