package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"docuport/internal/adapters/http/middleware"
	"docuport/internal/adapters/http/routes"
	"docuport/internal/adapters/persistence/models"
	"docuport/internal/adapters/persistence/repositories"
	"docuport/internal/config"
	"docuport/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "docuport/docs" // Swagger docs
)

// @title DocuPort API
// @version 1.0
// @description Role-based user portal with document distribution
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@docuport.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.docuport.local
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed initial admin account
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Start expired refresh token sweeper (03:30 daily)
	tokenSweeper := services.NewTokenSweeper(repositories.NewRefreshTokenRepository(db))
	tokenSweeper.Start()
	defer tokenSweeper.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "DocuPort API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1024*1024,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
