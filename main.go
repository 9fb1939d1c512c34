package main

import (
	"log"

	"trivia/config"
	"trivia/handlers"
	"trivia/models"
	"trivia/routes"
	"trivia/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load configuration (.env is optional)
	godotenv.Load()
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the fixed category set
	if err := config.SeedCategories(db); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	// Initialize service and handler
	triviaService := services.NewTriviaService(db)
	triviaHandler := handlers.NewTriviaHandler(triviaService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Setup routes
	routes.SetupRoutes(router, triviaHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
