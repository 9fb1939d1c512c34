package routes

import (
	"net/http"

	"trivia/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, triviaHandler *handlers.TriviaHandler) {
	// Unknown paths and wrong methods get the same JSON envelope as
	// handler-level errors.
	router.HandleMethodNotAllowed = true
	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.MethodNotAllowed)

	router.GET("/categories", triviaHandler.GetCategories)
	router.GET("/categories/:id/questions", triviaHandler.GetQuestionsByCategory)

	router.GET("/questions", triviaHandler.GetQuestions)
	router.POST("/questions", triviaHandler.PostQuestions)
	router.DELETE("/questions/:id", triviaHandler.DeleteQuestion)

	router.POST("/quizzes", triviaHandler.NextQuizQuestion)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
