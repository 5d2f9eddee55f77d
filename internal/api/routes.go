package api

import (
	"examforge/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(router *gin.Engine, handler *handlers.Handler) {
	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", handler.HandleHealth)

		api.POST("/upload", handler.HandleUpload)
		api.POST("/generate-questions", handler.HandleGenerateQuestions)

		api.GET("/download/questions/:questionSetId/:format", handler.HandleDownloadQuestions)
		api.GET("/download/answers/:questionSetId/:format", handler.HandleDownloadAnswers)

		api.GET("/question-sets/:id", handler.HandleGetQuestionSet)
	}
}
