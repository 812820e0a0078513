package api

import (
	"net/http"

	"exercise-tracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers middleware and all API routes on the router.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.Use(RequestIDMiddleware())
	// The API is called cross-origin from browser clients.
	router.Use(cors.Default())

	router.StaticFile("/", "./web/index.html")

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.GET("/users", userHandler.ListUsers)
		apiGroup.POST("/users/:id/exercises", exerciseHandler.AddExercise)
		apiGroup.GET("/users/:id/logs", exerciseHandler.GetLogs)
	}
}
