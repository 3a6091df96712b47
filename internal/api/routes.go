package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"alcyxob/exercise-tracker/web"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers middleware, the landing page and the /api routes.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	logService service.LogService,
) {
	userHandler := NewUserHandler(userService)
	logHandler := NewLogHandler(logService)

	router.Use(RequestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders:   []string{RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML())
	})
	router.StaticFS("/public", http.FS(web.Public()))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		usersGroup := apiGroup.Group("/users")
		{
			// POST /api/users
			usersGroup.POST("", userHandler.CreateUser)
			// GET /api/users
			usersGroup.GET("", userHandler.ListUsers)
			// POST /api/users/{id}/exercises
			usersGroup.POST("/:id/exercises", logHandler.AddExercise)
			// GET /api/users/{id}/logs?from=&to=&limit=
			usersGroup.GET("/:id/logs", logHandler.GetLog)
		}
	}
}
