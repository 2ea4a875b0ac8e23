package router

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/adapter/api/handler"
	"fetan/internal/adapter/api/middleware"
)

func SetupJobRouter(e *echo.Echo, jobHandler *handler.JobHandler, authMiddleware *middleware.AuthMiddleware) {
	jobs := e.Group("/v1/jobs")
	jobs.Use(authMiddleware.Authenticate)

	jobs.POST("", jobHandler.Create)
	jobs.GET("", jobHandler.List)
	jobs.GET("/available", jobHandler.Available)
	jobs.POST("/:id/accept", jobHandler.Accept)
	jobs.POST("/:id/complete", jobHandler.Complete)
}
