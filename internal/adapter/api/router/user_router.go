package router

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/adapter/api/handler"
	"fetan/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware) {
	// The provider directory and profiles are public.
	e.GET("/v1/providers", userHandler.ListProviders)
	e.GET("/v1/users/:id", userHandler.GetUser)
	e.GET("/v1/users/:id/reviews", userHandler.GetReviews)

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.PUT("/:id/bio", userHandler.UpdateBio)
}
