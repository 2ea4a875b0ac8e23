package router

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/adapter/api/handler"
	"fetan/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/reset-password", authHandler.ResetPassword)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/me", authHandler.Me)
	protected.PUT("/password", authHandler.ChangePassword)
}
