package router

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/adapter/api/handler"
	"fetan/internal/adapter/api/middleware"
)

func SetupTrustRouter(e *echo.Echo, trustHandler *handler.TrustHandler, authMiddleware *middleware.AuthMiddleware) {
	trust := e.Group("/v1/trust")
	trust.Use(authMiddleware.Authenticate)

	trust.POST("/reports", trustHandler.SubmitReport)
	trust.POST("/verification", trustHandler.RequestVerification)
	trust.GET("/verification/status", trustHandler.VerificationStatus)
}
