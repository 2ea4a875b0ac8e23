package router

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/adapter/api/handler"
	"fetan/internal/adapter/api/middleware"
)

func SetupAssistantRouter(e *echo.Echo, assistantHandler *handler.AssistantHandler, authMiddleware *middleware.AuthMiddleware) {
	assistant := e.Group("/v1/assistant")
	assistant.Use(authMiddleware.Authenticate)
	assistant.POST("/sessions", assistantHandler.StartSession)
	assistant.POST("/sessions/:id/messages", assistantHandler.SendMessage)
}
