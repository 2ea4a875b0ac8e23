package router

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/adapter/api/handler"
	"fetan/internal/adapter/api/middleware"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Job       *handler.JobHandler
	Chat      *handler.ChatHandler
	Trust     *handler.TrustHandler
	User      *handler.UserHandler
	Assistant *handler.AssistantHandler
	Payment   *handler.PaymentHandler
	Health    *handler.HealthHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	e.GET("/health", h.Health.Check)

	SetupAuthRouter(e, h.Auth, authMiddleware)
	SetupJobRouter(e, h.Job, authMiddleware)
	SetupChatRouter(e, h.Chat, authMiddleware)
	SetupTrustRouter(e, h.Trust, authMiddleware)
	SetupUserRouter(e, h.User, authMiddleware)
	SetupAssistantRouter(e, h.Assistant, authMiddleware)
	SetupPaymentRouter(e, h.Payment, authMiddleware)
}
