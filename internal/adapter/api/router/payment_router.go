package router

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/adapter/api/handler"
	"fetan/internal/adapter/api/middleware"
)

func SetupPaymentRouter(e *echo.Echo, paymentHandler *handler.PaymentHandler, authMiddleware *middleware.AuthMiddleware) {
	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)
	payments.POST("/checkout", paymentHandler.Checkout)
}
