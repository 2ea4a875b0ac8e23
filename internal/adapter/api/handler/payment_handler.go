package handler

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/infrastructure/payment"
	"fetan/pkg/response"
)

type PaymentHandler struct {
	gateway *payment.Gateway
}

func NewPaymentHandler(gateway *payment.Gateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// Checkout runs the simulated payment flow and returns the transaction id
// the job-posting flow carries forward.
func (h *PaymentHandler) Checkout(c echo.Context) error {
	var req struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
		Method string  `json:"method" validate:"required,oneof=telebirr chapa cbe"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.gateway.Checkout(c.Request().Context(), req.Amount, req.Method)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
