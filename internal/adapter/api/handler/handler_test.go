package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fetan/internal/adapter/api"
	"fetan/internal/infrastructure/payment"
)

func TestHealthCheckReportsStrategy(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	healthHandler := NewHealthHandler(false)

	if assert.NoError(t, healthHandler.Check(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
		assert.Contains(t, rec.Body.String(), "local")
	}
}

func TestPaymentCheckout(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()

	body := `{"amount": 500, "method": "telebirr"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	paymentHandler := NewPaymentHandler(payment.NewGateway(0))

	require.NoError(t, paymentHandler.Checkout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TXN-")
}

func TestPaymentCheckoutRejectsUnknownMethod(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()

	body := `{"amount": 500, "method": "paypal"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	paymentHandler := NewPaymentHandler(payment.NewGateway(0))

	require.NoError(t, paymentHandler.Checkout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
