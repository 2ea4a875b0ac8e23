package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	remoteBackend bool
}

func NewHealthHandler(remoteBackend bool) *HealthHandler {
	return &HealthHandler{remoteBackend: remoteBackend}
}

func (h *HealthHandler) Check(c echo.Context) error {
	strategy := "local"
	if h.remoteBackend {
		strategy = "remote"
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"storage": strategy,
	})
}
