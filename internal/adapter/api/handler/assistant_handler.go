package handler

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/usecase"
	"fetan/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{assistantUseCase: assistantUseCase}
}

func (h *AssistantHandler) StartSession(c echo.Context) error {
	sessionID, err := h.assistantUseCase.StartSession(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]string{"session_id": sessionID})
}

func (h *AssistantHandler) SendMessage(c echo.Context) error {
	var req struct {
		Message string `json:"message" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.assistantUseCase.SendMessage(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reply)
}
