package handler

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/usecase"
	"fetan/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

func (h *ChatHandler) ListConversations(c echo.Context) error {
	uid := c.Get("uid").(string)

	convos, err := h.chatUseCase.GetConversations(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, convos)
}

func (h *ChatHandler) StartConversation(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		TargetUserID string `json:"target_user_id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	conversationID, err := h.chatUseCase.StartConversation(c.Request().Context(), uid, req.TargetUserID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"conversation_id": conversationID})
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	messages, err := h.chatUseCase.GetMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Content string `json:"content" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), c.Param("id"), uid, req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}
