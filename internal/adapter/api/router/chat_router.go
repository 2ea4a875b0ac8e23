package router

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/adapter/api/handler"
	"fetan/internal/adapter/api/middleware"
)

// SetupChatRouter wires the inbox. Clients poll the message endpoint while
// a conversation is open; there is no push channel.
func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.GET("", chatHandler.ListConversations)
	chats.POST("", chatHandler.StartConversation)
	chats.GET("/:id/messages", chatHandler.GetMessages)
	chats.POST("/:id/messages", chatHandler.SendMessage)
}
