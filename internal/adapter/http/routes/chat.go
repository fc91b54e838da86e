package routes

import (
	"decormitra/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathChat = "/chat"

func addChatRoutes(rg *gin.RouterGroup, chatHandler *handlers.ChatHandler) {
	rg.POST(PathChat, chatHandler.SendMessage)
}
