package handlers

import (
	"errors"
	"net/http"

	request "decormitra/internal/adapter/http/dto/request"
	response "decormitra/internal/adapter/http/dto/response"
	"decormitra/internal/adapter/http/middleware"
	"decormitra/internal/usecase"
	"decormitra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// SendMessage relays one conversation turn to the persona assistant.
//
// @Summary      Send a message to the design assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ChatRequest  true  "Chat turn"
// @Success      200      {object}  response.ChatResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Security     ApiKeyAuth
// @Router       /chat [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	clientID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(errMissingClient.HTTPStatus, errMissingClient.ToHTTPError())
		return
	}

	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	session, reply, err := h.usecase.SendMessage(c.Request.Context(), clientID, payload.SessionID, payload.PersonaID, payload.Message)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{
		SessionID: session.ID,
		PersonaID: session.PersonaID,
		Reply:     reply,
	})
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyChatMessage):
		return pkg.NewDomainError("EMPTY_CHAT_MESSAGE", "Message must not be empty", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainError("UNAUTHORIZED", "Missing client identity", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAssistantUnavailable):
		return pkg.NewDomainError("ASSISTANT_UNAVAILABLE", "The assistant is temporarily unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
