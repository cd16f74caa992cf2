package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/logwise-app/logwise/internal/controller/http/validators"
	"github.com/logwise-app/logwise/internal/service"
)

type ChatController struct {
	chatService service.Chat
}

func NewChatController(cs service.Chat) *ChatController {
	return &ChatController{chatService: cs}
}

type storeMessageRequest struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type storeMessageResponse struct {
	ID int `json:"id"`
}

func (ctr *ChatController) StoreMessage(c echo.Context) error {
	var req storeMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}

	if err := validators.ValidateChatMessage(req.Role, req.Message); err != nil {
		return handleError(c, err)
	}

	id, err := ctr.chatService.StoreMessage(c.Request().Context(), c.Param("id"), req.Role, req.Message)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusCreated, storeMessageResponse{ID: id})
}

func (ctr *ChatController) GetHistory(c echo.Context) error {
	messages, err := ctr.chatService.GetHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, toChatResponses(messages))
}

type updateMessageRequest struct {
	Message string `json:"message"`
}

func (ctr *ChatController) UpdateMessage(c echo.Context) error {
	msgID, err := strconv.Atoi(c.Param("msgID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid message id"})
	}

	var req updateMessageRequest
	if err := c.Bind(&req); err != nil || req.Message == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "message is required"})
	}

	if err := ctr.chatService.UpdateMessage(c.Request().Context(), msgID, req.Message); err != nil {
		return handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (ctr *ChatController) DeleteMessage(c echo.Context) error {
	msgID, err := strconv.Atoi(c.Param("msgID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid message id"})
	}

	if err := ctr.chatService.DeleteMessage(c.Request().Context(), msgID); err != nil {
		return handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
