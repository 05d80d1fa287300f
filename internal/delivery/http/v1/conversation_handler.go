package v1

import (
	"net/http"
	"strconv"

	"riseup-backend/internal/contract"
	"riseup-backend/internal/delivery/http/response"
	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"
	"riseup-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	chatUC domain.ChatUsecase
}

func NewConversationHandler(protected *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ConversationHandler{chatUC: chatUC}

	handle(protected, contract.API.Conversations.PostMessage, handler.PostMessage)
	handle(protected, contract.API.Conversations.ListMessages, handler.ListMessages)
	handle(protected, contract.API.Conversations.Delete, handler.Delete)
}

// PostMessage godoc
// @Summary      Post a message
// @Description  Append a message to a conversation, optionally with an audio payload
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        id       path      int                          true  "Conversation ID"
// @Param        message  body      contract.PostMessageRequest  true  "Message JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /conversations/{id}/messages [post]
// @Security     CookieAuth
func (h *ConversationHandler) PostMessage(c *gin.Context) {
	conversationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req contract.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
		return
	}

	msg, err := h.chatUC.PostMessage(c.Request.Context(), conversationID, req.Role, req.Content, req.Audio)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message posted", msg)
}

// ListMessages godoc
// @Summary      List messages
// @Description  Get a conversation's messages, oldest first
// @Tags         conversations
// @Produce      json
// @Param        id   path      int  true  "Conversation ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /conversations/{id}/messages [get]
// @Security     CookieAuth
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	conversationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	messages, err := h.chatUC.ListMessages(c.Request.Context(), conversationID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message list", messages)
}

// Delete godoc
// @Summary      Delete a conversation
// @Description  Delete a conversation and all of its messages
// @Tags         conversations
// @Produce      json
// @Param        id   path      int  true  "Conversation ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /conversations/{id} [delete]
// @Security     CookieAuth
func (h *ConversationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.chatUC.DeleteConversation(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conversation deleted", nil)
}
