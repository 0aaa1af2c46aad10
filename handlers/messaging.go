package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prolink/middleware"
	"prolink/models"
	"prolink/services/messaging"
	"prolink/utils"
)

// MessagingHandler exposes conversations and message exchange.
type MessagingHandler struct {
	Messaging messaging.MessagingService
}

func NewMessagingHandler(svc messaging.MessagingService) *MessagingHandler {
	return &MessagingHandler{Messaging: svc}
}

// ListConversationsHandler returns the acting user's conversations.
func (h *MessagingHandler) ListConversationsHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	convos, err := h.Messaging.ListConversations(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, convos)
}

// ListMessagesHandler returns the chronological exchange between the
// acting user and the other participant.
func (h *MessagingHandler) ListMessagesHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	msgs, err := h.Messaging.ListMessages(c.Request.Context(), userID, c.Param("otherId"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// SendMessageHandler appends a message, dispatching on the resolved
// participant variant: assistant conversations never persist through the
// store and answer with the scripted reply instead.
func (h *MessagingHandler) SendMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString(middleware.ContextUserIDKey)

	var req struct {
		ReceiverID string `json:"receiverId" binding:"required"`
		Text       string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid send request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	participant, err := h.Messaging.Participant(c.Request.Context(), userID, req.ReceiverID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if participant.Kind == models.ParticipantAssistant {
		reply, err := h.Messaging.AssistantReply(c.Request.Context(), userID, req.Text)
		if err != nil {
			utils.JSONError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
		return
	}

	stored, err := h.Messaging.Send(c.Request.Context(), models.Message{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Text:       req.Text,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}
