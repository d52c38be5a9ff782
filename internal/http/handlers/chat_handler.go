// README: Chat HTTP handlers.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelgenie/internal/modules/chat"
)

type ChatHandler struct {
	chat    *chat.Service
	timeout time.Duration
}

func NewChatHandler(chatSvc *chat.Service, timeout time.Duration) *ChatHandler {
	return &ChatHandler{chat: chatSvc, timeout: timeout}
}

type chatSendReq struct {
	Message string `json:"message"`
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatSendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	reply, err := h.chat.Send(ctx, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, reply)
}

// History handles GET /api/chat/history.
func (h *ChatHandler) History(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"messages": h.chat.History()})
}
