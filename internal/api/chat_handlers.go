package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verahq/vera-backend/internal/chat"
)

// ChatStatus reports chat service availability.
// GET /api/v1/chat
func (h *Handler) ChatStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "chat"})
}

// Chat runs a completion for a general conversation turn.
// POST /api/v1/chat
func (h *Handler) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil || req.Messages == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages must be an array"})
		return
	}

	reply, err := h.chat.Complete(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": chat.ErrNotConfigured.Error()})
			return
		}
		h.log.WithField("trace_id", c.GetString("trace_id")).WithError(err).Error("chat completion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intent": chat.Classify(lastUserMessage(req.Messages)),
		"reply":  reply,
	})
}

// ClassifyIntent routes a single message to its deterministic intent so the
// console can decide whether to call a profile endpoint instead of the model.
// POST /api/v1/chat/intent
func (h *Handler) ClassifyIntent(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing message"})
		return
	}

	intent := chat.Classify(req.Message)
	resp := gin.H{"intent": intent}
	if intent == chat.IntentPromotion {
		resp["checklist"] = chat.PromotionChecklist
	}
	c.JSON(http.StatusOK, resp)
}

// PrepareDocuments extracts per-file context blocks for attachments so a
// later chat turn can cite them.
// POST /api/v1/chat/prepare-docs
func (h *Handler) PrepareDocuments(c *gin.Context) {
	files, ok := h.readUploads(c)
	if !ok {
		return
	}

	documents, combined := h.ingestion.PrepareContext(c.Request.Context(), files)
	c.JSON(http.StatusOK, gin.H{
		"documents":       documents,
		"combinedContext": combined,
	})
}

func lastUserMessage(messages []chat.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
