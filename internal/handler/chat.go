package handler

import (
	"errors"
	"net/http"
	"strconv"

	"travelbot/internal/model"
	"travelbot/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatService  *service.ChatService
	catalog      *service.IntentCatalog
	defaultLimit int
	maxLimit     int
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, catalog *service.IntentCatalog, defaultLimit, maxLimit int) *ChatHandler {
	return &ChatHandler{
		chatService:  chatService,
		catalog:      catalog,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.chatService.Chat(*req.Message))
}

// ListIntents handles GET /intents
func (h *ChatHandler) ListIntents(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// GetIntent handles GET /intents/:name
func (h *ChatHandler) GetIntent(c *gin.Context) {
	def, ok := h.catalog.Get(model.Intent(c.Param("name")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown intent"})
		return
	}
	c.JSON(http.StatusOK, def)
}

// RecentChats handles GET /api/v1/chats
func (h *ChatHandler) RecentChats(c *gin.Context) {
	limit := h.defaultLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	entries, err := h.chatService.RecentChats(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrChatLogUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get chat logs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chats": entries, "count": len(entries)})
}

// Stats handles GET /api/v1/stats
func (h *ChatHandler) Stats(c *gin.Context) {
	stats, err := h.chatService.Stats(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrStatsUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
