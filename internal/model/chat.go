package model

import "time"

// ChatRequest represents a chat message request
type ChatRequest struct {
	Message *string        `json:"message" binding:"required"`
	Context map[string]any `json:"context,omitempty"` // accepted but not used for classification
}

// ChatResponse represents the classification returned to the client
type ChatResponse struct {
	Intent     Intent         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Slots      map[string]any `json:"slots"`
	Reply      string         `json:"reply"`
	FollowUp   *string        `json:"follow_up"`
}

// NewChatResponse converts a classification into its wire form
func NewChatResponse(c *Classification) *ChatResponse {
	slots := map[string]any{}
	if c.Slots != nil {
		slots = c.Slots.Map()
	}
	return &ChatResponse{
		Intent:     c.Intent,
		Confidence: c.Confidence,
		Slots:      slots,
		Reply:      c.Reply,
		FollowUp:   c.FollowUp,
	}
}

// ChatLogEntry is one classified message as written to the chat log
type ChatLogEntry struct {
	ID         string    `json:"id" db:"id"`
	Message    string    `json:"message" db:"message"`
	Intent     string    `json:"intent" db:"intent"`
	Confidence float64   `json:"confidence" db:"confidence"`
	Slots      JSONMap   `json:"slots" db:"slots"`
	Reply      string    `json:"reply" db:"reply"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// StorageDiagnostics reports on the optional storage backends
type StorageDiagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// IntentStats holds request counts per intent
type IntentStats struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}
