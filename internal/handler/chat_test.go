package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"travelbot/internal/model"
	"travelbot/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (m *memoryCounter) Incr(ctx context.Context, intent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[intent]++
	return nil
}

func (m *memoryCounter) Counts(ctx context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int64, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out, nil
}

func newTestRouter(t *testing.T, counter service.IntentCounter) (*gin.Engine, *service.ChatService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := service.LoadIntentCatalog()
	require.NoError(t, err)

	chatService := service.NewChatService(service.NewIntentParser(), nil, counter, time.Second)
	h := NewChatHandler(chatService, catalog, 20, 100)
	d := NewDiagnosticsHandler(service.NewDiagnosticsService(nil, false, false))

	router := gin.New()
	router.POST("/chat", h.Chat)
	router.GET("/intents", h.ListIntents)
	router.GET("/intents/:name", h.GetIntent)
	router.GET("/test", d.Test)
	router.GET("/api/v1/stats", h.Stats)
	router.GET("/api/v1/chats", h.RecentChats)
	return router, chatService
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatHandler_Chat(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodPost, "/chat",
		`{"message": "Book a hotel in Paris from 2024-07-01 to 2024-07-05", "context": {"session": "abc"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "book_hotel", resp["intent"])
	assert.Equal(t, 0.8, resp["confidence"])
	assert.Equal(t, map[string]any{
		"location":  "paris",
		"check_in":  "2024-07-01",
		"check_out": "2024-07-05",
	}, resp["slots"])
	assert.Equal(t, "Got it. Searching hotels in Paris from 2024-07-01 to 2024-07-05...", resp["reply"])
	assert.Equal(t, "Please provide missing details if any.", resp["follow_up"])
}

func TestChatHandler_ChatNullSlotsAndFollowUp(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodPost, "/chat", `{"message": "I need a flight from London to Rome"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	slots, ok := resp["slots"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, slots, "date")
	assert.Nil(t, slots["date"])
	assert.Contains(t, resp, "follow_up")
	assert.Nil(t, resp["follow_up"])
}

func TestChatHandler_ChatCancelWithoutID(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodPost, "/chat", `{"message": "I want to cancel my reservation"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":{}`)
}

func TestChatHandler_ChatEmptyMessage(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodPost, "/chat", `{"message": ""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.IntentFallback, resp.Intent)
	assert.Equal(t, 0.4, resp.Confidence)
	assert.Empty(t, resp.Slots)
}

func TestChatHandler_ChatInvalidRequest(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "Missing message", body: `{"context": {}}`},
		{name: "Null message", body: `{"message": null}`},
		{name: "Malformed JSON", body: `{"message": `},
		{name: "Wrong type", body: `{"message": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/chat", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid request")
		})
	}
}

func TestChatHandler_ListIntents(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodGet, "/intents", "")
	require.Equal(t, http.StatusOK, w.Code)

	var intents []model.IntentDef
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &intents))
	require.Len(t, intents, len(model.AllIntents))
	assert.Equal(t, "greeting", intents[0].Name)
	assert.Equal(t, []string{}, intents[0].RequiredSlots)
	assert.Contains(t, w.Body.String(), `"required_slots":[]`)
}

func TestChatHandler_GetIntent(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodGet, "/intents/search_flights", "")
	require.Equal(t, http.StatusOK, w.Code)

	var def model.IntentDef
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &def))
	assert.Equal(t, "search_flights", def.Name)
	assert.Equal(t, []string{"from", "to", "date"}, def.RequiredSlots)

	w = doRequest(router, http.MethodGet, "/intents/fallback", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"required_slots":[]`)

	w = doRequest(router, http.MethodGet, "/intents/book_car", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatHandler_Stats(t *testing.T) {
	router, chatService := newTestRouter(t, &memoryCounter{counts: map[string]int64{}})

	doRequest(router, http.MethodPost, "/chat", `{"message": "thanks"}`)
	doRequest(router, http.MethodPost, "/chat", `{"message": "what can you do"}`)
	chatService.Wait()

	w := doRequest(router, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.IntentStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Counts["thanks"])
	assert.Equal(t, int64(1), stats.Counts["help"])
}

func TestChatHandler_StorageUnavailable(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/stats", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/chats", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/chats?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosticsHandler_Test(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := doRequest(router, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var report model.StorageDiagnostics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", report.DatabaseURL)
	assert.Equal(t, []string{}, report.Collections)
}
