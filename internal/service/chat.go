package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"travelbot/internal/logger"
	"travelbot/internal/model"

	"github.com/google/uuid"
)

var (
	// ErrChatLogUnavailable is returned when no chat log store is configured
	ErrChatLogUnavailable = errors.New("chat log storage is not configured")
	// ErrStatsUnavailable is returned when no intent counter is configured
	ErrStatsUnavailable = errors.New("intent statistics storage is not configured")
)

// ChatLogStore persists classified messages
type ChatLogStore interface {
	LogChat(ctx context.Context, entry *model.ChatLogEntry) error
	RecentChats(ctx context.Context, limit int) ([]model.ChatLogEntry, error)
}

// IntentCounter counts classified messages per intent
type IntentCounter interface {
	Incr(ctx context.Context, intent string) error
	Counts(ctx context.Context) (map[string]int64, error)
}

// ChatService answers chat messages and records them in the optional stores.
// Stored data is never read back to answer a message.
type ChatService struct {
	parser     *IntentParser
	chatLog    ChatLogStore
	counter    IntentCounter
	logTimeout time.Duration
	now        func() time.Time
	pending    sync.WaitGroup
}

// NewChatService creates a new chat service. chatLog and counter may be nil.
func NewChatService(parser *IntentParser, chatLog ChatLogStore, counter IntentCounter, logTimeout time.Duration) *ChatService {
	if logTimeout <= 0 {
		logTimeout = 5 * time.Second
	}
	return &ChatService{
		parser:     parser,
		chatLog:    chatLog,
		counter:    counter,
		logTimeout: logTimeout,
		now:        time.Now,
	}
}

// Chat classifies a message and returns the reply
func (s *ChatService) Chat(message string) *model.ChatResponse {
	start := s.now()
	result := s.parser.Classify(message)
	resp := model.NewChatResponse(result)

	logger.Logger.Debug().
		Str("intent", string(resp.Intent)).
		Float64("confidence", resp.Confidence).
		Int("slots", len(resp.Slots)).
		Dur("took", s.now().Sub(start)).
		Msg("Message classified")

	s.record(message, resp, start)

	return resp
}

// record writes the chat to the optional stores without blocking the reply
func (s *ChatService) record(message string, resp *model.ChatResponse, at time.Time) {
	if s.chatLog == nil && s.counter == nil {
		return
	}

	entry := &model.ChatLogEntry{
		ID:         uuid.New().String(),
		Message:    message,
		Intent:     string(resp.Intent),
		Confidence: resp.Confidence,
		Slots:      model.JSONMap(resp.Slots),
		Reply:      resp.Reply,
		CreatedAt:  at.UTC(),
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.logTimeout)
		defer cancel()

		if s.chatLog != nil {
			if err := s.chatLog.LogChat(ctx, entry); err != nil {
				logger.Logger.Warn().Err(err).Str("id", entry.ID).Msg("Failed to write chat log")
			}
		}
		if s.counter != nil {
			if err := s.counter.Incr(ctx, entry.Intent); err != nil {
				logger.Logger.Warn().Err(err).Str("intent", entry.Intent).Msg("Failed to count intent")
			}
		}
	}()
}

// Wait blocks until all pending background writes have finished
func (s *ChatService) Wait() {
	s.pending.Wait()
}

// Stats returns per-intent request counts
func (s *ChatService) Stats(ctx context.Context) (*model.IntentStats, error) {
	if s.counter == nil {
		return nil, ErrStatsUnavailable
	}

	counts, err := s.counter.Counts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.IntentStats{Counts: make(map[string]int64, len(model.AllIntents))}
	for _, in := range model.AllIntents {
		stats.Counts[string(in)] = 0
	}
	for intent, n := range counts {
		stats.Counts[intent] = n
		stats.Total += n
	}
	return stats, nil
}

// RecentChats returns the latest logged chats
func (s *ChatService) RecentChats(ctx context.Context, limit int) ([]model.ChatLogEntry, error) {
	if s.chatLog == nil {
		return nil, ErrChatLogUnavailable
	}
	return s.chatLog.RecentChats(ctx, limit)
}
