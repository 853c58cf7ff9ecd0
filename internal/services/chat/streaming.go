// File: internal/services/chat/streaming.go
package chat

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/chat"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/message"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/responder"
)

// ContentFunc receives each accumulated prefix of the response. The
// prefix is the full text emitted so far, never a delta: the consumer
// replaces its buffer on every call. isComplete marks the final prefix.
type ContentFunc func(content string, isComplete bool) error

// StreamingService emits a resolved response as a sequence of growing
// word prefixes, then persists the completed assistant message.
type StreamingService struct {
	config      *Config
	chatRepo    chat.ChatRepository
	messageRepo message.MessageRepository
	logger      Logger
}

// NewStreamingService creates a new instance of the StreamingService.
func NewStreamingService(
	config *Config,
	chatRepo chat.ChatRepository,
	messageRepo message.MessageRepository,
	logger Logger,
) (*StreamingService, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &StreamingService{
		config:      config,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}, nil
}

// Timeout returns the configured upper bound for one streaming session.
func (s *StreamingService) Timeout() time.Duration {
	return s.config.StreamTimeout
}

// StreamResponse resolves the response for the user message, emits it
// through onContent one whitespace token at a time as a growing prefix,
// persists the full text as an assistant message, and returns it.
//
// Exactly one content emission per token; the last carries isComplete.
// Nothing is emitted after an error return. The chat's updated_at is
// pinned to the persisted message's created_at.
func (s *StreamingService) StreamResponse(
	ctx context.Context,
	chatID uint,
	userMessage string,
	language domain.LanguageCode,
	topic domain.Topic,
	onContent ContentFunc,
) (*domain.Message, error) {
	s.logger.Info("starting response stream", "chat_id", chatID, "language", language, "topic", topic)

	exists, err := s.chatRepo.ExistsByID(ctx, chatID)
	if err != nil {
		return nil, NewPersistenceError("chat_lookup", "failed to check chat", err)
	}
	if !exists {
		return nil, NewNotFoundError(chatID)
	}

	if topic == "" {
		if inferred, matched := responder.InferTopic(userMessage); matched {
			topic = inferred
		}
	}
	fullResponse := responder.Resolve(userMessage, language, topic)

	tokens := strings.Fields(fullResponse)
	var prefix strings.Builder
	for i, token := range tokens {
		if i > 0 {
			prefix.WriteString(" ")
			if err := s.pace(ctx); err != nil {
				return nil, NewStreamingError("pacing", "stream interrupted", err)
			}
		}
		prefix.WriteString(token)

		isComplete := i == len(tokens)-1
		if err := onContent(prefix.String(), isComplete); err != nil {
			s.logger.Error("content emission failed", "chat_id", chatID, "error", err)
			return nil, NewStreamingError("emit", "failed to deliver content", err)
		}
	}

	metadata := map[string]string{"language": string(language)}
	if topic != "" {
		metadata["topic"] = string(topic)
	}
	saved, err := s.messageRepo.Create(ctx, &domain.Message{
		ChatID:   chatID,
		Role:     domain.RoleAssistant,
		Content:  fullResponse,
		Metadata: metadata,
	})
	if err != nil {
		s.logger.Error("failed to save assistant message", "chat_id", chatID, "error", err)
		return nil, NewPersistenceError("save_message", "failed to save assistant message", err)
	}
	if err := s.chatRepo.SetUpdatedAt(ctx, chatID, saved.CreatedAt); err != nil {
		s.logger.Warn("failed to bump chat timestamp", "chat_id", chatID, "error", err)
	}

	s.logger.Info("response stream completed", "chat_id", chatID, "tokens", len(tokens), "message_id", saved.ID)
	return saved, nil
}

// pace sleeps a uniform random delay between token emissions, bailing
// out early when the request context is cancelled.
func (s *StreamingService) pace(ctx context.Context) error {
	delay := s.config.MinTokenDelay
	if spread := s.config.MaxTokenDelay - s.config.MinTokenDelay; spread > 0 {
		delay += time.Duration(rand.Int64N(int64(spread) + 1))
	}
	if delay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
