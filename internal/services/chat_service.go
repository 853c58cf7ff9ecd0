// File: internal/services/chat_service.go
package services

import (
	"context"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
	chatrepo "github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/chat"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/message"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/responder"
)

// ChatService owns chat and message lifecycle: creation, listing, and
// the non-streaming (legacy) respond path.
type ChatService struct {
	chatRepo    chatrepo.ChatRepository
	messageRepo message.MessageRepository
	logger      Logger
}

func NewChatService(chatRepo chatrepo.ChatRepository, messageRepo message.MessageRepository, logger Logger) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// CreateChat starts a new conversation thread. Unsupported language
// codes fall back to the default language rather than failing.
func (s *ChatService) CreateChat(ctx context.Context, title string, language domain.LanguageCode) (*domain.Chat, error) {
	if !language.Valid() {
		s.logger.Warn("unsupported chat language, using default", "language", language)
		language = domain.DefaultLanguage
	}
	return s.chatRepo.Create(ctx, &domain.Chat{Title: title, Language: language})
}

// GetChats returns every chat, most recently active first.
func (s *ChatService) GetChats(ctx context.Context) ([]domain.Chat, error) {
	return s.chatRepo.FindAll(ctx)
}

// GetChat returns one chat, or chatrepo.ErrChatNotFound.
func (s *ChatService) GetChat(ctx context.Context, chatID uint) (*domain.Chat, error) {
	return s.chatRepo.FindByID(ctx, chatID)
}

// GetChatMessages returns a chat's messages oldest first. The chat must
// exist; a chat without messages yields an empty slice.
func (s *ChatService) GetChatMessages(ctx context.Context, chatID uint) ([]domain.Message, error) {
	exists, err := s.chatRepo.ExistsByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, chatrepo.ErrChatNotFound
	}
	return s.messageRepo.FindByChatID(ctx, chatID)
}

// CreateMessage appends a message to an existing chat and pins the
// chat's updated_at to the new message's created_at.
func (s *ChatService) CreateMessage(ctx context.Context, chatID uint, role, content string, metadata map[string]string) (*domain.Message, error) {
	exists, err := s.chatRepo.ExistsByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, chatrepo.ErrChatNotFound
	}

	saved, err := s.messageRepo.Create(ctx, &domain.Message{
		ChatID:   chatID,
		Role:     role,
		Content:  content,
		Metadata: metadata,
	})
	if err != nil {
		return nil, err
	}
	if err := s.chatRepo.SetUpdatedAt(ctx, chatID, saved.CreatedAt); err != nil {
		s.logger.Warn("failed to bump chat timestamp", "chat_id", chatID, "error", err)
	}
	return saved, nil
}

// Respond is the non-streaming transport: it resolves the response,
// persists it as an assistant message, and returns it in one reply.
func (s *ChatService) Respond(ctx context.Context, chatID uint, userMessage string, language domain.LanguageCode, topic domain.Topic) (*domain.Message, error) {
	if topic == "" {
		if inferred, matched := responder.InferTopic(userMessage); matched {
			topic = inferred
		}
	}
	content := responder.Resolve(userMessage, language, topic)

	metadata := map[string]string{"language": string(language)}
	if topic != "" {
		metadata["topic"] = string(topic)
	}
	message, err := s.CreateMessage(ctx, chatID, domain.RoleAssistant, content, metadata)
	if err != nil {
		return nil, err
	}
	s.logger.Info("legacy response persisted", "chat_id", chatID, "message_id", message.ID)
	return message, nil
}
