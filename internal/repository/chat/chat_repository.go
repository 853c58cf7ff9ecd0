// File: internal/repository/chat/chat_repository.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

var ErrChatNotFound = errors.New("chat not found")

type gormChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

// Create persists a new chat. The database assigns the id; gorm stamps
// created_at and updated_at with the same instant.
func (r *gormChatRepository) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	if err := r.validateChatInput(chat); err != nil {
		log.Printf("[ChatRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(chat).Error; err != nil {
		log.Printf("[ChatRepository] Database error during chat creation: %v", err)
		return nil, errors.New("database error creating chat")
	}

	log.Printf("[ChatRepository] Chat created successfully with ID: %d", chat.ID)
	return chat, nil
}

func (r *gormChatRepository) FindByID(ctx context.Context, chatID uint) (*domain.Chat, error) {
	if chatID == 0 {
		return nil, errors.New("invalid chat ID")
	}

	var chat domain.Chat
	err := r.db.WithContext(ctx).First(&chat, chatID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		log.Printf("[ChatRepository] Database error finding chat ID %d: %v", chatID, err)
		return nil, errors.New("database error fetching chat")
	}
	return &chat, nil
}

// FindAll returns all chats, most recently updated first. ID descending
// breaks ties so freshly created chats sort ahead of older same-instant ones.
func (r *gormChatRepository) FindAll(ctx context.Context) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := r.db.WithContext(ctx).
		Order("updated_at DESC, id DESC").
		Find(&chats).Error
	if err != nil {
		log.Printf("[ChatRepository] Database error fetching chats: %v", err)
		return nil, errors.New("database error fetching chats")
	}
	return chats, nil
}

func (r *gormChatRepository) ExistsByID(ctx context.Context, chatID uint) (bool, error) {
	if chatID == 0 {
		return false, errors.New("invalid chat ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Chat{}).Where("id = ?", chatID).Count(&count).Error
	if err != nil {
		log.Printf("[ChatRepository] Database error checking chat existence for ID %d: %v", chatID, err)
		return false, errors.New("database error checking chat existence")
	}
	return count > 0, nil
}

// SetUpdatedAt writes updated_at directly with UpdateColumn so gorm does
// not re-stamp it with its own timestamp.
func (r *gormChatRepository) SetUpdatedAt(ctx context.Context, chatID uint, t time.Time) error {
	if chatID == 0 {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Chat{}).
		Where("id = ?", chatID).
		UpdateColumn("updated_at", t)

	if result.Error != nil {
		log.Printf("[ChatRepository] Database error updating timestamp for chat ID %d: %v", chatID, result.Error)
		return errors.New("database error updating chat timestamp")
	}
	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}
	return nil
}

func (r *gormChatRepository) validateChatInput(chat *domain.Chat) error {
	if chat == nil {
		return errors.New("chat cannot be nil")
	}
	if strings.TrimSpace(chat.Title) == "" {
		return errors.New("chat title is required")
	}
	if !chat.Language.Valid() {
		return fmt.Errorf("unsupported language code: %q", chat.Language)
	}
	return nil
}
