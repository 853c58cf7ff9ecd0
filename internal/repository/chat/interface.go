// File: internal/repository/chat/interface.go
package chat

import (
	"context"
	"time"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

// ChatRepository is the persistence contract for chats. Chats are never
// deleted; identifiers come from the database sequence and are never reused.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	FindByID(ctx context.Context, chatID uint) (*domain.Chat, error)

	// FindAll returns every chat ordered by most recent activity first.
	FindAll(ctx context.Context) ([]domain.Chat, error)

	ExistsByID(ctx context.Context, chatID uint) (bool, error)

	// SetUpdatedAt pins the chat's updated_at to the given instant. Used
	// after a message append so the chat timestamp equals the message's
	// created_at exactly.
	SetUpdatedAt(ctx context.Context, chatID uint, t time.Time) error
}
