// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

// MessageRepository is the persistence contract for messages. Messages
// are append-only: there is no update or delete operation.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)

	// FindByChatID returns a chat's messages oldest first. A chat with no
	// messages yields an empty slice, not an error.
	FindByChatID(ctx context.Context, chatID uint) ([]domain.Message, error)
}
