// File: internal/domain/message.go
package domain

import "time"

// Message roles. Messages are immutable once created.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single message within a chat.
type Message struct {
	ID        uint              `json:"id" gorm:"primarykey"`
	ChatID    uint              `json:"chatId" gorm:"not null;index"`
	Role      string            `json:"role" gorm:"not null"` // "user" or "assistant"
	Content   string            `json:"content" gorm:"not null"`
	Metadata  map[string]string `json:"metadata,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ValidRole reports whether role is one of the accepted message roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant
}
