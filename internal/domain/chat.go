// File: internal/domain/chat.go
package domain

import "time"

// Chat represents a single conversation thread.
type Chat struct {
	ID        uint         `json:"id" gorm:"primarykey"`
	Title     string       `json:"title" gorm:"not null"`
	Language  LanguageCode `json:"language" gorm:"not null;default:en"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
