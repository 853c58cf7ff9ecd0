// File: internal/repository/chat/chat_repository_test.go
package chat

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Chat{}, &domain.Message{}))
	return db
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Chat{Title: "New Chat", Language: domain.LangEnglish})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &domain.Chat{Title: "Another", Language: domain.LangHindi})
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, first.UpdatedAt.Before(first.CreatedAt))
}

func TestCreateValidatesInput(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Chat{Title: "", Language: domain.LangEnglish})
	assert.Error(t, err)

	_, err = repo.Create(ctx, &domain.Chat{Title: "ok", Language: "nope"})
	assert.Error(t, err)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestFindAllOrdersByRecentActivity(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	older, err := repo.Create(ctx, &domain.Chat{Title: "older", Language: domain.LangEnglish})
	require.NoError(t, err)
	newer, err := repo.Create(ctx, &domain.Chat{Title: "newer", Language: domain.LangEnglish})
	require.NoError(t, err)

	// Touching the older chat moves it to the front.
	require.NoError(t, repo.SetUpdatedAt(ctx, older.ID, time.Now().Add(time.Hour)))

	chats, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, older.ID, chats[0].ID)
	assert.Equal(t, newer.ID, chats[1].ID)
}

func TestSetUpdatedAtPinsExactInstant(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	chat, err := repo.Create(ctx, &domain.Chat{Title: "pin", Language: domain.LangEnglish})
	require.NoError(t, err)

	pinned := time.Now().Add(10 * time.Minute)
	require.NoError(t, repo.SetUpdatedAt(ctx, chat.ID, pinned))

	got, err := repo.FindByID(ctx, chat.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, pinned, got.UpdatedAt, time.Millisecond)
}

func TestSetUpdatedAtUnknownChat(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	err := repo.SetUpdatedAt(context.Background(), 99, time.Now())
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestExistsByID(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	chat, err := repo.Create(ctx, &domain.Chat{Title: "exists", Language: domain.LangEnglish})
	require.NoError(t, err)

	exists, err := repo.ExistsByID(ctx, chat.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, chat.ID+100)
	require.NoError(t, err)
	assert.False(t, exists)
}
