// File: internal/services/chat_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
	chatrepo "github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/chat"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/message"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newTestService(t *testing.T) (*ChatService, chatrepo.ChatRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Chat{}, &domain.Message{}))

	cr := chatrepo.NewChatRepository(db)
	mr := message.NewMessageRepository(db)
	return NewChatService(cr, mr, nopLogger{}), cr
}

func TestCreateChatFallsBackOnBadLanguage(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	chat, err := service.CreateChat(ctx, "New Chat", "klingon")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLanguage, chat.Language)

	chat, err = service.CreateChat(ctx, "Hindi Chat", domain.LangHindi)
	require.NoError(t, err)
	assert.Equal(t, domain.LangHindi, chat.Language)
}

func TestCreateMessageRequiresChat(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateMessage(context.Background(), 7, domain.RoleUser, "hello", nil)
	assert.ErrorIs(t, err, chatrepo.ErrChatNotFound)
}

func TestCreateMessageBumpsChatTimestamp(t *testing.T) {
	service, cr := newTestService(t)
	ctx := context.Background()

	chat, err := service.CreateChat(ctx, "New Chat", domain.LangEnglish)
	require.NoError(t, err)

	msg, err := service.CreateMessage(ctx, chat.ID, domain.RoleUser, "How do I assemble a drone?", nil)
	require.NoError(t, err)

	updated, err := cr.FindByID(ctx, chat.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, msg.CreatedAt, updated.UpdatedAt, time.Millisecond,
		"chat updatedAt must track the newest message")
}

func TestGetChatMessagesRequiresChat(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetChatMessages(context.Background(), 42)
	assert.ErrorIs(t, err, chatrepo.ErrChatNotFound)
}

func TestGetChatMessagesEmptyChat(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	chat, err := service.CreateChat(ctx, "empty", domain.LangEnglish)
	require.NoError(t, err)

	messages, err := service.GetChatMessages(ctx, chat.ID)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestRespondPersistsAssistantMessage(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	chat, err := service.CreateChat(ctx, "New Chat", domain.LangEnglish)
	require.NoError(t, err)

	msg, err := service.Respond(ctx, chat.ID, "How do I assemble a drone?", domain.LangEnglish, "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAssistant, msg.Role)
	assert.Contains(t, msg.Content, "To assemble a drone")
	assert.Equal(t, "assembly", msg.Metadata["topic"])
	assert.Equal(t, "en", msg.Metadata["language"])

	messages, err := service.GetChatMessages(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, msg.Content, messages[0].Content)
}

func TestRespondUnknownChat(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Respond(context.Background(), 99, "hello", domain.LangEnglish, "")
	assert.ErrorIs(t, err, chatrepo.ErrChatNotFound)
}

func TestRespondExplicitTopicSkipsInference(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	chat, err := service.CreateChat(ctx, "New Chat", domain.LangEnglish)
	require.NoError(t, err)

	// Explicit topic wins even when the message mentions another one.
	msg, err := service.Respond(ctx, chat.ID, "talk about assembly", domain.LangEnglish, domain.TopicMaintenance)
	require.NoError(t, err)
	assert.Equal(t, "maintenance", msg.Metadata["topic"])
}
