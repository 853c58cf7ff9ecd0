// File: internal/services/chat/streaming_test.go
package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
	chatrepo "github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/chat"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/message"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/responder"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// testConfig paces with zero delay so streams finish instantly.
func testConfig() *Config {
	return &Config{MinTokenDelay: 0, MaxTokenDelay: 0, StreamTimeout: 10 * time.Second}
}

type fixture struct {
	service     *StreamingService
	chatRepo    chatrepo.ChatRepository
	messageRepo message.MessageRepository
	chat        *domain.Chat
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Chat{}, &domain.Message{}))

	cr := chatrepo.NewChatRepository(db)
	mr := message.NewMessageRepository(db)
	service, err := NewStreamingService(testConfig(), cr, mr, nopLogger{})
	require.NoError(t, err)

	chat, err := cr.Create(context.Background(), &domain.Chat{Title: "New Chat", Language: domain.LangEnglish})
	require.NoError(t, err)

	return &fixture{service: service, chatRepo: cr, messageRepo: mr, chat: chat}
}

type emission struct {
	content    string
	isComplete bool
}

func TestStreamResponseEmitsGrowingPrefixes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var emissions []emission
	saved, err := f.service.StreamResponse(ctx, f.chat.ID, "How do I assemble a drone?", domain.LangEnglish, "",
		func(content string, isComplete bool) error {
			emissions = append(emissions, emission{content, isComplete})
			return nil
		})
	require.NoError(t, err)

	full := responder.Resolve("", domain.LangEnglish, domain.TopicAssembly)
	tokens := strings.Fields(full)
	require.Len(t, emissions, len(tokens), "one content emission per word token")

	for i := 1; i < len(emissions); i++ {
		assert.True(t, strings.HasPrefix(emissions[i].content, emissions[i-1].content),
			"emission %d must extend emission %d", i, i-1)
		assert.Greater(t, len(emissions[i].content), len(emissions[i-1].content))
	}
	for i, e := range emissions {
		assert.Equal(t, i == len(emissions)-1, e.isComplete, "only the last emission is complete")
	}
	assert.Equal(t, strings.Join(tokens, " "), emissions[len(emissions)-1].content)
	assert.Equal(t, full, saved.Content)
}

func TestStreamResponsePersistsAssistantMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.service.StreamResponse(ctx, f.chat.ID, "How do I assemble a drone?", domain.LangEnglish, "",
		func(string, bool) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAssistant, saved.Role)
	assert.Equal(t, f.chat.ID, saved.ChatID)
	assert.Equal(t, "en", saved.Metadata["language"])
	assert.Equal(t, "assembly", saved.Metadata["topic"])

	messages, err := f.messageRepo.FindByChatID(ctx, f.chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, saved.Content, messages[0].Content)

	chat, err := f.chatRepo.FindByID(ctx, f.chat.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, saved.CreatedAt, chat.UpdatedAt, time.Millisecond,
		"chat updatedAt must equal the appended message's createdAt")
}

func TestStreamResponseUnknownChat(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.StreamResponse(context.Background(), f.chat.ID+100, "hi", domain.LangEnglish, "",
		func(string, bool) error { return nil })
	require.Error(t, err)

	var chatErr *ChatError
	require.ErrorAs(t, err, &chatErr)
	assert.Equal(t, ErrTypeNotFound, chatErr.Type)
}

func TestStreamResponseStopsOnEmitFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	calls := 0
	_, err := f.service.StreamResponse(ctx, f.chat.ID, "assembly please", domain.LangEnglish, "",
		func(string, bool) error {
			calls++
			if calls == 3 {
				return context.Canceled
			}
			return nil
		})
	require.Error(t, err)
	assert.Equal(t, 3, calls, "no emissions after a delivery failure")

	var chatErr *ChatError
	require.ErrorAs(t, err, &chatErr)
	assert.Equal(t, ErrTypeStreaming, chatErr.Type)

	// Nothing persisted on failure.
	messages, err := f.messageRepo.FindByChatID(ctx, f.chat.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestStreamResponseHonorsCancellation(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Chat{}, &domain.Message{}))
	cr := chatrepo.NewChatRepository(db)
	mr := message.NewMessageRepository(db)

	// Slow pacing so cancellation lands between emissions.
	cfg := &Config{MinTokenDelay: 50 * time.Millisecond, MaxTokenDelay: 50 * time.Millisecond, StreamTimeout: 10 * time.Second}
	service, err := NewStreamingService(cfg, cr, mr, nopLogger{})
	require.NoError(t, err)

	chat, err := cr.Create(context.Background(), &domain.Chat{Title: "cancel", Language: domain.LangEnglish})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	_, err = service.StreamResponse(ctx, chat.ID, "assembly", domain.LangEnglish, "",
		func(content string, isComplete bool) error {
			cancel()
			return nil
		})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := &Config{MinTokenDelay: 100 * time.Millisecond, MaxTokenDelay: 50 * time.Millisecond, StreamTimeout: time.Second}
	assert.Error(t, bad.Validate())

	bad = &Config{StreamTimeout: 0}
	assert.Error(t, bad.Validate())

	bad = &Config{MinTokenDelay: -1, MaxTokenDelay: 0, StreamTimeout: time.Second}
	assert.Error(t, bad.Validate())
}
