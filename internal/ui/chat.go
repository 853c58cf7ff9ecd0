// File: internal/ui/chat.go
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/client"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

// replaySpeed is the per-rune reveal delay for persisted messages.
const replaySpeed = 30 * time.Millisecond

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	userLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	botLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

type streamPartialMsg struct {
	content string
}

type streamDoneMsg struct {
	message  *domain.Message
	messages []domain.Message
}

type streamFailedMsg struct {
	err error
}

// ChatModel is the bubbletea model for one chat view: message history,
// the live streaming panel, and the input control.
type ChatModel struct {
	api      *client.Client
	consumer *client.StreamConsumer
	events   chan tea.Msg

	chat     *domain.Chat
	language domain.LanguageCode
	messages []domain.Message

	input  textinput.Model
	live   Typewriter
	replay Typewriter

	// replayID is the persisted message currently animating through the
	// replay typewriter; older messages render fully revealed.
	replayID uint

	notice   string
	quitting bool
}

// NewChatModel builds the chat view for an existing chat and its
// persisted messages.
func NewChatModel(api *client.Client, chat *domain.Chat, messages []domain.Message) *ChatModel {
	input := textinput.New()
	input.Placeholder = "Ask about drone assembly, components, DGCA rules..."
	input.Focus()
	input.CharLimit = 500

	events := make(chan tea.Msg, 64)
	m := &ChatModel{
		api:      api,
		events:   events,
		chat:     chat,
		language: chat.Language,
		messages: messages,
		input:    input,
		live:     NewTypewriter(0),
		replay:   NewTypewriter(replaySpeed),
	}
	m.consumer = client.NewStreamConsumer(api, func(content string) {
		events <- streamPartialMsg{content: content}
	})
	return m
}

func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent())
}

// waitForEvent relays consumer callbacks into the bubbletea loop. It is
// re-armed after every relayed message so there is always exactly one
// listener on the channel.
func (m *ChatModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}

	case streamPartialMsg:
		m.live.SetStreaming(msg.content != "")
		m.live.SetContent(msg.content)
		return m, m.waitForEvent()

	case streamDoneMsg:
		m.notice = ""
		m.live.SetStreaming(false)
		m.live.SetContent("")
		if msg.messages != nil {
			m.messages = msg.messages
		} else if msg.message != nil {
			m.messages = append(m.messages, *msg.message)
		}
		var cmd tea.Cmd
		if msg.message != nil {
			m.replay = NewTypewriter(replaySpeed)
			m.replayID = msg.message.ID
			cmd = m.replay.SetContent(msg.message.Content)
		}
		return m, cmd

	case streamFailedMsg:
		m.notice = "Failed to get AI response"
		m.live.SetStreaming(false)
		m.live.SetContent("")
		return m, nil

	case TypewriterTickMsg:
		return m, m.replay.Update(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the typed message. The control is a no-op while a
// response is in flight: one streaming session per chat view.
func (m *ChatModel) submit() tea.Cmd {
	content := m.input.Value()
	if content == "" || m.consumer.IsResponding() {
		return nil
	}
	m.input.Reset()
	m.notice = ""

	m.messages = append(m.messages, domain.Message{
		ChatID:  m.chat.ID,
		Role:    domain.RoleUser,
		Content: content,
	})

	return m.respond(content)
}

// respond persists the user message, then runs the streaming session.
// Partial updates arrive through the events channel; the terminal
// outcome is returned from this command.
func (m *ChatModel) respond(content string) tea.Cmd {
	api, consumer := m.api, m.consumer
	chatID, language := m.chat.ID, m.language
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := api.CreateMessage(ctx, chatID, domain.RoleUser, content, map[string]string{"language": string(language)}); err != nil {
			return streamFailedMsg{err: err}
		}
		message, messages, err := consumer.Respond(ctx, chatID, content, language, "")
		if err != nil {
			return streamFailedMsg{err: err}
		}
		return streamDoneMsg{message: message, messages: messages}
	}
}

func (m *ChatModel) View() string {
	if m.quitting {
		return ""
	}

	var b []string
	b = append(b, titleStyle.Render(m.chat.Title)+helpStyle.Render("  ("+string(m.language)+")"))
	b = append(b, "")

	for _, msg := range m.messages {
		switch msg.Role {
		case domain.RoleUser:
			b = append(b, userLabelStyle.Render("You: ")+msg.Content)
		case domain.RoleAssistant:
			if msg.ID != 0 && msg.ID == m.replayID {
				b = append(b, botLabelStyle.Render("Drone AI: ")+m.replay.View())
			} else {
				b = append(b, botLabelStyle.Render("Drone AI: ")+RenderContent(msg.Content))
			}
		}
		b = append(b, "")
	}

	if m.consumer.IsResponding() {
		b = append(b, botLabelStyle.Render("Drone AI: ")+m.live.View())
		b = append(b, "")
	}

	if m.notice != "" {
		b = append(b, errorStyle.Render(m.notice))
		b = append(b, "")
	}

	b = append(b, m.input.View())
	b = append(b, helpStyle.Render("enter: send • esc: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}
