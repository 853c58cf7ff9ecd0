// File: internal/client/consumer.go
package client

import (
	"context"
	"errors"
	"sync"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

// State is the streaming-session state observed by the UI.
type State int

const (
	StateIdle State = iota
	StateRequesting
	StateStreaming
	StateCompleting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateStreaming:
		return "streaming"
	case StateCompleting:
		return "completing"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrStreamActive is a caller error: at most one streaming session may
// be active at a time, so the submit control must stay disabled while
// a response is in flight.
var ErrStreamActive = errors.New("a streaming session is already active")

// StreamConsumer drives one streaming session at a time. Each content
// event replaces the partial buffer wholesale (the transport sends the
// full accumulated text, not deltas). On completion the buffer is
// cleared and the persisted message list is re-fetched so the new
// assistant message appears there.
type StreamConsumer struct {
	client    *Client
	onPartial func(content string)

	mu      sync.Mutex
	state   State
	partial string
}

// NewStreamConsumer wraps a client. onPartial observes every change to
// the current partial text, including the clear on terminal events; it
// may be nil.
func NewStreamConsumer(c *Client, onPartial func(content string)) *StreamConsumer {
	return &StreamConsumer{
		client:    c,
		onPartial: onPartial,
		state:     StateIdle,
	}
}

// State returns the current session state.
func (s *StreamConsumer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Partial returns the current partial response text.
func (s *StreamConsumer) Partial() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.partial
}

// IsResponding reports whether a session is in flight.
func (s *StreamConsumer) IsResponding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != StateIdle
}

// Respond runs one full streaming session: request, consume content
// events, then reconcile with the persisted store. It returns the
// persisted assistant message and the refreshed message list. On any
// failure the partial buffer is cleared and the session ends Failed
// before settling back to Idle.
func (s *StreamConsumer) Respond(
	ctx context.Context,
	chatID uint,
	userMessage string,
	language domain.LanguageCode,
	topic domain.Topic,
) (*domain.Message, []domain.Message, error) {
	if err := s.begin(); err != nil {
		return nil, nil, err
	}

	message, err := s.client.RespondStream(ctx, chatID, userMessage, language, topic,
		func(content string, isComplete bool) {
			s.setPartial(content)
		})
	if err != nil {
		s.finish(StateFailed)
		s.settle()
		return nil, nil, err
	}

	s.finish(StateCompleting)
	messages, err := s.client.ListMessages(ctx, chatID)
	s.settle()
	if err != nil {
		// The response itself completed; surface the message without
		// the refreshed list.
		return message, nil, nil
	}
	return message, messages, nil
}

// begin transitions Idle -> Requesting, clearing any previous partial
// content.
func (s *StreamConsumer) begin() error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrStreamActive
	}
	s.state = StateRequesting
	s.partial = ""
	s.mu.Unlock()

	s.notify("")
	return nil
}

// setPartial replaces (never appends to) the displayed partial content.
func (s *StreamConsumer) setPartial(content string) {
	s.mu.Lock()
	if s.state == StateRequesting {
		s.state = StateStreaming
	}
	s.partial = content
	s.mu.Unlock()

	s.notify(content)
}

// finish records the terminal state and clears the partial buffer.
func (s *StreamConsumer) finish(terminal State) {
	s.mu.Lock()
	s.state = terminal
	s.partial = ""
	s.mu.Unlock()

	s.notify("")
}

// settle returns to Idle; terminal states are transient.
func (s *StreamConsumer) settle() {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}

func (s *StreamConsumer) notify(content string) {
	if s.onPartial != nil {
		s.onPartial(content)
	}
}
