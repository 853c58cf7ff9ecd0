// File: internal/client/stream.go
package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

// ErrResponseFailed is returned when the server reports an in-band
// error event instead of completing the stream.
var ErrResponseFailed = errors.New("response stream failed")

// streamEvent is the wire shape of one SSE payload. Message is raw
// because the complete event carries an object and the error event a
// string under the same key.
type streamEvent struct {
	Type       string          `json:"type"`
	Content    string          `json:"content"`
	IsComplete bool            `json:"isComplete"`
	Message    json.RawMessage `json:"message"`
}

// RespondStream opens the streaming respond endpoint and consumes its
// SSE events. onContent is called for every content event with the full
// accumulated prefix so far; the caller must replace, never append.
// The persisted assistant message is returned after the complete event.
// Malformed event payloads are skipped silently.
func (c *Client) RespondStream(
	ctx context.Context,
	chatID uint,
	userMessage string,
	language domain.LanguageCode,
	topic domain.Topic,
	onContent func(content string, isComplete bool),
) (*domain.Message, error) {
	body := map[string]interface{}{
		"userMessage": userMessage,
		"language":    language,
	}
	if topic != "" {
		body["topic"] = topic
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	path := fmt.Sprintf("/api/chats/%d/respond", chatID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.streamer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	return c.processStream(ctx, resp.Body, onContent)
}

// processStream reads SSE events until a terminal event or EOF. EOF
// before a terminal event is a transport failure.
func (c *Client) processStream(ctx context.Context, body io.Reader, onContent func(string, bool)) (*domain.Message, error) {
	reader := NewSSEReader(body)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		data, err := reader.ReadEvent()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: connection closed before terminal event", ErrResponseFailed)
			}
			return nil, err
		}

		var event streamEvent
		if err := json.Unmarshal(data, &event); err != nil {
			// Skip malformed chunks
			continue
		}

		switch event.Type {
		case "content":
			onContent(event.Content, event.IsComplete)
		case "complete":
			var message domain.Message
			if err := json.Unmarshal(event.Message, &message); err != nil {
				return nil, fmt.Errorf("%w: malformed complete event", ErrResponseFailed)
			}
			return &message, nil
		case "error":
			var reason string
			_ = json.Unmarshal(event.Message, &reason)
			if reason == "" {
				reason = "unknown error"
			}
			return nil, fmt.Errorf("%w: %s", ErrResponseFailed, reason)
		}
	}
}

// SSEReader parses Server-Sent Events from a stream.
type SSEReader struct {
	reader *bufio.Reader
}

// NewSSEReader creates a new SSE reader from an io.Reader.
func NewSSEReader(r io.Reader) *SSEReader {
	return &SSEReader{
		reader: bufio.NewReader(r),
	}
}

// ReadEvent reads the next SSE event's data payload. Events are framed
// as "data: <payload>" lines terminated by a blank line. Returns io.EOF
// when the stream ends.
func (s *SSEReader) ReadEvent() ([]byte, error) {
	var dataLines [][]byte

	for {
		line, err := s.reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				// If we have data, return it before EOF
				if len(dataLines) > 0 {
					return bytes.Join(dataLines, []byte("\n")), nil
				}
				return nil, io.EOF
			}
			return nil, err
		}

		// Trim trailing newline and carriage return
		line = bytes.TrimRight(line, "\r\n")

		// Empty line signals end of event
		if len(line) == 0 {
			if len(dataLines) > 0 {
				return bytes.Join(dataLines, []byte("\n")), nil
			}
			continue
		}

		if bytes.HasPrefix(line, []byte("data:")) {
			data := bytes.TrimPrefix(line[5:], []byte(" "))
			dataLines = append(dataLines, data)
		}
		// Ignore other fields (event:, id:, retry:, comments starting with :)
	}
}
