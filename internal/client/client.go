// File: internal/client/client.go

// Package client is the Go consumer of the Drone AI Studio API: plain
// REST operations, the SSE stream reader, and the streaming-session
// state machine used by the terminal UI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
)

// Client talks to the chat server. The streaming client carries no
// overall timeout; stream lifetime is bounded by the request context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	streamer   *http.Client
}

// New creates a client for the given server base URL, e.g.
// "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		streamer:   &http.Client{},
	}
}

// ListChats fetches every chat, most recently active first.
func (c *Client) ListChats(ctx context.Context) ([]domain.Chat, error) {
	var chats []domain.Chat
	if err := c.doJSON(ctx, http.MethodGet, "/api/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// CreateChat starts a new conversation thread on the server.
func (c *Client) CreateChat(ctx context.Context, title string, language domain.LanguageCode) (*domain.Chat, error) {
	body := map[string]interface{}{"title": title, "language": language}
	var chat domain.Chat
	if err := c.doJSON(ctx, http.MethodPost, "/api/chats", body, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// ListMessages fetches a chat's messages, oldest first.
func (c *Client) ListMessages(ctx context.Context, chatID uint) ([]domain.Message, error) {
	var messages []domain.Message
	path := fmt.Sprintf("/api/chats/%d/messages", chatID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateMessage appends a message to a chat.
func (c *Client) CreateMessage(ctx context.Context, chatID uint, role, content string, metadata map[string]string) (*domain.Message, error) {
	body := map[string]interface{}{"content": content, "role": role}
	if metadata != nil {
		body["metadata"] = metadata
	}
	var message domain.Message
	path := fmt.Sprintf("/api/chats/%d/messages", chatID)
	if err := c.doJSON(ctx, http.MethodPost, path, body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// doJSON performs one JSON request/response cycle.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorFromResponse turns a non-200 reply into an error carrying the
// server's message when one was sent.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var apiErr struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
