// File: internal/handlers/chat_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
	chatrepo "github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/chat"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/services"
	chatsvc "github.com/tpolitam-arch/Drone-AI-Studio/internal/services/chat"
)

type ChatHandler struct {
	ChatService      *services.ChatService
	StreamingService *chatsvc.StreamingService
}

func NewChatHandler(cs *services.ChatService, ss *chatsvc.StreamingService) *ChatHandler {
	return &ChatHandler{
		ChatService:      cs,
		StreamingService: ss,
	}
}

type createChatRequest struct {
	Title    string              `json:"title"`
	Language domain.LanguageCode `json:"language"`
}

type createMessageRequest struct {
	Content  string            `json:"content"`
	Role     string            `json:"role"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type respondRequest struct {
	UserMessage string              `json:"userMessage"`
	Language    domain.LanguageCode `json:"language"`
	Topic       domain.Topic        `json:"topic,omitempty"`
}

// GetChats handles the request to retrieve all chats, most recent first.
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.ChatService.GetChats(r.Context())
	if err != nil {
		writeError(w, "Failed to fetch chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

// CreateChat handles the request to start a new conversation thread.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req createChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, "Invalid chat data", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = domain.DefaultLanguage
	}

	chat, err := h.ChatService.CreateChat(r.Context(), req.Title, req.Language)
	if err != nil {
		writeError(w, "Invalid chat data", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

// GetChatMessages handles the request to retrieve all messages for a chat.
func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	messages, err := h.ChatService.GetChatMessages(r.Context(), chatID)
	if err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, "Failed to fetch messages", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// CreateMessage handles the request to append a message to a chat.
func (h *ChatHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" || !domain.ValidRole(req.Role) {
		writeError(w, "Invalid message data", http.StatusBadRequest)
		return
	}

	message, err := h.ChatService.CreateMessage(r.Context(), chatID, req.Role, req.Content, req.Metadata)
	if err != nil {
		writeError(w, "Invalid message data", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

// RespondLegacy resolves and persists a response synchronously,
// returning it in one reply. Used when streaming is disabled.
func (h *ChatHandler) RespondLegacy(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserMessage == "" {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = domain.DefaultLanguage
	}

	message, err := h.ChatService.Respond(r.Context(), chatID, req.UserMessage, req.Language, req.Topic)
	if err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, "Failed to generate response", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

// Respond streams the response over SSE: one content event per word
// token carrying the full accumulated prefix, then exactly one terminal
// event (complete or error), then the connection closes. Failures after
// the headers commit are reported in-band via the error event.
func (h *ChatHandler) Respond(w http.ResponseWriter, r *http.Request) {
	chatID, ok := parseChatID(w, r)
	if !ok {
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserMessage == "" {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = domain.DefaultLanguage
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.StreamingService.Timeout())
	defer cancel()

	message, err := h.StreamingService.StreamResponse(ctx, chatID, req.UserMessage, req.Language, req.Topic,
		func(content string, isComplete bool) error {
			return sendEvent(w, flusher, contentEvent{
				Type:       "content",
				Content:    content,
				IsComplete: isComplete,
			})
		})
	if err != nil {
		log.Printf("[ChatHandler] Streaming failed for chat %d: %v", chatID, err)
		_ = sendEvent(w, flusher, errorEvent{Type: "error", Message: "Failed to generate response"})
		return
	}

	_ = sendEvent(w, flusher, completeEvent{Type: "complete", Message: message})
}

// parseChatID extracts and validates the {id} path variable, writing a
// 400 response on failure.
func parseChatID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	chatID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil || chatID == 0 {
		writeError(w, "Invalid chat ID", http.StatusBadRequest)
		return 0, false
	}
	return uint(chatID), true
}

// contentEvent carries the full accumulated response text so far, not a
// delta. The client replaces, never appends.
type contentEvent struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	IsComplete bool   `json:"isComplete"`
}

type completeEvent struct {
	Type    string          `json:"type"`
	Message *domain.Message `json:"message"`
}

type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// sendEvent writes a single SSE event and flushes it to the client.
func sendEvent(w http.ResponseWriter, flusher http.Flusher, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"message": message})
}
