// File: cmd/client/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/client"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/ui"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "chat server base URL")
	language := flag.String("lang", "en", "response language code (en, hi, te, ta, kn, ml, bn, mr)")
	title := flag.String("title", "New Chat", "title when creating a new chat")
	flag.Parse()

	lang := domain.LanguageCode(*language)
	if !lang.Valid() {
		fmt.Fprintf(os.Stderr, "Unsupported language %q, falling back to %s\n", *language, domain.DefaultLanguage)
		lang = domain.DefaultLanguage
	}

	api := client.New(*serverURL)
	ctx := context.Background()

	// Resume the most recently active chat in the requested language,
	// or start a fresh one.
	chat, err := pickChat(ctx, api, *title, lang)
	if err != nil {
		log.Fatalf("Failed to open a chat: %v", err)
	}

	messages, err := api.ListMessages(ctx, chat.ID)
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}

	model := ui.NewChatModel(api, chat, messages)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}

func pickChat(ctx context.Context, api *client.Client, title string, lang domain.LanguageCode) (*domain.Chat, error) {
	chats, err := api.ListChats(ctx)
	if err != nil {
		return nil, err
	}
	for i := range chats {
		if chats[i].Language == lang {
			return &chats[i], nil
		}
	}
	return api.CreateChat(ctx, title, lang)
}
