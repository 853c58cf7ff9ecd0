// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/tpolitam-arch/Drone-AI-Studio/internal/config"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/handlers"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/middleware"
	chatrepo "github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/chat"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/repository/message"
	"github.com/tpolitam-arch/Drone-AI-Studio/internal/services"
	chatsvc "github.com/tpolitam-arch/Drone-AI-Studio/internal/services/chat"
)

// corsOptions builds the CORS policy: a restricted origin list when
// ALLOWED_ORIGINS is configured, permissive otherwise (development).
func corsOptions(allowedOrigins []string) cors.Options {
	origins := []string{"*"}
	if len(allowedOrigins) > 0 {
		origins = allowedOrigins
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.Chat{}, &domain.Message{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	chatRepo := chatrepo.NewChatRepository(db)
	messageRepo := message.NewMessageRepository(db)

	// --- Services ---
	logger := services.NewProductionLogger("drone-ai-studio")
	chatService := services.NewChatService(chatRepo, messageRepo, logger)

	streamConfig := chatsvc.DefaultConfig()
	streamConfig.MinTokenDelay = cfg.StreamMinDelay
	streamConfig.MaxTokenDelay = cfg.StreamMaxDelay
	streamConfig.StreamTimeout = cfg.StreamTimeout

	streamingService, err := chatsvc.NewStreamingService(streamConfig, chatRepo, messageRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Streaming Service: %v", err)
	}

	// --- Handlers ---
	chatHandler := handlers.NewChatHandler(chatService, streamingService)

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(cors.Handler(corsOptions(cfg.AllowedOrigins)))
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK); _, _ = w.Write([]byte("OK")) }).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/chats", chatHandler.GetChats).Methods("GET")
	api.HandleFunc("/chats", chatHandler.CreateChat).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}/messages", chatHandler.GetChatMessages).Methods("GET")
	api.HandleFunc("/chats/{id:[0-9]+}/messages", chatHandler.CreateMessage).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}/respond", chatHandler.Respond).Methods("POST")
	api.HandleFunc("/chats/{id:[0-9]+}/respond-legacy", chatHandler.RespondLegacy).Methods("POST")

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	// --- Startup Logging ---
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("==================================================")
	log.Printf("Drone AI Studio - Multilingual Drone Assistant")
	log.Printf("==================================================")
	log.Printf("Server starting on port %s", port)
	log.Printf("Local access: http://localhost%s", port)
	log.Printf("API base: http://localhost%s/api", port)
	log.Printf("Server ready to accept connections!")
	log.Printf("==================================================")

	// --- Start Server in Goroutine ---
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
