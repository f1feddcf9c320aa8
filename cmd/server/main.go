package main

// @title           Chat Server API
// @version         1.0
// @description     Account, room and history endpoints plus the real-time
// @description     WebSocket relay.
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-server/internal/api/routes"
	"chat-server/internal/auth"
	"chat-server/internal/config"
	"chat-server/internal/database"
	"chat-server/internal/repositories/postgres"
	"chat-server/internal/services"
	"chat-server/internal/websocket"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting chat server")

	db, err := database.NewPostgresConnection(cfg.DatabaseURI())
	if err != nil {
		slog.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}

	// Persistence surface of the WebSocket relay
	roomRepo := postgres.NewRoomRepository(db)
	chatRepo := postgres.NewChatRepository(db)
	chatService := services.NewChatService(roomRepo, chatRepo)

	hub := websocket.NewHub(chatService, slog.Default())
	go hub.Run()

	verifier := auth.NewJWTVerifier(cfg.JWT.Secret)

	router := routes.NewRouter(hub, verifier, db, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for an interrupt or a listener failure, then tear down on one path
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case <-quit:
	}

	slog.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := hub.Stop(10 * time.Second); err != nil {
		slog.Error("Hub shutdown incomplete", "error", err)
	}

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
