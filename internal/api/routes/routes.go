package routes

import (
	"log/slog"
	"time"

	"chat-server/internal/api/handlers"
	"chat-server/internal/api/middleware"
	"chat-server/internal/auth"
	"chat-server/internal/repositories/postgres"
	"chat-server/internal/services"
	"chat-server/internal/websocket"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Router struct {
	engine      *gin.Engine
	authHandler *handlers.AuthHandler
	roomHandler *handlers.RoomHandler
	wsHandler   *handlers.WSHandler
	authMW      *middleware.AuthMiddleware
}

func NewRouter(hub *websocket.Hub, verifier auth.TokenVerifier, db *gorm.DB, jwtSecret string, jwtExpire time.Duration) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.LogApi())

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	chatRepo := postgres.NewChatRepository(db)

	// Services
	userService := services.NewUserService(userRepo, jwtSecret, jwtExpire)
	roomService := services.NewRoomService(roomRepo, chatRepo)

	return &Router{
		engine:      engine,
		authHandler: handlers.NewAuthHandler(userService),
		roomHandler: handlers.NewRoomHandler(roomService),
		wsHandler:   handlers.NewWSHandler(websocket.NewGatekeeper(hub, verifier, slog.Default())),
		authMW:      middleware.NewAuthMiddleware(verifier),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	// WebSocket endpoint; admission control happens in the gatekeeper
	api.GET("/ws", r.wsHandler.HandleWebSocket)

	// Public routes
	api.POST("/signup", r.authHandler.Signup)
	api.POST("/signin", r.authHandler.Signin)
	api.GET("/room/:slug", r.roomHandler.GetRoomBySlug)
	api.GET("/chats/:roomId", r.roomHandler.GetRoomHistory)

	// Authenticated routes
	authd := api.Group("/")
	authd.Use(r.authMW.RequireAuth())
	{
		authd.POST("/room", r.roomHandler.CreateRoom)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
