package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chat-server/internal/api/middleware"
	"chat-server/internal/auth"
	"chat-server/internal/models"
	"chat-server/internal/repositories/postgres"
	"chat-server/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

type memUserStore struct {
	byEmail map[string]*models.User
	nextID  uint
}

func (s *memUserStore) Create(user *models.User) error {
	if _, ok := s.byEmail[user.Email]; ok {
		return postgres.ErrDuplicateEmail
	}
	s.nextID++
	user.ID = s.nextID
	s.byEmail[user.Email] = user
	return nil
}

func (s *memUserStore) FindByEmail(email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	return user, nil
}

func (s *memUserStore) FindByID(id uint) (*models.User, error) {
	for _, user := range s.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

type memRoomStore struct {
	bySlug map[string]*models.Room
	nextID uint
}

func (s *memRoomStore) Create(room *models.Room) error {
	if _, ok := s.bySlug[room.Slug]; ok {
		return postgres.ErrDuplicateSlug
	}
	s.nextID++
	room.ID = s.nextID
	s.bySlug[room.Slug] = room
	return nil
}

func (s *memRoomStore) FindBySlug(slug string) (*models.Room, error) {
	room, ok := s.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	return room, nil
}

func (s *memRoomStore) FindByID(id uint) (*models.Room, error) {
	for _, room := range s.bySlug {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

func (s *memRoomStore) Exists(id uint) (bool, error) {
	_, err := s.FindByID(id)
	return err == nil, nil
}

type memChatStore struct {
	chats []models.Chat
}

func (s *memChatStore) Create(chat *models.Chat) error {
	chat.ID = uint(len(s.chats) + 1)
	s.chats = append(s.chats, *chat)
	return nil
}

func (s *memChatStore) FindByRoomID(roomID uint) ([]models.Chat, error) {
	var out []models.Chat
	for i := len(s.chats) - 1; i >= 0; i-- {
		if s.chats[i].RoomID == roomID {
			out = append(out, s.chats[i])
		}
	}
	return out, nil
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	userService := services.NewUserService(&memUserStore{byEmail: map[string]*models.User{}}, testSecret, 24*time.Hour)
	roomService := services.NewRoomService(&memRoomStore{bySlug: map[string]*models.Room{}}, &memChatStore{})

	authHandler := NewAuthHandler(userService)
	roomHandler := NewRoomHandler(roomService)
	authMW := middleware.NewAuthMiddleware(auth.NewJWTVerifier(testSecret))

	engine.POST("/signup", authHandler.Signup)
	engine.POST("/signin", authHandler.Signin)
	engine.GET("/room/:slug", roomHandler.GetRoomBySlug)
	engine.GET("/chats/:roomId", roomHandler.GetRoomHistory)

	authd := engine.Group("/")
	authd.Use(authMW.RequireAuth())
	authd.POST("/room", roomHandler.CreateRoom)

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func signupAndSignin(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/signup", "", gin.H{
		"username": "alice@example.com",
		"password": "Sup3rSecret!",
		"name":     "Alice",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, engine, http.MethodPost, "/signin", "", gin.H{
		"username": "alice@example.com",
		"password": "Sup3rSecret!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res models.SigninResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestSignupThenSignin(t *testing.T) {
	engine := newTestEngine()
	token := signupAndSignin(t, engine)
	assert.NotEmpty(t, token)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	engine := newTestEngine()
	body := gin.H{"username": "alice@example.com", "password": "Sup3rSecret!", "name": "Alice"}

	rec := doJSON(t, engine, http.MethodPost, "/signup", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/signup", "", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSigninWrongPasswordUnauthorized(t *testing.T) {
	engine := newTestEngine()
	signupAndSignin(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/signin", "", gin.H{
		"username": "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateRoomRequiresAuth(t *testing.T) {
	engine := newTestEngine()

	rec := doJSON(t, engine, http.MethodPost, "/room", "", gin.H{"name": "General"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAndLookupRoom(t *testing.T) {
	engine := newTestEngine()
	token := signupAndSignin(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/room", token, gin.H{"name": "My Cool Room"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var room models.RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))
	assert.Equal(t, "my-cool-room", room.Slug)

	rec = doJSON(t, engine, http.MethodGet, "/room/my-cool-room", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoomHistoryInvalidID(t *testing.T) {
	engine := newTestEngine()

	rec := doJSON(t, engine, http.MethodGet, "/chats/not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
