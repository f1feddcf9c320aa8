package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"chat-server/internal/api/middleware"
	"chat-server/internal/models"
	"chat-server/internal/services"
	"chat-server/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *services.RoomService
}

func NewRoomHandler(roomService *services.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoom godoc
// @Summary Create a room
// @Description Create a chat room; the name is slugified into the room key
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateRoomRequest true "Room name"
// @Success 201 {object} models.RoomResponse "Room created"
// @Failure 400 {object} response.ErrorBody "Invalid input data"
// @Failure 409 {object} response.ErrorBody "Slug already taken"
// @Router /room [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "incorrect input", err.Error())
		return
	}

	adminID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	room, err := h.roomService.Create(adminID, &req)
	if err != nil {
		if errors.Is(err, services.ErrRoomAlreadyExists) {
			response.Error(c, http.StatusConflict, "room already exists", "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRoomBySlug godoc
// @Summary Look up a room by slug
// @Tags rooms
// @Produce json
// @Param slug path string true "Room slug"
// @Success 200 {object} models.RoomResponse "Room"
// @Failure 404 {object} response.ErrorBody "Room not found"
// @Router /room/{slug} [get]
func (h *RoomHandler) GetRoomBySlug(c *gin.Context) {
	room, err := h.roomService.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "room not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": room})
}

// GetRoomHistory godoc
// @Summary Chat history of a room
// @Description Latest messages of the room, newest first
// @Tags rooms
// @Produce json
// @Param roomId path int true "Room ID"
// @Success 200 {object} models.ChatHistoryResponse "Messages"
// @Failure 400 {object} response.ErrorBody "Invalid room id"
// @Router /chats/{roomId} [get]
func (h *RoomHandler) GetRoomHistory(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid room ID", "")
		return
	}

	messages, err := h.roomService.History(uint(roomID))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	c.JSON(http.StatusOK, models.ChatHistoryResponse{Messages: messages})
}
