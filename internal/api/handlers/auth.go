package handlers

import (
	"errors"
	"net/http"

	"chat-server/internal/models"
	"chat-server/internal/services"
	"chat-server/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Signup godoc
// @Summary Register a new user
// @Description Create an account with email, password and display name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "User registration data"
// @Success 201 {object} models.UserResponse "User created successfully"
// @Failure 400 {object} response.ErrorBody "Invalid input data"
// @Failure 409 {object} response.ErrorBody "Email already taken"
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "incorrect inputs", err.Error())
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			response.Error(c, http.StatusConflict, "user already exists with this username", "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Signin godoc
// @Summary User login
// @Description Authenticate with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SigninRequest true "User credentials"
// @Success 200 {object} models.SigninResponse "Token and user data"
// @Failure 400 {object} response.ErrorBody "Invalid input data"
// @Failure 401 {object} response.ErrorBody "Invalid credentials"
// @Router /signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "incorrect inputs", err.Error())
		return
	}

	res, err := h.userService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid email or password", "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	c.JSON(http.StatusOK, res)
}
