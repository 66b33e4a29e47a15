package handlers

import (
	"net/http"
	"time"

	userRepo "quicklegal/database/repository/user"
	"quicklegal/events"
	"quicklegal/models"
	"quicklegal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserHandler covers the minimal account surface the booking flows and
// event subscribers rely on. Credentials and sessions are handled by a
// separate auth service.
type UserHandler struct {
	Repo   userRepo.UserRepository
	Bus    *events.Bus
	Logger *zap.Logger
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(repo userRepo.UserRepository, bus *events.Bus, logger *zap.Logger) *UserHandler {
	return &UserHandler{Repo: repo, Bus: bus, Logger: logger}
}

// RegisterUser handles POST /api/users.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var input struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = "user"
	}
	now := time.Now()
	user := &models.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Repo.Create(c.Request.Context(), user); err != nil {
		h.Logger.Error("user registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to register user", "")
		return
	}

	h.Bus.Emit(events.EventUserCreated, events.UserCreatedPayload{UserID: user.ID, Email: user.Email})

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// RecordLogin handles POST /api/users/:id/logins. The auth service calls it
// after a successful sign-in to feed the user.logged_in fanout.
func (h *UserHandler) RecordLogin(c *gin.Context) {
	id := c.Param("id")
	user, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("user lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user", "")
		return
	}
	if user == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}

	h.Bus.Emit(events.EventUserLoggedIn, events.UserLoggedInPayload{UserID: user.ID})

	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}
