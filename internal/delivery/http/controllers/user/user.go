package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"github.com/gin-gonic/gin"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	ByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id, username, email string) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

type Handler struct {
	log     logger.Log
	service UserService
}

func NewHandler(l logger.Log, s UserService) *Handler {
	return &Handler{log: l, service: s}
}

func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("error listing users", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUserByID(c *gin.Context) {
	user, err := h.service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "error retrieving user")
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var input updateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("id"), input.Username, input.Email)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.respondError(c, err, "error updating user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	user, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "error deleting user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, app_errors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.ErrorErr(logMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
