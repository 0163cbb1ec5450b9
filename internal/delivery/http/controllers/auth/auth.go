package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

type Handler struct {
	log     logger.Log
	service AuthService
}

func NewHandler(l logger.Log, s AuthService) *Handler {
	return &Handler{
		log:     l,
		service: s,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("error handling register", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.service.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, app_errors.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("error handling login", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *Handler) Logout(c *gin.Context) {
	var input refreshTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": app_errors.ErrRefreshTokenRequired.Error()})
		return
	}

	if err := h.service.Logout(c.Request.Context(), input.RefreshToken); err != nil {
		if errors.Is(err, app_errors.ErrRefreshTokenRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("error handling logout", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) Refresh(c *gin.Context) {
	var input refreshTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": app_errors.ErrRefreshTokenRequired.Error()})
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, app_errors.ErrInvalidRefreshToken) || errors.Is(err, app_errors.ErrRefreshTokenRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("error handling refresh", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, pair)
}
