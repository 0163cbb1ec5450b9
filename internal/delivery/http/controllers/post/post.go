package post

import (
	"context"
	"errors"
	"net/http"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/delivery/http/controllers/middleware"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"github.com/gin-gonic/gin"
)

type PostService interface {
	Create(ctx context.Context, title, content, sender string) (*models.Post, error)
	List(ctx context.Context, sender string) ([]models.Post, error)
	ByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id, caller, title, content string) (*models.Post, error)
	Delete(ctx context.Context, id, caller string) (*models.Post, error)
}

type Handler struct {
	log     logger.Log
	service PostService
}

func NewHandler(l logger.Log, s PostService) *Handler {
	return &Handler{log: l, service: s}
}

type postRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (h *Handler) CreatePost(c *gin.Context) {
	var input postRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	post, err := h.service.Create(c.Request.Context(), input.Title, input.Content, caller)
	if err != nil {
		h.log.ErrorErr("error creating post", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) GetAllPosts(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context(), c.Query("sender"))
	if err != nil {
		h.log.ErrorErr("error listing posts", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetPostByID(c *gin.Context) {
	post, err := h.service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "error retrieving post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var input postRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("id"), caller, input.Title, input.Content)
	if err != nil {
		h.respondError(c, err, "error updating post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	post, err := h.service.Delete(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		h.respondError(c, err, "error deleting post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, app_errors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.log.ErrorErr(logMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
