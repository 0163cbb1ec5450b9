package comment

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

type CommentService interface {
	Create(ctx context.Context, postID, message, sender string) (*models.Comment, error)
	List(ctx context.Context, postID string) ([]models.Comment, error)
	ByID(ctx context.Context, id string) (*models.Comment, error)
	Update(ctx context.Context, id, caller, postID, message string) (*models.Comment, error)
	Delete(ctx context.Context, id, caller string) error
}

type Handler struct {
	log     logger.Log
	service CommentService
}

func NewHandler(l logger.Log, s CommentService) *Handler {
	return &Handler{log: l, service: s}
}

type commentRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) AddComment(c *gin.Context) {
	var input commentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	comment, err := h.service.Create(c.Request.Context(), input.PostID, input.Message, caller)
	if err != nil {
		if errors.Is(err, app_errors.ErrPostNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "post not found for given postId"})
			return
		}
		h.log.ErrorErr("error creating comment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) GetAllComments(c *gin.Context) {
	comments, err := h.service.List(c.Request.Context(), c.Query("post"))
	if err != nil {
		h.respondError(c, err, "error listing comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *Handler) GetCommentByID(c *gin.Context) {
	comment, err := h.service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "error retrieving comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// GetCommentsByPost serves /comments/post/:postId.
func (h *Handler) GetCommentsByPost(c *gin.Context) {
	comments, err := h.service.List(c.Request.Context(), c.Param("postId"))
	if err != nil {
		h.respondError(c, err, "error listing post comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *Handler) UpdateComment(c *gin.Context) {
	var input commentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	comment, err := h.service.Update(c.Request.Context(), c.Param("id"), caller, input.PostID, input.Message)
	if err != nil {
		if errors.Is(err, app_errors.ErrPostNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "post not found for given postId"})
			return
		}
		h.respondError(c, err, "error updating comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), caller); err != nil {
		h.respondError(c, err, "error deleting comment")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, app_errors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.log.ErrorErr(logMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
