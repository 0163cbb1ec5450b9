package post

import (
	"context"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post models.Post) (*models.Post, error)
	Posts(ctx context.Context, sender string) ([]models.Post, error)
	PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	UpdatePost(ctx context.Context, id primitive.ObjectID, title, content string) (*models.Post, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
}

type Service struct {
	log  logger.Log
	repo PostRepo
}

func NewService(l logger.Log, repo PostRepo) *Service {
	return &Service{log: l, repo: repo}
}

// Create stamps the authenticated caller as the post's sender.
func (s *Service) Create(ctx context.Context, title, content, sender string) (*models.Post, error) {
	post := models.Post{
		Title:   title,
		Content: content,
		Sender:  sender,
	}
	return s.repo.CreatePost(ctx, post)
}

func (s *Service) List(ctx context.Context, sender string) ([]models.Post, error) {
	return s.repo.Posts(ctx, sender)
}

func (s *Service) ByID(ctx context.Context, id string) (*models.Post, error) {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}
	return s.repo.PostByID(ctx, postID)
}

// Update rejects callers other than the post's sender.
func (s *Service) Update(ctx context.Context, id, caller, title, content string) (*models.Post, error) {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}

	post, err := s.repo.PostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Sender != caller {
		return nil, app_errors.ErrNotOwner
	}

	return s.repo.UpdatePost(ctx, postID, title, content)
}

// Delete rejects callers other than the post's sender and returns the
// deleted post.
func (s *Service) Delete(ctx context.Context, id, caller string) (*models.Post, error) {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}

	post, err := s.repo.PostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Sender != caller {
		return nil, app_errors.ErrNotOwner
	}

	return s.repo.DeletePost(ctx, postID)
}
