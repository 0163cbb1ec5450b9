package comment

import (
	"context"
	"errors"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)
	Comments(ctx context.Context, postID *primitive.ObjectID) ([]models.Comment, error)
	CommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	UpdateComment(ctx context.Context, id primitive.ObjectID, postID primitive.ObjectID, message string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
}

type PostRepo interface {
	PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
}

type Service struct {
	log      logger.Log
	repo     CommentRepo
	postRepo PostRepo
}

func NewService(l logger.Log, repo CommentRepo, postRepo PostRepo) *Service {
	return &Service{log: l, repo: repo, postRepo: postRepo}
}

// Create requires the referenced post to exist and stamps the caller as
// sender.
func (s *Service) Create(ctx context.Context, postID, message, sender string) (*models.Comment, error) {
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, app_errors.ErrPostNotFound
	}
	if _, err := s.postRepo.PostByID(ctx, pid); err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID:  pid,
		Sender:  sender,
		Message: message,
	}
	return s.repo.CreateComment(ctx, comment)
}

// List returns comments newest-first, scoped to a post when postID is given.
func (s *Service) List(ctx context.Context, postID string) ([]models.Comment, error) {
	if postID == "" {
		return s.repo.Comments(ctx, nil)
	}
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}
	return s.repo.Comments(ctx, &pid)
}

func (s *Service) ByID(ctx context.Context, id string) (*models.Comment, error) {
	cid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}
	return s.repo.CommentByID(ctx, cid)
}

func (s *Service) Update(ctx context.Context, id, caller, postID, message string) (*models.Comment, error) {
	cid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, app_errors.ErrPostNotFound
	}

	comment, err := s.repo.CommentByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if comment.Sender != caller {
		return nil, app_errors.ErrNotOwner
	}

	if _, err := s.postRepo.PostByID(ctx, pid); err != nil {
		if errors.Is(err, app_errors.ErrPostNotFound) {
			return nil, app_errors.ErrPostNotFound
		}
		return nil, err
	}

	return s.repo.UpdateComment(ctx, cid, pid, message)
}

func (s *Service) Delete(ctx context.Context, id, caller string) error {
	cid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return app_errors.ErrInvalidID
	}

	comment, err := s.repo.CommentByID(ctx, cid)
	if err != nil {
		return err
	}
	if comment.Sender != caller {
		return app_errors.ErrNotOwner
	}

	_, err = s.repo.DeleteComment(ctx, cid)
	return err
}
