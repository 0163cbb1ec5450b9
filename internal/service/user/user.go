package user

import (
	"context"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepo interface {
	Users(ctx context.Context) ([]models.User, error)
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, username, email string) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type Service struct {
	log  logger.Log
	repo UserRepo
}

func NewService(l logger.Log, repo UserRepo) *Service {
	return &Service{log: l, repo: repo}
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.Users(ctx)
}

func (s *Service) ByID(ctx context.Context, id string) (*models.User, error) {
	uid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}
	return s.repo.UserByID(ctx, uid)
}

func (s *Service) Update(ctx context.Context, id, username, email string) (*models.User, error) {
	uid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}
	return s.repo.UpdateUser(ctx, uid, username, email)
}

func (s *Service) Delete(ctx context.Context, id string) (*models.User, error) {
	uid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, app_errors.ErrInvalidID
	}
	return s.repo.DeleteUser(ctx, uid)
}
