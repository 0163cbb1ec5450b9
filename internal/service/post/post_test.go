package post

import (
	"context"
	"testing"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePostRepo struct {
	posts map[primitive.ObjectID]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[primitive.ObjectID]*models.Post{}}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post models.Post) (*models.Post, error) {
	post.ID = primitive.NewObjectID()
	f.posts[post.ID] = &post
	return &post, nil
}

func (f *fakePostRepo) Posts(_ context.Context, sender string) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		if sender == "" || p.Sender == sender {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) PostByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	if p, ok := f.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, app_errors.ErrPostNotFound
}

func (f *fakePostRepo) UpdatePost(_ context.Context, id primitive.ObjectID, title, content string) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, app_errors.ErrPostNotFound
	}
	if title != "" {
		p.Title = title
	}
	if content != "" {
		p.Content = content
	}
	copied := *p
	return &copied, nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, app_errors.ErrPostNotFound
	}
	delete(f.posts, id)
	return p, nil
}

func newTestService() (*Service, *fakePostRepo) {
	repo := newFakePostRepo()
	return NewService(logger.New("local"), repo), repo
}

func TestCreateStampsSender(t *testing.T) {
	s, _ := newTestService()

	post, err := s.Create(context.Background(), "title", "content", "caller-1")
	require.NoError(t, err)
	assert.Equal(t, "caller-1", post.Sender)
	assert.False(t, post.ID.IsZero())
}

func TestListFiltersBySender(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Create(context.Background(), "a", "", "alice")
	require.NoError(t, err)
	_, err = s.Create(context.Background(), "b", "", "bob")
	require.NoError(t, err)

	all, err := s.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].Title)
}

func TestByIDUnknown(t *testing.T) {
	s, _ := newTestService()

	_, err := s.ByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, app_errors.ErrPostNotFound)

	_, err = s.ByID(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, app_errors.ErrInvalidID)
}

func TestUpdateRequiresOwnership(t *testing.T) {
	s, _ := newTestService()

	post, err := s.Create(context.Background(), "title", "content", "alice")
	require.NoError(t, err)

	_, err = s.Update(context.Background(), post.ID.Hex(), "mallory", "hijacked", "")
	assert.ErrorIs(t, err, app_errors.ErrNotOwner)

	updated, err := s.Update(context.Background(), post.ID.Hex(), "alice", "new title", "")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	s, repo := newTestService()

	post, err := s.Create(context.Background(), "title", "", "alice")
	require.NoError(t, err)

	_, err = s.Delete(context.Background(), post.ID.Hex(), "mallory")
	assert.ErrorIs(t, err, app_errors.ErrNotOwner)
	assert.Len(t, repo.posts, 1)

	deleted, err := s.Delete(context.Background(), post.ID.Hex(), "alice")
	require.NoError(t, err)
	assert.Equal(t, post.ID, deleted.ID)
	assert.Empty(t, repo.posts)
}
