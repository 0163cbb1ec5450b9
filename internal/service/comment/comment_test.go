package comment

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCommentRepo struct {
	comments map[primitive.ObjectID]*models.Comment
	clock    time.Time
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments: map[primitive.ObjectID]*models.Comment{},
		clock:    time.Now().UTC(),
	}
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment models.Comment) (*models.Comment, error) {
	f.clock = f.clock.Add(time.Second)
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = f.clock
	comment.UpdatedAt = f.clock
	f.comments[comment.ID] = &comment
	return &comment, nil
}

func (f *fakeCommentRepo) Comments(_ context.Context, postID *primitive.ObjectID) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if postID == nil || c.PostID == *postID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommentRepo) CommentByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	if c, ok := f.comments[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, app_errors.ErrCommentNotFound
}

func (f *fakeCommentRepo) UpdateComment(_ context.Context, id, postID primitive.ObjectID, message string) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, app_errors.ErrCommentNotFound
	}
	c.PostID = postID
	c.Message = message
	c.UpdatedAt = time.Now().UTC()
	copied := *c
	return &copied, nil
}

func (f *fakeCommentRepo) DeleteComment(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, app_errors.ErrCommentNotFound
	}
	delete(f.comments, id)
	return c, nil
}

type fakePostRepo struct {
	existing map[primitive.ObjectID]bool
}

func (f *fakePostRepo) PostByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	if f.existing[id] {
		return &models.Post{ID: id}, nil
	}
	return nil, app_errors.ErrPostNotFound
}

func newTestService() (*Service, *fakeCommentRepo, primitive.ObjectID) {
	repo := newFakeCommentRepo()
	postID := primitive.NewObjectID()
	posts := &fakePostRepo{existing: map[primitive.ObjectID]bool{postID: true}}
	return NewService(logger.New("local"), repo, posts), repo, postID
}

func TestCreateRequiresExistingPost(t *testing.T) {
	s, _, postID := newTestService()

	comment, err := s.Create(context.Background(), postID.Hex(), "hello", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", comment.Sender)
	assert.Equal(t, postID, comment.PostID)

	_, err = s.Create(context.Background(), primitive.NewObjectID().Hex(), "hello", "alice")
	assert.ErrorIs(t, err, app_errors.ErrPostNotFound)

	_, err = s.Create(context.Background(), "garbage", "hello", "alice")
	assert.ErrorIs(t, err, app_errors.ErrPostNotFound)
}

func TestListNewestFirstScopedToPost(t *testing.T) {
	s, _, postID := newTestService()

	first, err := s.Create(context.Background(), postID.Hex(), "first", "alice")
	require.NoError(t, err)
	second, err := s.Create(context.Background(), postID.Hex(), "second", "bob")
	require.NoError(t, err)

	comments, err := s.List(context.Background(), postID.Hex())
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
}

func TestUpdateRequiresOwnership(t *testing.T) {
	s, _, postID := newTestService()

	comment, err := s.Create(context.Background(), postID.Hex(), "hello", "alice")
	require.NoError(t, err)

	_, err = s.Update(context.Background(), comment.ID.Hex(), "mallory", postID.Hex(), "hijacked")
	assert.ErrorIs(t, err, app_errors.ErrNotOwner)

	updated, err := s.Update(context.Background(), comment.ID.Hex(), "alice", postID.Hex(), "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Message)
}

func TestUpdateRejectsUnknownPost(t *testing.T) {
	s, _, postID := newTestService()

	comment, err := s.Create(context.Background(), postID.Hex(), "hello", "alice")
	require.NoError(t, err)

	_, err = s.Update(context.Background(), comment.ID.Hex(), "alice", primitive.NewObjectID().Hex(), "edited")
	assert.ErrorIs(t, err, app_errors.ErrPostNotFound)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	s, repo, postID := newTestService()

	comment, err := s.Create(context.Background(), postID.Hex(), "hello", "alice")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(context.Background(), comment.ID.Hex(), "mallory"), app_errors.ErrNotOwner)
	assert.Len(t, repo.comments, 1)

	require.NoError(t, s.Delete(context.Background(), comment.ID.Hex(), "alice"))
	assert.Empty(t, repo.comments)
}

func TestDeleteUnknownComment(t *testing.T) {
	s, _, _ := newTestService()

	err := s.Delete(context.Background(), primitive.NewObjectID().Hex(), "alice")
	assert.ErrorIs(t, err, app_errors.ErrCommentNotFound)
}
