package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const commentsCollection = "comments"

// newestFirst matches the listing order of the comment feeds.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

type CommentMongo struct {
	col *mongo.Collection
}

func NewCommentMongo(db *mongo.Database) *CommentMongo {
	return &CommentMongo{col: db.Collection(commentsCollection)}
}

func (r *CommentMongo) CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return &comment, nil
}

// Comments lists all comments newest-first, optionally scoped to one post.
func (r *CommentMongo) Comments(ctx context.Context, postID *primitive.ObjectID) ([]models.Comment, error) {
	filter := bson.M{}
	if postID != nil {
		filter["postId"] = *postID
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentMongo) CommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentMongo) UpdateComment(ctx context.Context, id primitive.ObjectID, postID primitive.ObjectID, message string) (*models.Comment, error) {
	update := bson.M{
		"postId":    postID,
		"message":   message,
		"updatedAt": time.Now().UTC(),
	}

	var comment models.Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentMongo) DeleteComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}
