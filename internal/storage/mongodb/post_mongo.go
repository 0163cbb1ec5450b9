package mongodb

import (
	"context"
	"errors"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const postsCollection = "posts"

type PostMongo struct {
	col *mongo.Collection
}

func NewPostMongo(db *mongo.Database) *PostMongo {
	return &PostMongo{col: db.Collection(postsCollection)}
}

func (r *PostMongo) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return &post, nil
}

// Posts lists all posts, optionally filtered by sender.
func (r *PostMongo) Posts(ctx context.Context, sender string) ([]models.Post, error) {
	filter := bson.M{}
	if sender != "" {
		filter["sender"] = sender
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostMongo) PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostMongo) UpdatePost(ctx context.Context, id primitive.ObjectID, title, content string) (*models.Post, error) {
	update := bson.M{}
	if title != "" {
		update["title"] = title
	}
	if content != "" {
		update["content"] = content
	}
	if len(update) == 0 {
		return r.PostByID(ctx, id)
	}

	var post models.Post
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostMongo) DeletePost(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}
