package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type UserMongo struct {
	col *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{col: db.Collection(usersCollection)}
}

func (r *UserMongo) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.RefreshTokens == nil {
		user.RefreshTokens = []string{}
	}
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, app_errors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, nil
}

func (r *UserMongo) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserMongo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserMongo) AppendRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$push": bson.M{"refreshTokens": token}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return app_errors.ErrUserNotFound
	}
	return nil
}

// RemoveRefreshToken locates the account listing the token and pulls it in a
// single update, reporting whether any account did. Removing a token no
// account lists is not an error.
func (r *UserMongo) RemoveRefreshToken(ctx context.Context, token string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"refreshTokens": token},
		bson.M{"$pull": bson.M{"refreshTokens": token}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// SwapRefreshToken rotates oldToken into newToken in one conditional update.
// The filter matches only while oldToken is still listed, and the positional
// operator replaces exactly that element, so two concurrent rotations cannot
// silently drop each other's writes. A zero matched count means oldToken was
// already rotated out.
func (r *UserMongo) SwapRefreshToken(ctx context.Context, id primitive.ObjectID, oldToken, newToken string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "refreshTokens": oldToken},
		bson.M{"$set": bson.M{"refreshTokens.$": newToken}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// ClearRefreshTokens drops every session of the account. Used as the teardown
// when a rotated-out token is replayed.
func (r *UserMongo) ClearRefreshTokens(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"refreshTokens": []string{}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return app_errors.ErrUserNotFound
	}
	return nil
}

func (r *UserMongo) Users(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserMongo) UpdateUser(ctx context.Context, id primitive.ObjectID, username, email string) (*models.User, error) {
	update := bson.M{}
	if username != "" {
		update["username"] = username
	}
	if email != "" {
		update["email"] = email
	}
	if len(update) == 0 {
		return r.findOne(ctx, bson.M{"_id": id})
	}

	var user models.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, app_errors.ErrUserExists
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserMongo) DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, app_errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
