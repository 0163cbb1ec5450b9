package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

type Storage struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// New connects a single process-wide client and pings the server so that an
// unreachable database fails startup fast instead of on the first request.
func New(uri, dbName string) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Storage{Client: client, DB: client.Database(dbName)}, nil
}

// EnsureIndexes creates the unique indexes registration relies on for
// duplicate detection.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	_, err := s.DB.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (s *Storage) Close() {
	if s.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = s.Client.Disconnect(ctx)
}
