package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across services.
const (
	UsersCollection            = "users"
	PracticeSessionsCollection = "ear_training_sessions"
	ArticlesCollection         = "articles"
	FeedbackCollection         = "feedback"
)

// Database wraps the Mongo client with an explicit lifecycle. It is constructed
// once in main and passed to services instead of being held in package state.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

func ConnectDB(cfg *Config) (*Database, error) {
	log.Println("Attempting to connect to MongoDB...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to MongoDB")

	return &Database{
		client: client,
		db:     client.Database(cfg.MongoDB),
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Client exposes the underlying client for starting transaction sessions.
func (d *Database) Client() *mongo.Client {
	return d.client
}

// EnsureIndexes creates the indexes the query paths rely on: unique user emails,
// plus the session lookup keys used by history pagination and analytics grouping.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	_, err := d.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = d.Collection(PracticeSessionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = d.Collection(ArticlesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
	return err
}
