package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const defaultTimeout = 5 * time.Second

// MongoStore is the single persistence handle of the service. All durable
// state lives behind it; the process keeps no other shared mutable state.
type MongoStore interface {
	Feedback

	Ping() error
	Close(ctx context.Context) error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore wraps an already-connected mongo client. The caller owns
// the client lifecycle unless it closes through Close.
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, nil)
}

func (m *mongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
