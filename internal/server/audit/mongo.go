package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "auth_events"

type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// MongoSink writes events into the auth_events collection.
type MongoSink struct {
	client     *mongo.Client
	collection inserter
	timeout    time.Duration
}

// mongoConnect is a seam for tests.
var mongoConnect = func(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// NewMongoSink connects and pings within 10 seconds.
func NewMongoSink(ctx context.Context, uri, database string) (*MongoSink, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongoConnect(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &MongoSink{
		client:     client,
		collection: client.Database(database).Collection(collectionName),
		timeout:    5 * time.Second,
	}, nil
}

func (s *MongoSink) Record(ctx context.Context, e Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	_, err := s.collection.InsertOne(ctx, e)
	return err
}

func (s *MongoSink) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
