package repository

import (
	"context"
	"errors"
	"time"

	"github.com/samber/oops"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "documents"

type mongoDocument struct {
	Key       string    `bson:"_id"`
	Body      []byte    `bson:"body"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStorage implements DocumentStore with one MongoDB document per key.
type MongoStorage struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStorage connects to uri and uses the documents collection of database
func NewMongoStorage(ctx context.Context, uri, database string) (*MongoStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, oops.With("context", "failed to connect to mongodb").Wrap(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, oops.With("database", database, "context", "failed to ping mongodb").Wrap(err)
	}

	return &MongoStorage{
		client:     client,
		collection: client.Database(database).Collection(mongoCollection),
	}, nil
}

func (s *MongoStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var doc mongoDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, oops.With("document", key, "context", "failed to find document").Wrap(err)
	}
	return doc.Body, nil
}

// Put replaces the whole document in a single upsert.
func (s *MongoStorage) Put(ctx context.Context, key string, data []byte) error {
	doc := mongoDocument{Key: key, Body: data, UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return oops.With("document", key, "context", "failed to replace document").Wrap(err)
	}
	return nil
}

func (s *MongoStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStorage) Shutdown() error {
	return s.Close()
}
