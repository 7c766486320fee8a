package session

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists sessions as documents in a MongoDB collection.
// Expiry is enforced both by a
// TTL index and by an expires_at check on read, so a lagging TTL monitor
// never resurrects a logged-out shopkeeper.
type MongoStore struct {
	col *mongo.Collection
}

type sessionDocument struct {
	ID        string                 `bson:"_id"`
	Data      map[string]interface{} `bson:"data"`
	ExpiresAt time.Time              `bson:"expires_at"`
}

// NewMongoStore connects and ensures the TTL index.
func NewMongoStore(uri, db, collection string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("session: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("session: mongo ping: %w", err)
	}

	col := client.Database(db).Collection(collection)

	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})

	return &MongoStore{col: col}, nil
}

func (s *MongoStore) Load(ctx context.Context, id string) (map[string]interface{}, error) {
	var doc sessionDocument
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: mongo find: %w", err)
	}

	if time.Now().After(doc.ExpiresAt) {
		return map[string]interface{}{}, nil
	}
	return doc.Data, nil
}

func (s *MongoStore) Save(ctx context.Context, id string, data map[string]interface{}, ttl time.Duration) error {
	doc := sessionDocument{
		ID:        id,
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	}

	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("session: mongo save: %w", err)
	}
	return nil
}

func (s *MongoStore) Destroy(ctx context.Context, id string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("session: mongo destroy: %w", err)
	}
	return nil
}

// GC removes already-expired documents. The TTL index does this eventually;
// the scheduled sweep keeps the collection tight between monitor passes.
func (s *MongoStore) GC(ctx context.Context) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now()}})
	if err != nil {
		return 0, fmt.Errorf("session: mongo gc: %w", err)
	}
	return res.DeletedCount, nil
}
