package profile

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/galaxy/pkg/cache"
	gerrors "github.com/matzehuels/galaxy/pkg/errors"
)

// DefaultCollection is the collection profiles are read from.
const DefaultCollection = "users"

// MongoStore reads profiles from a MongoDB collection. Documents use the
// bson layout of Detail; items are ordered by createdAt.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// ConnectMongo connects to uri and returns a store over
// database.DefaultCollection. The connection is verified with a ping.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeStoreUnavailable, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, gerrors.Wrap(gerrors.ErrCodeStoreUnavailable, err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(DefaultCollection),
	}, nil
}

// NewMongoStore wraps an existing collection. Close is a no-op for stores
// created this way; the caller owns the client.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// EnsureIndexes creates the createdAt index Items sorts on.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return storeErr(err, "create createdAt index")
	}
	return nil
}

// Count implements Store.
func (s *MongoStore) Count(ctx context.Context) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, storeErr(err, "count profiles")
	}
	return int(n), nil
}

// Items implements Store.
func (s *MongoStore) Items(ctx context.Context) ([]Item, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.D{
			{Key: "_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "image", Value: 1},
			{Key: "createdAt", Value: 1},
		})

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, storeErr(err, "list profiles")
	}
	var items []Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, storeErr(err, "decode profiles")
	}
	return items, nil
}

// Detail implements Store.
func (s *MongoStore) Detail(ctx context.Context, id string) (*Detail, error) {
	var d Detail
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err, "load profile %s", id)
	}
	return &d, nil
}

// Insert implements Writer. Existing profiles with the same id are
// replaced, so seeding twice is harmless.
func (s *MongoStore) Insert(ctx context.Context, details []Detail) error {
	if len(details) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, len(details))
	for i, d := range details {
		models[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: d.ID}}).
			SetReplacement(d).
			SetUpsert(true)
	}
	if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return storeErr(err, "write %d profiles", len(details))
	}
	return nil
}

// Close disconnects the client if the store created it.
func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}

// storeErr marks transient driver failures retryable and tags the error as a
// store failure.
func storeErr(err error, format string, args ...any) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		err = cache.Retryable(err)
	}
	return gerrors.Wrap(gerrors.ErrCodeStoreUnavailable, err, format, args...)
}

var (
	_ Store  = (*MongoStore)(nil)
	_ Writer = (*MongoStore)(nil)
)
