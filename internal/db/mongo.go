package db

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/arzan03/BloodDonorNepal/internal/utils"
	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps a single client for the lifetime of the process.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongoDB opens the client and pings the server. A failed ping is
// logged rather than returned so the API can still start and report the
// problem through the health probe.
func ConnectMongoDB(uri, dbName string, timeout time.Duration) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(uri).SetTimeout(timeout)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Warnf("MongoDB ping failed: %v", err)
	} else {
		log.Info("✅ Connected to MongoDB")
	}

	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// GetCollection returns a MongoDB collection
func (s *MongoStore) GetCollection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	res, err := s.GetCollection(collection).InsertOne(ctx, stamp(doc, time.Now()))
	if err != nil {
		return "", persistenceErr("insert into "+collection, err)
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	opts := options.Find().SetLimit(int64(limit))
	cursor, err := s.GetCollection(collection).Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, persistenceErr("find in "+collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistenceErr("decode "+collection, err)
	}
	return docs, nil
}

// Health pings the server and lists collections in parallel.
func (s *MongoStore) Health(ctx context.Context) Health {
	h := Health{Name: s.db.Name()}

	var names []string
	errs := utils.RunParallel(
		func() error {
			return s.client.Ping(ctx, nil)
		},
		func() error {
			var err error
			names, err = s.db.ListCollectionNames(ctx, bson.D{})
			return err
		},
	)

	h.PingErr, h.ListErr = errs[0], errs[1]
	h.Reachable = h.PingErr == nil
	if h.Reachable && h.ListErr == nil {
		h.Collections = nonNil(names)
	}
	return h
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// query renders the filter as a MongoDB query. EqualFold becomes an
// anchored case-insensitive regex over the escaped input.
func (f Filter) query() bson.M {
	q := bson.M{}
	for field, cond := range f {
		switch cond.op {
		case opEqualFold:
			q[field] = bson.M{
				"$regex":   "^" + regexp.QuoteMeta(cond.value.(string)) + "$",
				"$options": "i",
			}
		default:
			q[field] = cond.value
		}
	}
	return q
}

// stamp copies doc and adds creation timestamps.
func stamp(doc Document, now time.Time) Document {
	out := make(Document, len(doc)+2)
	for k, v := range doc {
		out[k] = v
	}
	now = now.UTC().Truncate(time.Millisecond)
	out["created_at"] = now
	out["updated_at"] = now
	return out
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
