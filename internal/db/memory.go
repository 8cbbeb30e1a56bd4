package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used in tests and when running
// with STORE=memory. Documents are kept in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
		now:         time.Now,
	}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", persistenceErr("insert into "+collection, err)
	}

	id := primitive.NewObjectID()
	stored := stamp(doc, s.now())
	stored["_id"] = id

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], stored)
	s.mu.Unlock()

	return id.Hex(), nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, persistenceErr("find in "+collection, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0)
	for _, doc := range s.collections[collection] {
		if limit > 0 && len(docs) >= limit {
			break
		}
		if filter.Matches(doc) {
			docs = append(docs, copyDoc(doc))
		}
	}
	return docs, nil
}

func (s *MemoryStore) Health(ctx context.Context) Health {
	s.mu.RLock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	return Health{
		Reachable:   true,
		Name:        "memory",
		Collections: names,
	}
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}

func copyDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
