package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a stored record as field name to value.
type Document = bson.M

// MaxHealthCollections bounds the collection names shown by the health
// probe. services.HealthService enforces it; stores report every name.
const MaxHealthCollections = 10

var (
	// ErrPersistence wraps every failure coming from the document store.
	ErrPersistence = errors.New("persistence failure")
	// ErrNotInitialized is returned when no store was configured at startup.
	ErrNotInitialized = fmt.Errorf("%w: database not initialized", ErrPersistence)
)

// Store is the document store used by the services.
type Store interface {
	// Insert stores doc in collection and returns its store-assigned id.
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	// Find returns at most limit documents matching filter, in insertion order.
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
	// Health never fails; partial failures are reported inside the result.
	Health(ctx context.Context) Health
	Close(ctx context.Context) error
}

// Health describes what the store could find out about itself.
type Health struct {
	Reachable   bool
	Name        string
	Collections []string
	PingErr     error
	ListErr     error
}

type matchOp int

const (
	opEquals matchOp = iota
	opEqualFold
)

// Condition constrains a single field.
type Condition struct {
	op    matchOp
	value interface{}
}

// Equals matches a field holding exactly v.
func Equals(v interface{}) Condition {
	return Condition{op: opEquals, value: v}
}

// EqualFold matches a string field equal to s ignoring case. Substrings do not match.
func EqualFold(s string) Condition {
	return Condition{op: opEqualFold, value: s}
}

// Matches reports whether v satisfies the condition.
func (c Condition) Matches(v interface{}) bool {
	switch c.op {
	case opEqualFold:
		s, ok := v.(string)
		return ok && strings.EqualFold(s, c.value.(string))
	default:
		return reflect.DeepEqual(v, c.value)
	}
}

// Filter maps field names to conditions; all of them must hold.
type Filter map[string]Condition

// Matches reports whether doc satisfies every condition in f.
func (f Filter) Matches(doc Document) bool {
	for field, cond := range f {
		if !cond.Matches(doc[field]) {
			return false
		}
	}
	return true
}

func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
