// Package serialize converts stored documents into their JSON-safe API form.
package serialize

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document returns a copy of doc with "_id" renamed to "id" in string form
// and every date/time value rendered as RFC 3339. doc is not modified.
func Document(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = value(v)
	}

	if id, ok := doc["_id"]; ok {
		delete(out, "_id")
		out["id"] = ID(id)
	}
	return out
}

// Documents serializes each stored document.
func Documents(docs []bson.M) []map[string]interface{} {
	out := make([]map[string]interface{}, len(docs))
	for i, d := range docs {
		out[i] = Document(d)
	}
	return out
}

// ID renders a store identifier as a string.
func ID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func value(v interface{}) interface{} {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339Nano)
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}
