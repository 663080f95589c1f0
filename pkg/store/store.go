// Package store keeps computed covers so the HTTP API can return them by ID.
//
// [MemoryStore] serves single-process deployments and tests; [MongoStore]
// persists records in a MongoDB collection. Record IDs are random UUIDs
// assigned by [NewRecord].
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pathcover/pkg/render"
)

// ErrNotFound is returned by Get when no record has the given ID.
var ErrNotFound = errors.New("record not found")

// Record is one stored cover.
type Record struct {
	ID          string          `json:"id" bson:"_id"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	GraphHash   string          `json:"graph_hash" bson:"graph_hash"`
	Closure     bool            `json:"closure" bson:"closure"`
	BreakCycles bool            `json:"break_cycles" bson:"break_cycles"`
	CacheHit    bool            `json:"cache_hit" bson:"cache_hit"`
	Cover       render.Document `json:"cover" bson:"cover"`
}

// NewRecord returns a record with a fresh ID and the current time.
func NewRecord(doc render.Document) *Record {
	return &Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Cover:     doc,
	}
}

// ValidID reports whether id has the shape of a record ID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Store persists records.
type Store interface {
	Put(ctx context.Context, r *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Close(ctx context.Context) error
}
