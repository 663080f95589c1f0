package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/matzehuels/pathcover/pkg/render"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord(render.Document{PathCount: 2})
	if !ValidID(r.ID) {
		t.Errorf("NewRecord ID %q is not a UUID", r.ID)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if other := NewRecord(render.Document{}); other.ID == r.ID {
		t.Error("record IDs should be unique")
	}
}

func TestValidID(t *testing.T) {
	tests := map[string]bool{
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8": true,
		"":                                     false,
		"not-a-uuid":                           false,
		"../../etc/passwd":                     false,
	}
	for id, want := range tests {
		if got := ValidID(id); got != want {
			t.Errorf("ValidID(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	r := NewRecord(render.Document{PathCount: 1, Paths: [][]string{{"a", "b"}}})
	if err := s.Put(ctx, r); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Cover.PathCount != 1 || got.ID != r.ID {
		t.Errorf("Get() = %+v", got)
	}

	got.Cover.PathCount = 99
	again, _ := s.Get(ctx, r.ID)
	if again.Cover.PathCount != 1 {
		t.Error("Get should return a copy")
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
	if err := s.Put(ctx, &Record{}); err == nil {
		t.Error("Put without ID should fail")
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := NewRecord(render.Document{})
			_ = s.Put(ctx, r)
			_, _ = s.Get(ctx, r.ID)
		}()
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("Len() = %d, want 50", s.Len())
	}
}
