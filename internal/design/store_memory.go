package design

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemStore keeps designs in insertion order. Used when no DATABASE_URL is
// configured, and by tests.
type MemStore struct {
	mu   sync.RWMutex
	docs []Design
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, d Design) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = "d_" + uuid.NewString()
	s.docs = append(s.docs, d)
	return d.ID, nil
}

func (s *MemStore) List(ctx context.Context, userID string) ([]Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Design, 0, len(s.docs))
	for _, d := range s.docs {
		if userID != "" && d.UserID != userID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}
