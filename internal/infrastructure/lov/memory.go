package lov

import (
	"context"
	"fmt"
	"sync"

	"github.com/stylelink/backend/internal/domain/plm"
)

// MemoryStore is the default in-process LOV cache. Unbounded and never
// evicted; the LOV code space is small.
type MemoryStore struct {
	entries sync.Map // "key:code" -> display value
}

// NewMemoryStore creates an empty in-memory LOV store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the cached display value for a code, if present
func (s *MemoryStore) Get(_ context.Context, key plm.LOVKey, code string) (string, bool, error) {
	value, ok := s.entries.Load(storeKey(key, code))
	if !ok {
		return "", false, nil
	}
	return value.(string), true, nil
}

// Set caches the display value for a code. Last writer wins on races.
func (s *MemoryStore) Set(_ context.Context, key plm.LOVKey, code, value string) error {
	s.entries.Store(storeKey(key, code), value)
	return nil
}

func storeKey(key plm.LOVKey, code string) string {
	return fmt.Sprintf("%s:%s", key, code)
}

var _ Store = (*MemoryStore)(nil)
