package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/TemirB/storefront/internal/database"
)

// Store persists session payloads. Load returns nil without error for an
// unknown or expired id. Merge applies per-key changes to the stored map,
// creating it when missing; a nil value deletes the key.
type Store interface {
	Load(ctx context.Context, id string) (map[string]json.RawMessage, error)
	Merge(ctx context.Context, id string, changes map[string]json.RawMessage, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in a process-local expirable LRU. Sessions do
// not survive restarts and are not shared between instances.
type MemoryStore struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, map[string]json.RawMessage]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size < 1 {
		size = 1
	}
	return &MemoryStore{lru: expirable.NewLRU[string, map[string]json.RawMessage](size, nil, ttl)}
}

func (m *MemoryStore) Load(_ context.Context, id string) (map[string]json.RawMessage, error) {
	data, ok := m.lru.Get(id)
	if !ok {
		return nil, nil
	}
	out := make(map[string]json.RawMessage, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out, nil
}

// Merge ignores ttl; the LRU applies the TTL it was built with. Stored maps
// are never mutated, only replaced.
func (m *MemoryStore) Merge(_ context.Context, id string, changes map[string]json.RawMessage, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, _ := m.lru.Get(id)
	next := make(map[string]json.RawMessage, len(cur)+len(changes))
	for k, v := range cur {
		next[k] = v
	}
	for k, v := range changes {
		if v == nil {
			delete(next, k)
			continue
		}
		next[k] = v
	}
	m.lru.Add(id, next)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.lru.Remove(id)
	return nil
}

var _ Store = (*database.SessionRepo)(nil)
