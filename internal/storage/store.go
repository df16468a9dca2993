// Package storage provides the durable key-value slot the recipe snapshot is
// written to. Every backend stores one opaque value under one key.
package storage

import (
	"context"
	"errors"
	"sync"
)

// DefaultKey is the slot the recipe collection lives under
const DefaultKey = "recipes"

// ErrNotFound is returned by Load when nothing has been saved under the key yet
var ErrNotFound = errors.New("snapshot not found")

// Store is a single durable key-value slot
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}

// MemoryStore keeps the snapshot in process memory
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty in-memory slot
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNotFound
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
