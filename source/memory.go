package source

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-memory Source. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty Memory source.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Put stores a copy of data under name.
func (m *Memory) Put(name string, data []byte) {
	copied := make([]byte, len(data))
	copy(copied, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = copied
}

// Open returns the document stored under name.
func (m *Memory) Open(ctx context.Context, name string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[name]
	if !ok {
		return nil, fmt.Errorf("source: %s: %w", name, ErrNotFound)
	}
	return NewDocument(data), nil
}
