package drafts

import (
	"context"
	"sync"
)

// MemoryPersistence keeps drafts in process memory.
type MemoryPersistence struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{drafts: make(map[string][]byte)}
}

func (m *MemoryPersistence) Load(_ context.Context, key string) (Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.drafts[key]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return Decode(b)
}

func (m *MemoryPersistence) Save(_ context.Context, key string, d Draft) error {
	b, err := Encode(d)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[key] = b
	return nil
}

func (m *MemoryPersistence) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, key)
	return nil
}
