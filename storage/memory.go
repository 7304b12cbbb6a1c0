package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/assets"
)

// Object is a file held by MemoryStorage.
type Object struct {
	ContentType string
	Data        []byte
}

// MemoryStorage keeps uploads in process memory for development and tests.
type MemoryStorage struct {
	bucket   string
	resolver assets.Resolver

	mu      sync.Mutex
	objects map[string]Object
}

func NewMemoryStorage(bucket string, resolver assets.Resolver) *MemoryStorage {
	return &MemoryStorage{
		bucket:   bucket,
		resolver: resolver,
		objects:  make(map[string]Object),
	}
}

func (m *MemoryStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read upload %s: %w", key, err)
	}
	m.mu.Lock()
	m.objects[key] = Object{ContentType: contentType, Data: data}
	m.mu.Unlock()
	return m.resolver.Resolve(m.bucket, key), nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Get returns the object stored under key.
func (m *MemoryStorage) Get(key string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[key]
	return o, ok
}

// Keys lists stored keys in sorted order.
func (m *MemoryStorage) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
