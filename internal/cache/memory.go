package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value      []byte
	expiration time.Time
}

// Memory is a thread-safe in-process Store with TTL support, used for
// cacheless deployments and tests.
type Memory struct {
	data  map[string]memoryItem
	mutex sync.RWMutex
}

func NewMemory() *Memory {
	m := &Memory{data: make(map[string]memoryItem)}
	go m.cleanupExpired()
	return m
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	item, exists := m.data[key]
	if !exists || time.Now().After(item.expiration) {
		return nil, false
	}
	return item.value, true
}

func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.data[key] = memoryItem{
		value:      value,
		expiration: time.Now().Add(ttl),
	}
}

// Size returns the current number of entries, expired or not.
func (m *Memory) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.data)
}

func (m *Memory) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mutex.Lock()
		now := time.Now()
		for key, item := range m.data {
			if now.After(item.expiration) {
				delete(m.data, key)
			}
		}
		m.mutex.Unlock()
	}
}
