package cache

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-process Store for single-instance deployments. Entries
// carry their own deadline; a janitor sweeps expired ones so the map does
// not grow without bound.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemory() *Memory {
	m := &Memory{
		entries: make(map[string]memoryEntry),
	}
	go m.cleanupExpired()
	return m
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		m.mu.Lock()
		for key, e := range m.entries {
			if now.After(e.expiresAt) {
				delete(m.entries, key)
			}
		}
		m.mu.Unlock()
	}
}
