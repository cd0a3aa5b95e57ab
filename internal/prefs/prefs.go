// Package prefs — локальные настройки клиента (ключ-значение строк).
// Через него читается активный канал для подписи.
package prefs

import (
	"context"
	"sync"
)

// KeyActiveChannel — имя активного канала для подписи комментариев и реакций.
const KeyActiveChannel = "comment-channel"

// Store — минимальный контракт хранилища настроек.
type Store interface {
	// Get возвращает значение и признак его наличия.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set сохраняет значение; пустая строка удаляет ключ.
	Set(ctx context.Context, key, value string) error
	// Close освобождает ресурсы.
	Close() error
}

type memoryStore struct {
	mu sync.RWMutex
	kv map[string]string
}

// NewMemory создаёт хранилище в памяти процесса.
func NewMemory() Store {
	return &memoryStore{kv: make(map[string]string)}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.kv[key]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if value == "" {
		delete(m.kv, key)
		return nil
	}
	m.kv[key] = value

	return nil
}

func (m *memoryStore) Close() error { return nil }
