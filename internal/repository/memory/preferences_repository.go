package memory

import (
	"context"
	"sync"

	"github.com/coffee-compass/internal/domain/repository"
)

// preferencesRepository - in-process Preferences Store.
// Используется в тестах и во встраиваемых запусках без Redis.
type preferencesRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewPreferencesRepository создает пустой in-memory Preferences Store
func NewPreferencesRepository() repository.PreferencesRepository {
	return &preferencesRepository{
		data: make(map[string][]byte),
	}
}

func (r *preferencesRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok := r.data[key]
	if !ok {
		return nil, nil
	}

	// copy, чтобы вызывающий не мутировал хранимый блоб
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (r *preferencesRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	r.data[key] = stored
	return nil
}

func (r *preferencesRepository) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}
