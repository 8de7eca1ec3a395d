package repository

import "context"

// PreferencesRepository - key/value хранилище JSON-блобов пользовательского
// состояния. Get возвращает (nil, nil) при отсутствии ключа.
type PreferencesRepository interface {
	// Get получает значение по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение по ключу (last write wins)
	Set(ctx context.Context, key string, value []byte) error

	// Remove удаляет ключ
	Remove(ctx context.Context, key string) error
}
