package redis

import (
	"context"
	"fmt"

	"github.com/coffee-compass/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// prefsKeyPrefix отделяет пользовательские preferences от остальных ключей
const prefsKeyPrefix = "prefs:"

type preferencesRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewPreferencesRepository создает Preferences Store поверх Redis.
// Значения живут без TTL: это персистентное состояние, а не кеш.
func NewPreferencesRepository(r *Redis) repository.PreferencesRepository {
	return &preferencesRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *preferencesRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, prefsKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil // key absent
	}
	if err != nil {
		r.logger.Error("Failed to get preference", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("preferences get error: %w", err)
	}

	return val, nil
}

func (r *preferencesRepository) Set(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, prefsKeyPrefix+key, value, 0).Err()
	if err != nil {
		r.logger.Error("Failed to set preference", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("preferences set error: %w", err)
	}

	r.logger.Debug("Preference saved", zap.String("key", key))
	return nil
}

func (r *preferencesRepository) Remove(ctx context.Context, key string) error {
	err := r.client.Del(ctx, prefsKeyPrefix+key).Err()
	if err != nil {
		r.logger.Error("Failed to remove preference", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("preferences remove error: %w", err)
	}

	r.logger.Debug("Preference removed", zap.String("key", key))
	return nil
}
