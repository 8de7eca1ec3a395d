package position

import (
	"testing"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWorker_MovedEnough(t *testing.T) {
	cfg := &config.WorkerConfig{
		ConsumerGroup:   "test-group",
		MinMoveDistance: 0.05, // 50 m
	}

	w := NewWorker(nil, nil, cfg, zap.NewNop())

	userID := uuid.New()
	event := func(lat, lon float64) domain.PositionUpdateEvent {
		return domain.PositionUpdateEvent{UserID: userID, Lat: lat, Lon: lon}
	}

	// первое обновление всегда проходит
	assert.True(t, w.movedEnough(event(41.3851, 2.1734)))

	// дрожание координат в пределах 50 м отсекается
	assert.False(t, w.movedEnough(event(41.38512, 2.17342)))

	// смещение ~1.1 км проходит
	assert.True(t, w.movedEnough(event(41.3951, 2.1734)))

	// фильтр ведётся на пользователя: другой пользователь проходит сразу
	other := domain.PositionUpdateEvent{UserID: uuid.New(), Lat: 41.3851, Lon: 2.1734}
	assert.True(t, w.movedEnough(other))
}
