package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (должны совпадать с мобильным gateway)
const (
	StreamPositionUpdates = "stream:position:updates"
	StreamShopsDiscovered = "stream:shops:discovered"
)

// PositionUpdateEvent - входящее обновление позиции пользователя
type PositionUpdateEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ShopsDiscoveredEvent - результат поискового цикла для опубликования
type ShopsDiscoveredEvent struct {
	UserID    uuid.UUID  `json:"user_id"`
	Origin    Coordinate `json:"origin"`
	Accepted  bool       `json:"accepted"` // false если поиск отклонён throttle-гейтом
	ShopCount int        `json:"shop_count"`
	Shops     []Shop     `json:"shops,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
