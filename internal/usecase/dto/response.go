package dto

import (
	"time"

	"github.com/coffee-compass/internal/domain"
)

// SearchShopsResponse - результат поискового цикла.
// Accepted=false означает, что запрос отклонён throttle-гейтом и список
// кандидатов остался прежним.
type SearchShopsResponse struct {
	Accepted bool          `json:"accepted"`
	Shops    []domain.Shop `json:"shops"`
}

// DailyRecommendationResponse - кофейня дня
type DailyRecommendationResponse struct {
	Day  string       `json:"day"`
	Shop *domain.Shop `json:"shop,omitempty"`
}

// RouteResponse - пеший маршрут по случайным кандидатам
type RouteResponse struct {
	Stops []domain.Shop `json:"stops"`
}

// TourResponse - тур каталога с признаком доступности
type TourResponse struct {
	domain.Tour
	Unlocked bool `json:"unlocked"`
}

// GuideResponse - гид каталога с признаком доступности
type GuideResponse struct {
	domain.Guide
	Unlocked bool `json:"unlocked"`
}

// PurchaseResponse - исход покупки
type PurchaseResponse struct {
	Outcome   domain.PurchaseOutcome `json:"outcome"`
	ProductID string                 `json:"product_id"`
	Kind      domain.ProductKind     `json:"kind"`
}

// RestoreResponse - результат восстановления покупок
type RestoreResponse struct {
	RestoredTours  []string `json:"restored_tours"`
	RestoredGuides []string `json:"restored_guides"`
}

// AchievementResponse - достижение с состоянием разблокировки
type AchievementResponse struct {
	domain.Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// CheckinResponse - результат чек-ина: созданный визит, обновлённая серия
// и достижения, разблокированные именно этим чек-ином
type CheckinResponse struct {
	Visit         domain.Visit      `json:"visit"`
	Streak        domain.UserStreak `json:"streak"`
	NewlyUnlocked []string          `json:"newly_unlocked,omitempty"`
}
