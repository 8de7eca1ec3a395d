package repository

import (
	"context"

	"github.com/coffee-compass/internal/domain"
)

// PlaceSearchRepository - внешний поисковый провайдер мест.
// Провайдер сам ограничивает частоту и размер выдачи; throttle-гейт
// discovery-слоя обязан отработать ДО любого вызова этих методов.
type PlaceSearchRepository interface {
	// SearchText ищет места по свободному тексту в регионе
	SearchText(ctx context.Context, region domain.SearchRegion, query string) ([]domain.Place, error)

	// SearchCategory ищет места по категориям таксономии провайдера в регионе
	SearchCategory(ctx context.Context, region domain.SearchRegion, categories []string) ([]domain.Place, error)
}
