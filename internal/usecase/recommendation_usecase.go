package usecase

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/pkg/errors"
	"github.com/coffee-compass/internal/pkg/utils"
	"github.com/coffee-compass/internal/usecase/dto"
	"go.uber.org/zap"
)

// Константы линейного конгруэнтного генератора (64-бит, wraparound).
// Выбор дня должен быть стабилен без серверной координации: одинаковый
// день и одинаковый список кандидатов дают один и тот же магазин в любом
// процессе и после рестарта.
const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
)

// RecommendationUseCase - кофейня дня, случайная рядом и пеший маршрут
type RecommendationUseCase struct {
	discoveryUC *DiscoveryUseCase
	shopUC      *ShopUseCase
	cfg         *config.RecommendationConfig
	logger      *zap.Logger

	now func() time.Time
}

// NewRecommendationUseCase создает usecase рекомендаций
func NewRecommendationUseCase(
	discoveryUC *DiscoveryUseCase,
	shopUC *ShopUseCase,
	cfg *config.RecommendationConfig,
	logger *zap.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		discoveryUC: discoveryUC,
		shopUC:      shopUC,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// DailyPick возвращает кофейню дня.
//
// Кеш валиден, пока день тот же и закешированный id резолвится в текущем
// списке кандидатов. Иначе выбор пересчитывается детерминированно: LCG
// сидируется FNV-1a хешем строки дня (локальная зона), один шаг генератора
// даёт индекс. Пустой список кандидатов - явное "ничего нет", не ошибка.
func (uc *RecommendationUseCase) DailyPick(ctx context.Context) (*dto.DailyRecommendationResponse, error) {
	day := uc.now().Format(domain.DailyDayLayout)
	candidates := uc.discoveryUC.Candidates()

	if cached := uc.shopUC.DailyRecommendation(); cached != nil && cached.Day == day {
		for _, c := range candidates {
			if c.ID == cached.ShopID {
				shop := c
				return &dto.DailyRecommendationResponse{Day: day, Shop: &shop}, nil
			}
		}
	}

	if len(candidates) == 0 {
		return &dto.DailyRecommendationResponse{Day: day}, nil
	}

	idx := dailyIndex(day, len(candidates))
	shop := candidates[idx]

	if err := uc.shopUC.SetDailyRecommendation(ctx, domain.DailyRecommendation{
		ShopID: shop.ID,
		Day:    day,
	}); err != nil {
		return nil, err
	}

	uc.logger.Info("Daily pick generated",
		zap.String("day", day),
		zap.String("shop_id", shop.ID))

	return &dto.DailyRecommendationResponse{Day: day, Shop: &shop}, nil
}

// dailyIndex - один шаг LCG от сида дня. FNV-1a стабилен между процессами,
// в отличие от рандомизированных хешей рантайма.
func dailyIndex(day string, n int) int {
	h := fnv.New64a()
	h.Write([]byte(day))

	state := h.Sum64()*lcgMultiplier + lcgIncrement

	return int(state % uint64(n))
}

// RandomNearby выбирает случайного кандидата в радиусе от точки.
// Выбор свежий на каждый вызов; пустая выборка - "ничего нет", не ошибка.
func (uc *RecommendationUseCase) RandomNearby(ctx context.Context, lat, lon float64) (*domain.Shop, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	var nearby []domain.Shop
	for _, c := range uc.discoveryUC.Candidates() {
		if utils.HaversineDistance(lat, lon, c.Lat, c.Lon) <= uc.cfg.NearbyRadius {
			nearby = append(nearby, c)
		}
	}

	if len(nearby) == 0 {
		return nil, nil
	}

	shop := nearby[rand.Intn(len(nearby))]
	return &shop, nil
}

// GenerateRoute собирает пеший маршрут: случайные кандидаты без повторов,
// до лимита остановок или до исчерпания кандидатов. Порядок случайный,
// по расстоянию не оптимизируется.
func (uc *RecommendationUseCase) GenerateRoute(ctx context.Context) (*dto.RouteResponse, error) {
	pool := uc.discoveryUC.Candidates()

	stops := make([]domain.Shop, 0, uc.cfg.RouteMaxStops)
	for len(stops) < uc.cfg.RouteMaxStops && len(pool) > 0 {
		i := rand.Intn(len(pool))
		stops = append(stops, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}

	return &dto.RouteResponse{Stops: stops}, nil
}
