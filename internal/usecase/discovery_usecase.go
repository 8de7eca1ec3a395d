package usecase

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/domain/repository"
	"github.com/coffee-compass/internal/pkg/errors"
	"github.com/coffee-compass/internal/pkg/utils"
	"github.com/coffee-compass/internal/usecase/dto"
	"go.uber.org/zap"
)

// coffeeQueries - свободнотекстовые синонимы "кофе" на нескольких языках.
// Фан-аут по синонимам компенсирует лимит выдачи провайдера на запрос:
// маленькие локальные заведения иначе прячутся за сетями в одном запросе.
var coffeeQueries = []string{
	"coffee",
	"cafe",
	"café",
	"espresso",
	"kaffee",
	"caffè",
	"кофейня",
}

// searchCategories - категории таксономии провайдера для категорийного под-запроса
var searchCategories = []string{
	"catering.cafe",
	"catering.cafe.coffee_shop",
	"catering.bakery",
}

// coffeeKeywords - включающий фильтр по имени
var coffeeKeywords = []string{
	"coffee", "cafe", "café", "caffè", "kaffee", "espresso",
	"roaster", "roastery", "brew", "кофе",
}

// excludedKeywords - исключающий фильтр. Исключение побеждает включение:
// "Pizza Cafe" не кофейня, как бы имя ни совпадало с включающим списком.
var excludedKeywords = []string{
	"pizza", "burger", "mcdonald", "kfc", "subway", "sushi",
	"kebab", "taco", "grill", "steak",
}

// DiscoveryUseCase - поисковый цикл: throttle-гейт, конкурентный фан-аут
// под-запросов, фильтрация, дедупликация и ранжирование кандидатов.
// Единственный владелец списка кандидатов; мерджи сериализуются мьютексом.
type DiscoveryUseCase struct {
	mu         sync.Mutex
	searchRepo repository.PlaceSearchRepository
	shopUC     *ShopUseCase
	cfg        *config.DiscoveryConfig
	logger     *zap.Logger

	candidates   []domain.Shop
	lastOrigin   *domain.Coordinate
	lastAccepted time.Time

	now func() time.Time
}

// NewDiscoveryUseCase создает usecase поиска кофеен
func NewDiscoveryUseCase(
	searchRepo repository.PlaceSearchRepository,
	shopUC *ShopUseCase,
	cfg *config.DiscoveryConfig,
	logger *zap.Logger,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		searchRepo: searchRepo,
		shopUC:     shopUC,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// Search выполняет поисковый цикл вокруг точки.
//
// Гейт сравнивает с последним ПРИНЯТЫМ поиском и отклоняет запрос, только
// когда и интервал, и смещение ниже порогов: достаточно либо подождать,
// либо уйти достаточно далеко. Отклонённый запрос - no-op, прежний список
// кандидатов остаётся видимым. Гейт отрабатывает до любого I/O к провайдеру.
func (uc *DiscoveryUseCase) Search(ctx context.Context, lat, lon float64) (*dto.SearchShopsResponse, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	origin := domain.Coordinate{Lat: lat, Lon: lon}

	uc.mu.Lock()
	if uc.lastOrigin != nil {
		elapsed := uc.now().Sub(uc.lastAccepted)
		moved := utils.HaversineDistance(uc.lastOrigin.Lat, uc.lastOrigin.Lon, lat, lon)
		if elapsed < uc.cfg.MinSearchInterval && moved < uc.cfg.MinSearchDistance {
			snapshot := uc.snapshotLocked()
			uc.mu.Unlock()
			uc.logger.Debug("Search throttled",
				zap.Duration("elapsed", elapsed),
				zap.Float64("moved_km", moved))
			return &dto.SearchShopsResponse{Accepted: false, Shops: snapshot}, nil
		}
	}

	uc.lastOrigin = &origin
	uc.lastAccepted = uc.now()
	uc.candidates = nil
	uc.mu.Unlock()

	uc.logger.Info("Search accepted",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	region := domain.SearchRegion{Center: origin, RadiusKm: uc.cfg.RegionRadius}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		places, err := uc.searchRepo.SearchCategory(ctx, region, searchCategories)
		if err != nil {
			uc.logger.Warn("Category sub-query failed", zap.Error(err))
			return
		}
		uc.mergePlaces(ctx, origin, places)
	}()

	for _, query := range coffeeQueries {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			places, err := uc.searchRepo.SearchText(ctx, region, q)
			if err != nil {
				uc.logger.Warn("Text sub-query failed",
					zap.String("query", q),
					zap.Error(err))
				return
			}
			uc.mergePlaces(ctx, origin, places)
		}(query)
	}

	wg.Wait()

	uc.mu.Lock()
	snapshot := uc.snapshotLocked()
	uc.mu.Unlock()

	uc.logger.Info("Search completed", zap.Int("candidate_count", len(snapshot)))

	return &dto.SearchShopsResponse{Accepted: true, Shops: snapshot}, nil
}

// mergePlaces классифицирует результаты одного под-запроса и вливает их
// в список кандидатов. Под-запросы завершаются в произвольном порядке;
// мердж идемпотентен и от порядка не зависит, поэтому поздние результаты
// устаревшего поиска безопасны.
func (uc *DiscoveryUseCase) mergePlaces(ctx context.Context, origin domain.Coordinate, places []domain.Place) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, place := range places {
		distance := utils.HaversineDistance(origin.Lat, origin.Lon, place.Lat, place.Lon)
		if distance > uc.cfg.MaxShopDistance {
			continue
		}
		if !isCoffeePlace(place) {
			continue
		}
		if uc.isDuplicateLocked(place) {
			continue
		}

		id := domain.DeriveShopID(place.Name, place.Lat, place.Lon)
		rating := uc.resolveRating(ctx, id, place.Rating)

		uc.candidates = append(uc.candidates,
			domain.NewShop(place.Name, place.Lat, place.Lon, rating, distance, place.Address))
	}

	sort.Slice(uc.candidates, func(i, j int) bool {
		return uc.candidates[i].Distance < uc.candidates[j].Distance
	})
}

// isDuplicateLocked - допуск дедупликации: имя без учёта регистра и обе
// координаты в пределах 0.001° (≈111 м). Схлопывает варианты одного
// заведения от провайдера, не склеивая разные соседние.
func (uc *DiscoveryUseCase) isDuplicateLocked(place domain.Place) bool {
	for _, c := range uc.candidates {
		if strings.EqualFold(c.Name, place.Name) &&
			utils.WithinDegrees(c.Lat, c.Lon, place.Lat, place.Lon, dedupeToleranceDeg) {
			return true
		}
	}
	return false
}

const dedupeToleranceDeg = 0.001

// resolveRating назначает рейтинг один раз при первой классификации и
// дальше держит его стабильным через персистентные метаданные заведения
func (uc *DiscoveryUseCase) resolveRating(ctx context.Context, shopID string, providerRating *float64) float64 {
	if md, ok := uc.shopUC.ShopMetadataFor(shopID); ok {
		return md.Rating
	}

	rating := 3.5 + rand.Float64()*1.5
	if providerRating != nil {
		rating = *providerRating
	}

	if err := uc.shopUC.SetShopMetadata(ctx, shopID, domain.ShopMetadata{Rating: rating}); err != nil {
		uc.logger.Warn("Failed to persist shop metadata",
			zap.String("shop_id", shopID),
			zap.Error(err))
	}

	return rating
}

// isCoffeePlace - кофейня, если имя содержит кофейное ключевое слово ИЛИ
// категория из таксономии кафе/пекарен, И имя не попало в исключающий список
func isCoffeePlace(place domain.Place) bool {
	name := strings.ToLower(place.Name)

	for _, kw := range excludedKeywords {
		if strings.Contains(name, kw) {
			return false
		}
	}

	for _, kw := range coffeeKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}

	category := strings.ToLower(place.Category)
	return strings.Contains(category, "cafe") ||
		strings.Contains(category, "coffee") ||
		strings.Contains(category, "bakery")
}

// Candidates возвращает снапшот текущего списка кандидатов
func (uc *DiscoveryUseCase) Candidates() []domain.Shop {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// ResolveShop ищет кандидата по id в текущем списке
func (uc *DiscoveryUseCase) ResolveShop(shopID string) (*domain.Shop, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, c := range uc.candidates {
		if c.ID == shopID {
			shop := c
			return &shop, nil
		}
	}

	return nil, errors.ErrShopNotFound
}

func (uc *DiscoveryUseCase) snapshotLocked() []domain.Shop {
	out := make([]domain.Shop, len(uc.candidates))
	copy(out, uc.candidates)
	return out
}
