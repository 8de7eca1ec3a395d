package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/domain/repository"
	"go.uber.org/zap"
)

// Ключи Preferences Store. Меняются только вместе с миграцией данных.
const (
	prefsKeyFavorites       = "favorites"
	prefsKeyVisitedShops    = "visited-shops"
	prefsKeyPremiumFlag     = "premium-flag"
	prefsKeyUserStreak      = "user-streak"
	prefsKeyDailyPick       = "daily-recommendation"
	prefsKeyPurchasedTours  = "purchased-tours"
	prefsKeyPurchasedGuides = "purchased-guides"
	prefsKeyAchievements    = "unlocked-achievements"
	prefsKeyShopMetadata    = "shop-metadata"
)

// ShopUseCase - единственный владелец пользовательского состояния.
// Всё состояние живёт в памяти под одним RWMutex и пишется насквозь в
// Preferences Store при каждой мутации; никакой другой компонент не
// обращается к ключам хранилища напрямую.
type ShopUseCase struct {
	mu        sync.RWMutex
	prefsRepo repository.PreferencesRepository
	logger    *zap.Logger

	favorites       []domain.Shop
	visits          []domain.Visit
	premium         bool
	streak          domain.UserStreak
	daily           *domain.DailyRecommendation
	purchasedTours  []string
	purchasedGuides []string
	achievements    map[string]time.Time
	shopMetadata    map[string]domain.ShopMetadata
}

// NewShopUseCase создает usecase и загружает состояние из хранилища.
// Ошибка декодирования отдельного ключа не валит загрузку: такой ключ
// откатывается к нулевому значению, остальные загружаются как есть.
func NewShopUseCase(ctx context.Context, prefsRepo repository.PreferencesRepository, logger *zap.Logger) (*ShopUseCase, error) {
	uc := &ShopUseCase{
		prefsRepo:    prefsRepo,
		logger:       logger,
		achievements: make(map[string]time.Time),
		shopMetadata: make(map[string]domain.ShopMetadata),
	}

	if err := uc.load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return uc, nil
}

func (uc *ShopUseCase) load(ctx context.Context) error {
	if err := uc.loadKey(ctx, prefsKeyFavorites, &uc.favorites); err != nil {
		return err
	}
	if err := uc.loadKey(ctx, prefsKeyVisitedShops, &uc.visits); err != nil {
		return err
	}
	if err := uc.loadKey(ctx, prefsKeyPremiumFlag, &uc.premium); err != nil {
		return err
	}
	if err := uc.loadKey(ctx, prefsKeyUserStreak, &uc.streak); err != nil {
		return err
	}
	if err := uc.loadKey(ctx, prefsKeyDailyPick, &uc.daily); err != nil {
		return err
	}
	if err := uc.loadKey(ctx, prefsKeyPurchasedTours, &uc.purchasedTours); err != nil {
		return err
	}
	if err := uc.loadKey(ctx, prefsKeyPurchasedGuides, &uc.purchasedGuides); err != nil {
		return err
	}
	if err := uc.loadKey(ctx, prefsKeyAchievements, &uc.achievements); err != nil {
		return err
	}
	if uc.achievements == nil {
		uc.achievements = make(map[string]time.Time)
	}
	if err := uc.loadKey(ctx, prefsKeyShopMetadata, &uc.shopMetadata); err != nil {
		return err
	}
	if uc.shopMetadata == nil {
		uc.shopMetadata = make(map[string]domain.ShopMetadata)
	}

	uc.logger.Info("User state loaded",
		zap.Int("favorite_count", len(uc.favorites)),
		zap.Int("visit_count", len(uc.visits)),
		zap.Bool("premium", uc.premium))

	return nil
}

// loadKey читает один ключ. Отсутствие ключа - не ошибка; битый JSON
// логируется и оставляет нулевое значение.
func (uc *ShopUseCase) loadKey(ctx context.Context, key string, dest interface{}) error {
	data, err := uc.prefsRepo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to get key %s: %w", key, err)
	}
	if data == nil {
		return nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		uc.logger.Warn("Failed to decode preferences key, falling back to empty value",
			zap.String("key", key),
			zap.Error(err))
	}

	return nil
}

func (uc *ShopUseCase) saveKey(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal key %s: %w", key, err)
	}

	if err := uc.prefsRepo.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}

	return nil
}

// AddFavorite добавляет кофейню в избранное. Идемпотентна по id:
// повторное добавление не создаёт дубликата и не переупорядочивает список.
func (uc *ShopUseCase) AddFavorite(ctx context.Context, shop domain.Shop) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, f := range uc.favorites {
		if f.ID == shop.ID {
			return nil
		}
	}

	uc.favorites = append(uc.favorites, shop)

	uc.logger.Info("Favorite added", zap.String("shop_id", shop.ID))

	return uc.saveKey(ctx, prefsKeyFavorites, uc.favorites)
}

// RemoveFavorite убирает кофейню из избранного по id. Отсутствие - no-op.
func (uc *ShopUseCase) RemoveFavorite(ctx context.Context, shopID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, f := range uc.favorites {
		if f.ID == shopID {
			uc.favorites = append(uc.favorites[:i], uc.favorites[i+1:]...)
			uc.logger.Info("Favorite removed", zap.String("shop_id", shopID))
			return uc.saveKey(ctx, prefsKeyFavorites, uc.favorites)
		}
	}

	return nil
}

// Favorites возвращает копию списка избранного в порядке добавления
func (uc *ShopUseCase) Favorites() []domain.Shop {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]domain.Shop, len(uc.favorites))
	copy(out, uc.favorites)
	return out
}

// IsFavorite проверяет наличие кофейни в избранном
func (uc *ShopUseCase) IsFavorite(shopID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for _, f := range uc.favorites {
		if f.ID == shopID {
			return true
		}
	}
	return false
}

// AddVisit записывает чек-ин. Визиты неизменяемы после создания.
func (uc *ShopUseCase) AddVisit(ctx context.Context, shopName string, visitedAt time.Time) (domain.Visit, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	visit := domain.NewVisit(shopName, visitedAt)
	uc.visits = append(uc.visits, visit)

	uc.logger.Info("Visit recorded",
		zap.String("shop_name", shopName),
		zap.Time("visited_at", visitedAt))

	if err := uc.saveKey(ctx, prefsKeyVisitedShops, uc.visits); err != nil {
		return domain.Visit{}, err
	}

	return visit, nil
}

// Visits возвращает копию истории чек-инов в порядке записи
func (uc *ShopUseCase) Visits() []domain.Visit {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]domain.Visit, len(uc.visits))
	copy(out, uc.visits)
	return out
}

// ClearVisitHistory удаляет всю историю чек-инов. Серия и достижения
// при этом НЕ трогаются - очистка истории не отбирает заработанное.
func (uc *ShopUseCase) ClearVisitHistory(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.visits = nil

	uc.logger.Info("Visit history cleared")

	if err := uc.prefsRepo.Remove(ctx, prefsKeyVisitedShops); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", prefsKeyVisitedShops, err)
	}

	return nil
}

// SetPremium включает или выключает premium-статус
func (uc *ShopUseCase) SetPremium(ctx context.Context, active bool) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.premium = active

	uc.logger.Info("Premium status changed", zap.Bool("active", active))

	return uc.saveKey(ctx, prefsKeyPremiumFlag, uc.premium)
}

// IsPremium возвращает текущий premium-статус
func (uc *ShopUseCase) IsPremium() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.premium
}

// RecordTourPurchase добавляет тур в купленные (идемпотентно)
func (uc *ShopUseCase) RecordTourPurchase(ctx context.Context, productID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, id := range uc.purchasedTours {
		if id == productID {
			return nil
		}
	}

	uc.purchasedTours = append(uc.purchasedTours, productID)

	return uc.saveKey(ctx, prefsKeyPurchasedTours, uc.purchasedTours)
}

// RecordGuidePurchase добавляет гид в купленные (идемпотентно)
func (uc *ShopUseCase) RecordGuidePurchase(ctx context.Context, productID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, id := range uc.purchasedGuides {
		if id == productID {
			return nil
		}
	}

	uc.purchasedGuides = append(uc.purchasedGuides, productID)

	return uc.saveKey(ctx, prefsKeyPurchasedGuides, uc.purchasedGuides)
}

// HasPurchasedTour - тур доступен при явной покупке ИЛИ активном premium
func (uc *ShopUseCase) HasPurchasedTour(productID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.premium {
		return true
	}
	for _, id := range uc.purchasedTours {
		if id == productID {
			return true
		}
	}
	return false
}

// HasPurchasedGuide - гид доступен ТОЛЬКО при явной покупке.
// Premium гиды не открывает: асимметрия с турами намеренная.
func (uc *ShopUseCase) HasPurchasedGuide(productID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for _, id := range uc.purchasedGuides {
		if id == productID {
			return true
		}
	}
	return false
}

// Streak возвращает текущую серию посещений
func (uc *ShopUseCase) Streak() domain.UserStreak {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.streak
}

// SetStreak перезаписывает серию посещений
func (uc *ShopUseCase) SetStreak(ctx context.Context, streak domain.UserStreak) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.streak = streak

	return uc.saveKey(ctx, prefsKeyUserStreak, uc.streak)
}

// DailyRecommendation возвращает закешированный выбор дня (nil если нет)
func (uc *ShopUseCase) DailyRecommendation() *domain.DailyRecommendation {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.daily == nil {
		return nil
	}
	d := *uc.daily
	return &d
}

// SetDailyRecommendation кеширует выбор дня
func (uc *ShopUseCase) SetDailyRecommendation(ctx context.Context, rec domain.DailyRecommendation) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.daily = &rec

	return uc.saveKey(ctx, prefsKeyDailyPick, uc.daily)
}

// UnlockAchievement разблокирует достижение. Первый анлок побеждает:
// повторный вызов не перезаписывает таймстемп и возвращает false.
func (uc *ShopUseCase) UnlockAchievement(ctx context.Context, achievementID string, at time.Time) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.achievements[achievementID]; ok {
		return false, nil
	}

	uc.achievements[achievementID] = at

	uc.logger.Info("Achievement unlocked",
		zap.String("achievement_id", achievementID))

	if err := uc.saveKey(ctx, prefsKeyAchievements, uc.achievements); err != nil {
		return false, err
	}

	return true, nil
}

// UnlockedAchievements возвращает копию карты разблокированных достижений
func (uc *ShopUseCase) UnlockedAchievements() map[string]time.Time {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make(map[string]time.Time, len(uc.achievements))
	for id, at := range uc.achievements {
		out[id] = at
	}
	return out
}

// ShopMetadataFor возвращает персистентные метаданные заведения
func (uc *ShopUseCase) ShopMetadataFor(shopID string) (domain.ShopMetadata, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	md, ok := uc.shopMetadata[shopID]
	return md, ok
}

// SetShopMetadata сохраняет метаданные заведения
func (uc *ShopUseCase) SetShopMetadata(ctx context.Context, shopID string, md domain.ShopMetadata) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.shopMetadata[shopID] = md

	return uc.saveKey(ctx, prefsKeyShopMetadata, uc.shopMetadata)
}
