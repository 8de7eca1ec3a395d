package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/domain/repository"
	"github.com/coffee-compass/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func recommendationConfigForTest() *config.RecommendationConfig {
	return &config.RecommendationConfig{
		NearbyRadius:  10,
		RouteMaxStops: 3,
	}
}

// фиксированный список кандидатов без похода к провайдеру
func seedCandidates(uc *DiscoveryUseCase, shops []domain.Shop) {
	uc.mu.Lock()
	uc.candidates = shops
	uc.mu.Unlock()
}

func newRecommendationForTest(t *testing.T, prefs repository.PreferencesRepository, shops []domain.Shop) (*RecommendationUseCase, *ShopUseCase) {
	t.Helper()

	shopUC, err := NewShopUseCase(context.Background(), prefs, zap.NewNop())
	require.NoError(t, err)

	discoveryUC := NewDiscoveryUseCase(nil, shopUC, discoveryConfigForTest(), zap.NewNop())
	seedCandidates(discoveryUC, shops)

	return NewRecommendationUseCase(discoveryUC, shopUC, recommendationConfigForTest(), zap.NewNop()), shopUC
}

func testShops(n int) []domain.Shop {
	names := []string{"Alpha Coffee", "Bravo Cafe", "Charlie Espresso", "Delta Roasters", "Echo Brew"}
	shops := make([]domain.Shop, 0, n)
	for i := 0; i < n; i++ {
		lat := 0.001 * float64(i+1)
		shops = append(shops, domain.NewShop(names[i], lat, lat, 4.0, float64(i)*0.2, ""))
	}
	return shops
}

func TestRecommendationUseCase_DailyPickDeterminism(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)

	prefs := memory.NewPreferencesRepository()
	uc, _ := newRecommendationForTest(t, prefs, testShops(5))
	uc.now = func() time.Time { return day }

	first, err := uc.DailyPick(ctx)
	require.NoError(t, err)
	require.NotNil(t, first.Shop)

	// повторные вызовы в тот же день дают тот же магазин
	for i := 0; i < 5; i++ {
		again, err := uc.DailyPick(ctx)
		require.NoError(t, err)
		require.NotNil(t, again.Shop)
		assert.Equal(t, first.Shop.ID, again.Shop.ID)
	}

	// симуляция рестарта: новые usecase-ы поверх того же хранилища
	restarted, _ := newRecommendationForTest(t, prefs, testShops(5))
	restarted.now = func() time.Time { return day.Add(2 * time.Hour) }

	afterRestart, err := restarted.DailyPick(ctx)
	require.NoError(t, err)
	require.NotNil(t, afterRestart.Shop)
	assert.Equal(t, first.Shop.ID, afterRestart.Shop.ID)

	// даже без кеша тот же день и тот же список дают тот же выбор
	fresh, _ := newRecommendationForTest(t, memory.NewPreferencesRepository(), testShops(5))
	fresh.now = func() time.Time { return day }

	noCache, err := fresh.DailyPick(ctx)
	require.NoError(t, err)
	require.NotNil(t, noCache.Shop)
	assert.Equal(t, first.Shop.ID, noCache.Shop.ID)
}

func TestRecommendationUseCase_DailyPickInvalidatedByNewDay(t *testing.T) {
	ctx := context.Background()

	uc, _ := newRecommendationForTest(t, memory.NewPreferencesRepository(), testShops(5))

	day1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return day1 }

	first, err := uc.DailyPick(ctx)
	require.NoError(t, err)

	uc.now = func() time.Time { return day1.Add(24 * time.Hour) }

	second, err := uc.DailyPick(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", second.Day)
	assert.NotEqual(t, first.Day, second.Day)
}

func TestRecommendationUseCase_DailyPickEmptyCandidates(t *testing.T) {
	uc, _ := newRecommendationForTest(t, memory.NewPreferencesRepository(), nil)

	resp, err := uc.DailyPick(context.Background())
	require.NoError(t, err)
	assert.Nil(t, resp.Shop, "empty candidate list is 'none available', not an error")
}

func TestRecommendationUseCase_RandomNearby(t *testing.T) {
	ctx := context.Background()

	near := domain.NewShop("Near Coffee", 0.01, 0.01, 4.0, 1.5, "")
	far := domain.NewShop("Far Coffee", 1.0, 1.0, 4.0, 157, "")

	uc, _ := newRecommendationForTest(t, memory.NewPreferencesRepository(), []domain.Shop{near, far})

	// в радиусе 10 км только один кандидат, выбор всегда он
	for i := 0; i < 10; i++ {
		shop, err := uc.RandomNearby(ctx, 0, 0)
		require.NoError(t, err)
		require.NotNil(t, shop)
		assert.Equal(t, near.ID, shop.ID)
	}

	// нет никого в радиусе: nil без ошибки
	shop, err := uc.RandomNearby(ctx, -45, -45)
	require.NoError(t, err)
	assert.Nil(t, shop)
}

func TestRecommendationUseCase_GenerateRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("three distinct stops from five candidates", func(t *testing.T) {
		uc, _ := newRecommendationForTest(t, memory.NewPreferencesRepository(), testShops(5))

		route, err := uc.GenerateRoute(ctx)
		require.NoError(t, err)
		require.Len(t, route.Stops, 3)

		seen := make(map[string]bool)
		for _, s := range route.Stops {
			assert.False(t, seen[s.ID], "route must not repeat a shop")
			seen[s.ID] = true
		}
	})

	t.Run("fewer candidates than stops", func(t *testing.T) {
		uc, _ := newRecommendationForTest(t, memory.NewPreferencesRepository(), testShops(2))

		route, err := uc.GenerateRoute(ctx)
		require.NoError(t, err)
		assert.Len(t, route.Stops, 2)
	})

	t.Run("no candidates", func(t *testing.T) {
		uc, _ := newRecommendationForTest(t, memory.NewPreferencesRepository(), nil)

		route, err := uc.GenerateRoute(ctx)
		require.NoError(t, err)
		assert.Empty(t, route.Stops)
	})
}
