package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStreakForTest(t *testing.T) (*StreakUseCase, *ShopUseCase) {
	t.Helper()

	shopUC, err := NewShopUseCase(context.Background(), memory.NewPreferencesRepository(), zap.NewNop())
	require.NoError(t, err)

	return NewStreakUseCase(shopUC, zap.NewNop()), shopUC
}

func day(d int) time.Time {
	return time.Date(2026, 9, d, 14, 0, 0, 0, time.UTC)
}

func TestStreakUseCase_ConsecutiveDays(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStreakForTest(t)

	for i, d := range []int{1, 2, 3} {
		streak, err := uc.UpdateStreak(ctx, day(d))
		require.NoError(t, err)
		assert.Equal(t, i+1, streak.CurrentStreak)
		assert.Equal(t, i+1, streak.LongestStreak)
	}
}

func TestStreakUseCase_GapResetsCurrent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStreakForTest(t)

	for _, d := range []int{1, 2, 3} {
		_, err := uc.UpdateStreak(ctx, day(d))
		require.NoError(t, err)
	}

	// день 6 после дней 1-3: серия рвётся, рекорд остаётся
	streak, err := uc.UpdateStreak(ctx, day(6))
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 3, streak.LongestStreak)
}

func TestStreakUseCase_SameDayNoChange(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStreakForTest(t)

	_, err := uc.UpdateStreak(ctx, day(1))
	require.NoError(t, err)

	// второй чек-ин тем же днём, но позже по времени
	later := day(1).Add(5 * time.Hour)
	streak, err := uc.UpdateStreak(ctx, later)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
	assert.Equal(t, later, *streak.LastVisitDate)
}

func TestStreakUseCase_OutOfOrderVisit(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStreakForTest(t)

	_, err := uc.UpdateStreak(ctx, day(5))
	require.NoError(t, err)
	_, err = uc.UpdateStreak(ctx, day(6))
	require.NoError(t, err)

	// бэкфилл визита задним числом: счётчики не трогаем,
	// lastVisitDate всё равно перезаписывается
	streak, err := uc.UpdateStreak(ctx, day(2))
	require.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)
	assert.Equal(t, day(2), *streak.LastVisitDate)
}

func TestStreakUseCase_Checkin(t *testing.T) {
	ctx := context.Background()
	uc, shopUC := newStreakForTest(t)

	uc.now = func() time.Time { return day(1) }

	resp, err := uc.Checkin(ctx, "Coffee House")
	require.NoError(t, err)

	assert.Equal(t, "Coffee House", resp.Visit.ShopName)
	assert.Equal(t, 1, resp.Streak.CurrentStreak)
	assert.Contains(t, resp.NewlyUnlocked, domain.AchievementFirstCheckin)
	require.Len(t, shopUC.Visits(), 1)
}

func TestStreakUseCase_AchievementRegular(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStreakForTest(t)

	var lastUnlocked []string
	for i := 0; i < 3; i++ {
		visitDay := day(i + 1)
		uc.now = func() time.Time { return visitDay }

		resp, err := uc.Checkin(ctx, "Coffee House")
		require.NoError(t, err)
		lastUnlocked = resp.NewlyUnlocked
	}

	assert.Contains(t, lastUnlocked, domain.AchievementRegular3)
}

func TestStreakUseCase_AchievementExplorer(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStreakForTest(t)

	var lastUnlocked []string
	for i := 0; i < 5; i++ {
		uc.now = time.Now

		resp, err := uc.Checkin(ctx, fmt.Sprintf("Coffee Shop %d", i))
		require.NoError(t, err)
		lastUnlocked = resp.NewlyUnlocked
	}

	assert.Contains(t, lastUnlocked, domain.AchievementExplorer5)
}

func TestStreakUseCase_AchievementCollectorIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, shopUC := newStreakForTest(t)

	for i := 0; i < 10; i++ {
		shop := domain.NewShop(fmt.Sprintf("Cafe %d", i), float64(i)*0.01, 0, 4.0, 0, "")
		require.NoError(t, shopUC.AddFavorite(ctx, shop))
	}

	unlocked, err := uc.EvaluateAchievements(ctx)
	require.NoError(t, err)
	assert.Contains(t, unlocked, domain.AchievementCollector10)

	// повторная оценка идемпотентна: новых разблокировок нет
	unlocked, err = uc.EvaluateAchievements(ctx)
	require.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestStreakUseCase_ListAchievements(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStreakForTest(t)

	uc.now = func() time.Time { return day(1) }
	_, err := uc.Checkin(ctx, "Coffee House")
	require.NoError(t, err)

	list := uc.ListAchievements()
	require.Len(t, list, len(domain.AchievementCatalog))

	byID := make(map[string]bool)
	for _, a := range list {
		byID[a.ID] = a.Unlocked
	}
	assert.True(t, byID[domain.AchievementFirstCheckin])
	assert.False(t, byID[domain.AchievementStreak7])
}
