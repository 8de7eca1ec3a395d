package usecase

import (
	"context"
	"math"
	"time"

	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/usecase/dto"
	"go.uber.org/zap"
)

// StreakUseCase - серия ежедневных посещений и достижения.
// Счётчики серии мутирует только он; достижения - чистая функция состояния
// репозитория, пересчитываемая по требованию.
type StreakUseCase struct {
	shopUC *ShopUseCase
	logger *zap.Logger

	now func() time.Time
}

// NewStreakUseCase создает usecase серий и достижений
func NewStreakUseCase(shopUC *ShopUseCase, logger *zap.Logger) *StreakUseCase {
	return &StreakUseCase{
		shopUC: shopUC,
		logger: logger,
		now:    time.Now,
	}
}

// Checkin записывает визит, обновляет серию и пересчитывает достижения
func (uc *StreakUseCase) Checkin(ctx context.Context, shopName string) (*dto.CheckinResponse, error) {
	visitedAt := uc.now()

	visit, err := uc.shopUC.AddVisit(ctx, shopName, visitedAt)
	if err != nil {
		return nil, err
	}

	streak, err := uc.UpdateStreak(ctx, visitedAt)
	if err != nil {
		return nil, err
	}

	unlocked, err := uc.EvaluateAchievements(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CheckinResponse{
		Visit:         visit,
		Streak:        streak,
		NewlyUnlocked: unlocked,
	}, nil
}

// UpdateStreak обновляет счётчики серии по дате визита.
//
// Сравниваются календарные дни (локальная полночь): разница ровно в день
// продлевает серию, больше дня - обрывает до 1, тот же день счётчики не
// трогает. Визит, датированный раньше последнего записанного, счётчики
// тоже не трогает. lastVisitDate перезаписывается в любой ветке.
func (uc *StreakUseCase) UpdateStreak(ctx context.Context, visitDate time.Time) (domain.UserStreak, error) {
	streak := uc.shopUC.Streak()

	if streak.LastVisitDate == nil {
		streak.CurrentStreak = 1
		streak.LongestStreak = 1
	} else {
		switch diff := calendarDayDiff(*streak.LastVisitDate, visitDate); {
		case diff == 1:
			streak.CurrentStreak++
			if streak.CurrentStreak > streak.LongestStreak {
				streak.LongestStreak = streak.CurrentStreak
			}
		case diff > 1:
			streak.CurrentStreak = 1
		}
		// diff == 0 и diff < 0: счётчики без изменений
	}

	streak.LastVisitDate = &visitDate

	if err := uc.shopUC.SetStreak(ctx, streak); err != nil {
		return domain.UserStreak{}, err
	}

	uc.logger.Info("Streak updated",
		zap.Int("current_streak", streak.CurrentStreak),
		zap.Int("longest_streak", streak.LongestStreak))

	return streak, nil
}

// calendarDayDiff - разница календарных дней между двумя датами,
// обе усечены до локальной полуночи
func calendarDayDiff(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	return int(math.Round(toDay.Sub(fromDay).Hours() / 24))
}

// EvaluateAchievements пересчитывает предикаты достижений и разблокирует
// впервые выполнившиеся. Повторная оценка идемпотентна: уже разблокированное
// достижение не перезаписывается. Возвращает id новых разблокировок.
func (uc *StreakUseCase) EvaluateAchievements(ctx context.Context) ([]string, error) {
	visits := uc.shopUC.Visits()
	favorites := uc.shopUC.Favorites()
	streak := uc.shopUC.Streak()

	visitsByShop := make(map[string]int)
	for _, v := range visits {
		visitsByShop[v.ShopName]++
	}
	maxPerShop := 0
	for _, n := range visitsByShop {
		if n > maxPerShop {
			maxPerShop = n
		}
	}

	satisfied := map[string]bool{
		domain.AchievementFirstCheckin: len(visits) >= 1,
		domain.AchievementExplorer5:    len(visitsByShop) >= 5,
		domain.AchievementCollector10:  len(favorites) >= 10,
		domain.AchievementRegular3:     maxPerShop >= 3,
		domain.AchievementStreak7:      streak.LongestStreak >= 7,
	}

	var unlocked []string
	now := uc.now()
	for _, a := range domain.AchievementCatalog {
		if !satisfied[a.ID] {
			continue
		}
		fresh, err := uc.shopUC.UnlockAchievement(ctx, a.ID, now)
		if err != nil {
			return nil, err
		}
		if fresh {
			unlocked = append(unlocked, a.ID)
		}
	}

	return unlocked, nil
}

// ListAchievements возвращает каталог достижений с состоянием разблокировки
func (uc *StreakUseCase) ListAchievements() []dto.AchievementResponse {
	unlockedMap := uc.shopUC.UnlockedAchievements()

	out := make([]dto.AchievementResponse, 0, len(domain.AchievementCatalog))
	for _, a := range domain.AchievementCatalog {
		resp := dto.AchievementResponse{Achievement: a}
		if at, ok := unlockedMap[a.ID]; ok {
			resp.Unlocked = true
			unlockedAt := at
			resp.UnlockedAt = &unlockedAt
		}
		out = append(out, resp)
	}

	return out
}
