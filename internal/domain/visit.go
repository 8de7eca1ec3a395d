package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visit - чек-ин в кофейне. Создаётся при чек-ине, никогда не мутирует,
// удаляется только массовой очисткой истории. Хранит имя заведения, а не
// производный id - переименование заведения не ломает историю.
type Visit struct {
	ID        uuid.UUID `json:"id"`
	ShopName  string    `json:"shop_name"`
	VisitedAt time.Time `json:"visited_at"`
}

// NewVisit создает Visit с новым id
func NewVisit(shopName string, visitedAt time.Time) Visit {
	return Visit{
		ID:        uuid.New(),
		ShopName:  shopName,
		VisitedAt: visitedAt,
	}
}

// UserStreak - счётчики серии ежедневных посещений.
// Инвариант: LongestStreak >= CurrentStreak.
type UserStreak struct {
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastVisitDate *time.Time `json:"last_visit_date,omitempty"`
}
