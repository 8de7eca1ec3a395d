package domain

// DailyDayLayout - формат календарного дня для ежедневной рекомендации
const DailyDayLayout = "2006-01-02"

// DailyRecommendation - выбор дня: shop id + календарный день (локальная зона).
// Генерируется раз в день и кешируется до конца дня.
type DailyRecommendation struct {
	ShopID string `json:"shop_id"`
	Day    string `json:"day"` // DailyDayLayout
}
