package domain

// Achievement ids. Разблокировка идемпотентна: первый анлок побеждает,
// таймстемп никогда не перезаписывается.
const (
	AchievementFirstCheckin = "first_checkin"
	AchievementExplorer5    = "explorer_5"
	AchievementCollector10  = "collector_10"
	AchievementRegular3     = "regular_3"
	AchievementStreak7      = "streak_7"
)

// Achievement - описание достижения для выдачи наружу
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AchievementCatalog - полный список достижений приложения
var AchievementCatalog = []Achievement{
	{ID: AchievementFirstCheckin, Title: "First Sip", Description: "Check in at your first coffee shop"},
	{ID: AchievementExplorer5, Title: "Explorer", Description: "Visit 5 different coffee shops"},
	{ID: AchievementCollector10, Title: "Collector", Description: "Save 10 favorite coffee shops"},
	{ID: AchievementRegular3, Title: "Regular", Description: "Check in 3 times at the same shop"},
	{ID: AchievementStreak7, Title: "Week of Coffee", Description: "Keep a 7-day visit streak"},
}
