package handler

import (
	"errors"

	"github.com/coffee-compass/internal/domain"
	apperrors "github.com/coffee-compass/internal/pkg/errors"
	"github.com/coffee-compass/internal/pkg/utils"
	"github.com/coffee-compass/internal/pkg/validator"
	"github.com/coffee-compass/internal/usecase"
	"github.com/coffee-compass/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShopHandler - избранное, чек-ины, серия и достижения
type ShopHandler struct {
	shopUC      *usecase.ShopUseCase
	discoveryUC *usecase.DiscoveryUseCase
	streakUC    *usecase.StreakUseCase
	logger      *zap.Logger
}

// NewShopHandler - создание нового ShopHandler
func NewShopHandler(
	shopUC *usecase.ShopUseCase,
	discoveryUC *usecase.DiscoveryUseCase,
	streakUC *usecase.StreakUseCase,
	logger *zap.Logger,
) *ShopHandler {
	return &ShopHandler{
		shopUC:      shopUC,
		discoveryUC: discoveryUC,
		streakUC:    streakUC,
		logger:      logger,
	}
}

// resolveShop ищет кофейню среди кандидатов, затем в избранном.
// Избранное переживает поисковые циклы, кандидаты - нет.
func (h *ShopHandler) resolveShop(shopID string) (*domain.Shop, error) {
	shop, err := h.discoveryUC.ResolveShop(shopID)
	if err == nil {
		return shop, nil
	}
	if !errors.Is(err, apperrors.ErrShopNotFound) {
		return nil, err
	}

	for _, f := range h.shopUC.Favorites() {
		if f.ID == shopID {
			fav := f
			return &fav, nil
		}
	}

	return nil, apperrors.ErrShopNotFound
}

// AddFavorite godoc
// @Summary Добавить кофейню в избранное
// @Description Добавляет кандидата в избранное по id. Повторное добавление идемпотентно.
// @Tags Favorites
// @Produce json
// @Param id path string true "Производный id кофейни"
// @Success 200 {object} utils.SuccessResponse{data=domain.Shop}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{id} [post]
func (h *ShopHandler) AddFavorite(c *fiber.Ctx) error {
	shop, err := h.resolveShop(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.shopUC.AddFavorite(c.Context(), *shop); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, shop, nil)
}

// RemoveFavorite godoc
// @Summary Убрать кофейню из избранного
// @Tags Favorites
// @Produce json
// @Param id path string true "Производный id кофейни"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/favorites/{id} [delete]
func (h *ShopHandler) RemoveFavorite(c *fiber.Ctx) error {
	if err := h.shopUC.RemoveFavorite(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"removed": true}, nil)
}

// ListFavorites godoc
// @Summary Список избранного
// @Tags Favorites
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Shop}
// @Router /api/v1/favorites [get]
func (h *ShopHandler) ListFavorites(c *fiber.Ctx) error {
	favorites := h.shopUC.Favorites()

	return utils.SendSuccess(c, favorites, &utils.Meta{
		Total: len(favorites),
	})
}

// Checkin godoc
// @Summary Чек-ин в кофейне
// @Description Записывает визит, обновляет серию посещений и пересчитывает достижения
// @Tags Checkins
// @Produce json
// @Param id path string true "Производный id кофейни"
// @Success 200 {object} utils.SuccessResponse{data=dto.CheckinResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/checkins/{id} [post]
func (h *ShopHandler) Checkin(c *fiber.Ctx) error {
	shop, err := h.resolveShop(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.streakUC.Checkin(c.Context(), shop.Name)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CheckinByName godoc
// @Summary Чек-ин по имени заведения
// @Description Чек-ин без привязки к текущему списку кандидатов (история хранит имя, а не id)
// @Tags Checkins
// @Accept json
// @Produce json
// @Param request body dto.CheckinRequest true "Имя заведения"
// @Success 200 {object} utils.SuccessResponse{data=dto.CheckinResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/checkins [post]
func (h *ShopHandler) CheckinByName(c *fiber.Ctx) error {
	var req dto.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.streakUC.Checkin(c.Context(), req.ShopName)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ListCheckins godoc
// @Summary История чек-инов
// @Tags Checkins
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Visit}
// @Router /api/v1/checkins [get]
func (h *ShopHandler) ListCheckins(c *fiber.Ctx) error {
	visits := h.shopUC.Visits()

	return utils.SendSuccess(c, visits, &utils.Meta{
		Total: len(visits),
	})
}

// ClearCheckins godoc
// @Summary Очистить историю чек-инов
// @Description Удаляет все визиты. Серия и достижения не сбрасываются.
// @Tags Checkins
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/checkins [delete]
func (h *ShopHandler) ClearCheckins(c *fiber.Ctx) error {
	if err := h.shopUC.ClearVisitHistory(c.Context()); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"cleared": true}, nil)
}

// GetStreak godoc
// @Summary Текущая серия посещений
// @Tags Checkins
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.UserStreak}
// @Router /api/v1/streak [get]
func (h *ShopHandler) GetStreak(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.shopUC.Streak(), nil)
}

// ListAchievements godoc
// @Summary Каталог достижений
// @Description Возвращает все достижения с состоянием разблокировки
// @Tags Achievements
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AchievementResponse}
// @Router /api/v1/achievements [get]
func (h *ShopHandler) ListAchievements(c *fiber.Ctx) error {
	achievements := h.streakUC.ListAchievements()

	return utils.SendSuccess(c, achievements, &utils.Meta{
		Total: len(achievements),
	})
}

// SetPremium godoc
// @Summary Переключить premium-статус
// @Description Отладочный тумблер premium. В продакшене premium включается покупкой.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.SetPremiumRequest true "Новое состояние"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/premium [put]
func (h *ShopHandler) SetPremium(c *fiber.Ctx) error {
	var req dto.SetPremiumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.shopUC.SetPremium(c.Context(), req.Active); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"premium": req.Active}, nil)
}
