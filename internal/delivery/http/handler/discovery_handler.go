package handler

import (
	"github.com/coffee-compass/internal/pkg/utils"
	"github.com/coffee-compass/internal/pkg/validator"
	"github.com/coffee-compass/internal/usecase"
	"github.com/coffee-compass/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DiscoveryHandler - обработчик поискового цикла и списка кандидатов
type DiscoveryHandler struct {
	discoveryUC *usecase.DiscoveryUseCase
	logger      *zap.Logger
}

// NewDiscoveryHandler - создание нового DiscoveryHandler
func NewDiscoveryHandler(discoveryUC *usecase.DiscoveryUseCase, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: discoveryUC,
		logger:      logger,
	}
}

// Search godoc
// @Summary Поисковый цикл вокруг точки
// @Description Запускает поиск кофеен вокруг координаты. Запрос может быть отклонён throttle-гейтом (accepted=false) - тогда возвращается прежний список кандидатов.
// @Tags Discovery
// @Accept json
// @Produce json
// @Param request body dto.SearchShopsRequest true "Координаты точки поиска"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchShopsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/search [post]
func (h *DiscoveryHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchShopsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.discoveryUC.Search(c.Context(), req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Shops),
	})
}

// ListShops godoc
// @Summary Текущий список кандидатов
// @Description Возвращает кандидатов последнего принятого поиска, отсортированных по расстоянию
// @Tags Discovery
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Shop}
// @Router /api/v1/shops [get]
func (h *DiscoveryHandler) ListShops(c *fiber.Ctx) error {
	shops := h.discoveryUC.Candidates()

	return utils.SendSuccess(c, shops, &utils.Meta{
		Total: len(shops),
	})
}

// GetShop godoc
// @Summary Кандидат по id
// @Description Ищет кофейню в текущем списке кандидатов по производному id
// @Tags Discovery
// @Produce json
// @Param id path string true "Производный id кофейни"
// @Success 200 {object} utils.SuccessResponse{data=domain.Shop}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/shops/{id} [get]
func (h *DiscoveryHandler) GetShop(c *fiber.Ctx) error {
	shop, err := h.discoveryUC.ResolveShop(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, shop, nil)
}
