package handler

import (
	"github.com/coffee-compass/internal/pkg/utils"
	"github.com/coffee-compass/internal/pkg/validator"
	"github.com/coffee-compass/internal/usecase"
	"github.com/coffee-compass/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecommendationHandler - кофейня дня, случайная рядом и пеший маршрут
type RecommendationHandler struct {
	recommendationUC *usecase.RecommendationUseCase
	logger           *zap.Logger
}

// NewRecommendationHandler - создание нового RecommendationHandler
func NewRecommendationHandler(recommendationUC *usecase.RecommendationUseCase, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUC: recommendationUC,
		logger:           logger,
	}
}

// Daily godoc
// @Summary Кофейня дня
// @Description Детерминированный выбор дня: одинаковый день и список кандидатов дают одинаковый результат. Пустой список кандидатов - data.shop=null.
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DailyRecommendationResponse}
// @Router /api/v1/recommendations/daily [get]
func (h *RecommendationHandler) Daily(c *fiber.Ctx) error {
	result, err := h.recommendationUC.DailyPick(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// RandomNearby godoc
// @Summary Случайная кофейня рядом
// @Description Случайный кандидат в радиусе от точки; выбор свежий на каждый вызов. Нет подходящих - data=null.
// @Tags Recommendations
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=domain.Shop}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/recommendations/random [get]
func (h *RecommendationHandler) RandomNearby(c *fiber.Ctx) error {
	var req dto.NearbyRequest
	req.Lat = c.QueryFloat("lat")
	req.Lon = c.QueryFloat("lon")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	shop, err := h.recommendationUC.RandomNearby(c.Context(), req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, shop, nil)
}

// Route godoc
// @Summary Пеший маршрут по кофейням
// @Description До трёх случайных остановок без повторов; порядок не оптимизируется по расстоянию
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Router /api/v1/recommendations/route [get]
func (h *RecommendationHandler) Route(c *fiber.Ctx) error {
	result, err := h.recommendationUC.GenerateRoute(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Stops),
	})
}
