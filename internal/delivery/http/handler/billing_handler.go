package handler

import (
	"github.com/coffee-compass/internal/pkg/utils"
	"github.com/coffee-compass/internal/pkg/validator"
	"github.com/coffee-compass/internal/usecase"
	"github.com/coffee-compass/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BillingHandler - каталог платного контента и покупки
type BillingHandler struct {
	billingUC *usecase.BillingUseCase
	logger    *zap.Logger
}

// NewBillingHandler - создание нового BillingHandler
func NewBillingHandler(billingUC *usecase.BillingUseCase, logger *zap.Logger) *BillingHandler {
	return &BillingHandler{
		billingUC: billingUC,
		logger:    logger,
	}
}

// ListTours godoc
// @Summary Каталог туров
// @Description Туры с признаком доступности (куплен или активен premium)
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TourResponse}
// @Router /api/v1/tours [get]
func (h *BillingHandler) ListTours(c *fiber.Ctx) error {
	tours, err := h.billingUC.ListTours(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tours, &utils.Meta{
		Total: len(tours),
	})
}

// ListGuides godoc
// @Summary Каталог гидов
// @Description Гиды с признаком доступности. Гид открывается только явной покупкой, premium не действует.
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.GuideResponse}
// @Router /api/v1/guides [get]
func (h *BillingHandler) ListGuides(c *fiber.Ctx) error {
	guides, err := h.billingUC.ListGuides(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, guides, &utils.Meta{
		Total: len(guides),
	})
}

// Purchase godoc
// @Summary Покупка продукта
// @Description Покупает продукт каталога по платёжному product id. Исход pending довершается через restore.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.PurchaseRequest true "Платёжный product id"
// @Success 200 {object} utils.SuccessResponse{data=dto.PurchaseResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/purchases [post]
func (h *BillingHandler) Purchase(c *fiber.Ctx) error {
	var req dto.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.billingUC.Purchase(c.Context(), req.ProductID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Restore godoc
// @Summary Восстановление покупок
// @Description Пересинхронизирует локальное состояние с продуктами, принадлежащими пользователю у платёжного провайдера
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RestoreResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/purchases/restore [post]
func (h *BillingHandler) Restore(c *fiber.Ctx) error {
	result, err := h.billingUC.Restore(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
